// Package testutil provides test doubles shared across packages.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"ppmdesk.io/ppmdesk/internal/hasura"
)

// FakeAdminSecret is the credential the fake server expects.
const FakeAdminSecret = "test-admin-secret"

// Call is one request received by the fake.
type Call struct {
	Operation string
	Query     string
	Variables map[string]any
	Header    http.Header
	// Body is the request as sent, for asserting on exact number text.
	Body []byte
}

// Int returns an integer variable. JSON numbers decode as float64.
func (c Call) Int(name string) int {
	f, _ := c.Variables[name].(float64)
	return int(f)
}

// String returns a string variable.
func (c Call) String(name string) string {
	s, _ := c.Variables[name].(string)
	return s
}

// Handler answers one operation. Returning errs produces a GraphQL error
// response with HTTP 200, the way Hasura reports rejections.
type Handler func(call Call) (data any, errs []hasura.GraphQLError)

// FakeHasura is an httptest server that answers by operationName.
type FakeHasura struct {
	Server *httptest.Server

	mu       sync.Mutex
	handlers map[string]Handler
	calls    []Call
}

// NewFakeHasura starts a fake closed automatically at test cleanup.
func NewFakeHasura(t testing.TB) *FakeHasura {
	t.Helper()
	f := &FakeHasura{handlers: make(map[string]Handler)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

// On registers h for operation, replacing any previous handler.
func (f *FakeHasura) On(operation string, h Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[operation] = h
}

// Respond registers a static data payload for operation.
func (f *FakeHasura) Respond(operation string, data any) {
	f.On(operation, func(Call) (any, []hasura.GraphQLError) { return data, nil })
}

// Fail registers a GraphQL error for operation.
func (f *FakeHasura) Fail(operation, message, code string) {
	f.On(operation, func(Call) (any, []hasura.GraphQLError) {
		return nil, []hasura.GraphQLError{GraphQLError(message, code)}
	})
}

// GraphQLError builds a GraphQL error entry.
func GraphQLError(message, code string) hasura.GraphQLError {
	ge := hasura.GraphQLError{Message: message}
	ge.Extensions.Code = code
	return ge
}

// Calls returns received calls, optionally filtered to the given operations,
// in arrival order.
func (f *FakeHasura) Calls(operations ...string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(operations) == 0 {
		return append([]Call(nil), f.calls...)
	}
	want := make(map[string]bool, len(operations))
	for _, op := range operations {
		want[op] = true
	}
	var out []Call
	for _, c := range f.calls {
		if want[c.Operation] {
			out = append(out, c)
		}
	}
	return out
}

// Operations returns the names of received calls in arrival order.
func (f *FakeHasura) Operations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.Operation)
	}
	return out
}

// Client returns a real hasura.Client pointed at the fake.
func (f *FakeHasura) Client(t testing.TB) *hasura.Client {
	t.Helper()
	catalog, err := hasura.LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	c, err := hasura.NewClient(hasura.Config{
		Endpoint:    f.Server.URL + "/v1/graphql",
		AdminSecret: FakeAdminSecret,
		Timeout:     5 * time.Second,
	}, catalog, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func (f *FakeHasura) serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Header.Get(hasura.HeaderAdminSecret) != FakeAdminSecret {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []hasura.GraphQLError{GraphQLError("invalid x-hasura-admin-secret", "access-denied")},
		})
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var req struct {
		Query         string         `json:"query"`
		Variables     map[string]any `json:"variables"`
		OperationName string         `json:"operationName"`
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	call := Call{
		Operation: req.OperationName,
		Query:     req.Query,
		Variables: req.Variables,
		Header:    r.Header.Clone(),
		Body:      raw,
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	h, ok := f.handlers[req.OperationName]
	f.mu.Unlock()

	if !ok {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []hasura.GraphQLError{GraphQLError("no fake handler for "+req.OperationName, "validation-failed")},
		})
		return
	}

	data, errs := h(call)
	body := map[string]any{}
	if len(errs) > 0 {
		body["errors"] = errs
	} else {
		body["data"] = data
	}
	_ = json.NewEncoder(w).Encode(body)
}
