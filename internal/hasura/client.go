// Package hasura is the GraphQL client PPM Desk uses to reach its data.
//
// Every query and mutation is a static document embedded at build time and
// addressed by operation name. The client attaches the server-side Hasura
// credential; consoles never see it. Requests are never retried: a failure
// is reported once and the operator decides whether to resubmit.
package hasura

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/pkg/logger"
)

// Header names understood by Hasura.
const (
	HeaderAdminSecret = "x-hasura-admin-secret"
	HeaderRole        = "x-hasura-role"
	HeaderRequestID   = "X-Request-ID"
)

// Config configures the client.
type Config struct {
	Endpoint    string
	AdminSecret string
	Role        string
	Timeout     time.Duration
}

// Vars holds operation variables.
type Vars map[string]any

// Executor runs a named operation. *Client implements it; tests substitute fakes.
type Executor interface {
	Execute(ctx context.Context, operation string, vars Vars, out any) error
}

// Client sends catalog operations to Hasura.
type Client struct {
	http     *resty.Client
	endpoint string
	catalog  *Catalog
	metrics  *Metrics
}

type requestIDKey struct{}

// WithRequestID attaches a request id forwarded to Hasura for log correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

type request struct {
	Query         string `json:"query"`
	Variables     Vars   `json:"variables,omitempty"`
	OperationName string `json:"operationName"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// NewClient creates a client. The catalog must define every operation in
// KnownOperations.
func NewClient(cfg Config, catalog *Catalog, metrics *Metrics) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("hasura endpoint is required")
	}
	for _, name := range KnownOperations {
		if _, ok := catalog.Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %s missing from catalog", ErrUnknownOperation, name)
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	rc := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.AdminSecret != "" {
		rc.SetHeader(HeaderAdminSecret, cfg.AdminSecret)
	}
	if cfg.Role != "" {
		rc.SetHeader(HeaderRole, cfg.Role)
	}

	return &Client{
		http:     rc,
		endpoint: cfg.Endpoint,
		catalog:  catalog,
		metrics:  metrics,
	}, nil
}

// Execute sends the named operation and decodes its data into out (which
// may be nil).
func (c *Client) Execute(ctx context.Context, operation string, vars Vars, out any) error {
	op, ok := c.catalog.Lookup(operation)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOperation, operation)
	}
	if err := op.CheckVariables(vars); err != nil {
		c.metrics.observe(operation, outcomeVariables, 0)
		return err
	}

	log := logger.FromContext(ctx)
	start := time.Now()

	r := c.http.R().
		SetContext(ctx).
		SetBody(request{Query: op.Query, Variables: vars, OperationName: op.Name})
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		r.SetHeader(HeaderRequestID, id)
	}

	resp, err := r.Post(c.endpoint)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.observe(operation, outcomeTransport, elapsed)
		log.Warn("Hasura request failed",
			zap.String("operation", operation),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return &TransportError{Operation: operation, Err: err}
	}

	var body response
	decodeErr := json.Unmarshal(resp.Body(), &body)

	if resp.StatusCode() != http.StatusOK {
		if decodeErr == nil && len(body.Errors) > 0 {
			c.metrics.observe(operation, outcomeGraphQL, elapsed)
			return c.rejected(log, operation, elapsed, body.Errors)
		}
		c.metrics.observe(operation, outcomeTransport, elapsed)
		log.Warn("Hasura returned unexpected status",
			zap.String("operation", operation),
			zap.Int("status_code", resp.StatusCode()),
		)
		return &TransportError{
			Operation:  operation,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("unexpected status %s", resp.Status()),
		}
	}
	if decodeErr != nil {
		c.metrics.observe(operation, outcomeTransport, elapsed)
		return &TransportError{Operation: operation, StatusCode: resp.StatusCode(), Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	if len(body.Errors) > 0 {
		c.metrics.observe(operation, outcomeGraphQL, elapsed)
		return c.rejected(log, operation, elapsed, body.Errors)
	}

	c.metrics.observe(operation, outcomeOK, elapsed)
	log.Debug("Hasura operation completed",
		zap.String("operation", operation),
		zap.Duration("elapsed", elapsed),
	)

	if out == nil || len(body.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(body.Data, out); err != nil {
		return &TransportError{Operation: operation, StatusCode: resp.StatusCode(), Err: fmt.Errorf("decode data: %w", err)}
	}
	return nil
}

func (c *Client) rejected(log *zap.Logger, operation string, elapsed time.Duration, errs []GraphQLError) error {
	respErr := &ResponseError{Operation: operation, Errors: errs}
	log.Warn("Hasura rejected operation",
		zap.String("operation", operation),
		zap.String("code", respErr.Code()),
		zap.Duration("elapsed", elapsed),
		zap.Error(respErr),
	)
	return respErr
}

// Ping checks that Hasura answers a trivial query.
func (c *Client) Ping(ctx context.Context) error {
	var out struct {
		Typename string `json:"__typename"`
	}
	return c.Execute(ctx, OpHealthCheck, nil, &out)
}
