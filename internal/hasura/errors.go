package hasura

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
)

// ErrUnknownOperation is returned for an operation name missing from the catalog.
var ErrUnknownOperation = errors.New("unknown graphql operation")

// TransportError is a network failure or a non-GraphQL HTTP error response.
type TransportError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("hasura %s: http %d: %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("hasura %s: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// GraphQLError is one entry of a GraphQL "errors" array.
type GraphQLError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
		Path string `json:"path"`
	} `json:"extensions"`
}

// ResponseError carries the errors Hasura returned for a schema, permission
// or constraint rejection.
type ResponseError struct {
	Operation string
	Errors    []GraphQLError
}

func (e *ResponseError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return fmt.Sprintf("hasura %s: %s", e.Operation, strings.Join(msgs, "; "))
}

// Code returns the extension code of the first error.
func (e *ResponseError) Code() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Extensions.Code
}

// VariableError is raised before sending when variables do not match the
// operation's declarations.
type VariableError struct {
	Operation string
	Variable  string
	Reason    string
}

func (e *VariableError) Error() string {
	return fmt.Sprintf("hasura %s: $%s: %s", e.Operation, e.Variable, e.Reason)
}

// AsAppError maps a client error onto the application error taxonomy.
// AppErrors pass through unchanged. Nil maps to nil.
func AsAppError(err error) *apperrors.AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := apperrors.IsAppError(err); ok {
		return appErr
	}

	var (
		varErr  *VariableError
		respErr *ResponseError
		trErr   *TransportError
	)
	switch {
	case errors.As(err, &varErr):
		return apperrors.Wrap(err, apperrors.CodeValidationFailed, varErr.Reason, http.StatusBadRequest).
			WithFieldErrors([]apperrors.FieldError{{Field: varErr.Variable, Code: "required"}})
	case errors.As(err, &respErr):
		status, code := http.StatusUnprocessableEntity, apperrors.CodeUpstreamRejected
		if respErr.Code() == "constraint-violation" {
			status, code = http.StatusConflict, apperrors.CodeUpstreamConflict
		}
		return apperrors.Wrap(err, code, firstMessage(respErr), status).
			WithParams(map[string]interface{}{"operation": respErr.Operation, "upstream_code": respErr.Code()})
	case errors.As(err, &trErr):
		return apperrors.Wrap(err, apperrors.CodeUpstreamUnavailable, "graphql endpoint unavailable", http.StatusBadGateway).
			WithParams(map[string]interface{}{"operation": trErr.Operation})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(err, apperrors.CodeUpstreamUnavailable, "graphql request cancelled", http.StatusGatewayTimeout)
	default:
		return apperrors.Wrap(err, apperrors.CodeInternal, "unexpected graphql client error", http.StatusInternalServerError)
	}
}

func firstMessage(e *ResponseError) string {
	if len(e.Errors) == 0 || e.Errors[0].Message == "" {
		return "graphql request rejected"
	}
	return e.Errors[0].Message
}
