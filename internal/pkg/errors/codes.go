package errors

import "net/http"

// Error codes are stable identifiers the console maps to messages.
// Backend logs are always in English.

// Estate error codes.
const (
	CodeOrganizationNotFound = "ORGANIZATION_NOT_FOUND"
	CodeBuildingNotFound     = "BUILDING_NOT_FOUND"
	CodeLocationNotFound     = "LOCATION_NOT_FOUND"
)

// Asset error codes.
const (
	CodeAssetNotFound   = "ASSET_NOT_FOUND"
	CodeAssetCreateFail = "ASSET_CREATION_FAILED"
	CodeAssetUpdateFail = "ASSET_UPDATE_FAILED"
)

// Discipline reassignment error codes.
const (
	CodeConfirmationRequired   = "CONFIRMATION_REQUIRED"
	CodeInvalidTransition      = "INVALID_STATE_TRANSITION"
	CodeReassignmentIncomplete = "DISCIPLINE_REASSIGNMENT_INCOMPLETE"
)

// Service plan error codes.
const (
	CodeServicePlanNotFound   = "SERVICE_PLAN_NOT_FOUND"
	CodeServicePlanCreateFail = "SERVICE_PLAN_CREATION_FAILED"
	CodeBuildingPlanNotFound  = "BUILDING_SERVICE_PLAN_NOT_FOUND"
	CodeInstructionNotFound   = "INSTRUCTION_NOT_FOUND"
	CodeSupplierNotFound      = "SUPPLIER_NOT_FOUND"
	CodeAuditTrailIncomplete  = "AUDIT_TRAIL_INCOMPLETE"
)

// Upstream (Hasura) error codes.
const (
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeUpstreamRejected    = "UPSTREAM_REJECTED"
	CodeUpstreamConflict    = "UPSTREAM_CONFLICT"
	CodeRequestSuperseded   = "REQUEST_SUPERSEDED"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
	CodeForbidden    = "FORBIDDEN"
)

// Validation error codes.
const (
	CodeInternal            = "INTERNAL_ERROR"
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// Contract error codes, raised by the OpenAPI validator.
const (
	CodeOpenAPIRequestInvalid  = "OPENAPI_REQUEST_INVALID"
	CodeOpenAPIResponseInvalid = "OPENAPI_RESPONSE_INVALID"
	CodeOpenAPIRouteInvalid    = "OPENAPI_ROUTE_INVALID"
)

// Convenience constructors using predefined codes.

// ErrValidation creates a 400 validation error carrying field-level details.
func ErrValidation(fieldErrors ...FieldError) *AppError {
	return (&AppError{
		Code:       CodeValidationFailed,
		Message:    "request validation failed",
		HTTPStatus: http.StatusBadRequest,
	}).WithFieldErrors(fieldErrors)
}

// ErrInvalidRequestFieldf creates a bad request error for a single malformed field.
func ErrInvalidRequestFieldf(fieldName string) *AppError {
	return &AppError{
		Code:       CodeInvalidRequestField,
		Message:    "request contains an invalid field: " + fieldName,
		HTTPStatus: http.StatusBadRequest,
		Params:     map[string]interface{}{"field": fieldName},
	}
}

// ErrRequestSuperseded reports that a newer request for the same screen
// replaced this one before it completed.
func ErrRequestSuperseded() *AppError {
	return &AppError{
		Code:       CodeRequestSuperseded,
		Message:    "request superseded by a newer one",
		HTTPStatus: http.StatusConflict,
	}
}
