package errors

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stwalsh4118/propcalc/api/internal/finance"
	"github.com/stwalsh4118/propcalc/api/internal/middleware"
)

// Error code constants for standardized error responses
const (
	ErrNotFound           = "NOT_FOUND"
	ErrBadRequest         = "BAD_REQUEST"
	ErrInternalServer     = "INTERNAL_SERVER_ERROR"
	ErrValidation         = "VALIDATION_ERROR"
	ErrDatabaseConnection = "DATABASE_CONNECTION_ERROR"
	ErrServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrPayloadTooLarge    = "PAYLOAD_TOO_LARGE"
)

// ErrorResponse is the top-level error response structure.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

func requestFields(c *gin.Context) map[string]interface{} {
	return map[string]interface{}{
		"request_id": middleware.GetRequestID(c),
		"path":       c.Request.URL.Path,
	}
}

func respond(c *gin.Context, status int, detail ErrorDetail) {
	detail.RequestID = middleware.GetRequestID(c)
	c.JSON(status, ErrorResponse{Error: detail})
}

// NotFound returns a 404 Not Found error response.
// It logs a warning and sends a JSON response with the error details.
func NotFound(c *gin.Context, message string) {
	if log := middleware.GetLogger(c); log != nil {
		fields := requestFields(c)
		fields["message"] = message
		log.Warn("Resource not found", fields)
	}

	respond(c, http.StatusNotFound, ErrorDetail{Code: ErrNotFound, Message: message})
}

// BadRequest returns a 400 Bad Request error response with optional details.
func BadRequest(c *gin.Context, message string, details map[string]interface{}) {
	if log := middleware.GetLogger(c); log != nil {
		fields := requestFields(c)
		fields["message"] = message
		if details != nil {
			fields["details"] = details
		}
		log.Warn("Bad request", fields)
	}

	respond(c, http.StatusBadRequest, ErrorDetail{Code: ErrBadRequest, Message: message, Details: details})
}

// InternalServerError returns a 500 Internal Server Error response.
// The underlying error is logged but never sent to the client.
func InternalServerError(c *gin.Context, message string, err error) {
	if log := middleware.GetLogger(c); log != nil {
		fields := requestFields(c)
		fields["message"] = message
		fields["method"] = c.Request.Method
		log.Error("Internal server error", err, fields)
	}

	respond(c, http.StatusInternalServerError, ErrorDetail{Code: ErrInternalServer, Message: message})
}

// ServiceUnavailable returns a 503 when a dependency such as the property
// store is not configured or not reachable.
func ServiceUnavailable(c *gin.Context, message string) {
	if log := middleware.GetLogger(c); log != nil {
		fields := requestFields(c)
		fields["message"] = message
		log.Warn("Service unavailable", fields)
	}

	respond(c, http.StatusServiceUnavailable, ErrorDetail{Code: ErrServiceUnavailable, Message: message})
}

// PayloadTooLarge returns a 413 for request bodies over limit bytes.
func PayloadTooLarge(c *gin.Context, limit int64) {
	if log := middleware.GetLogger(c); log != nil {
		fields := requestFields(c)
		fields["limit_bytes"] = limit
		log.Warn("Request body too large", fields)
	}

	respond(c, http.StatusRequestEntityTooLarge, ErrorDetail{
		Code:    ErrPayloadTooLarge,
		Message: "Request body exceeds " + strconv.FormatInt(limit, 10) + " bytes",
		Details: map[string]interface{}{"limitBytes": limit},
	})
}

// ValidationError returns a 400 Bad Request error response with field-specific validation errors.
// It parses the validation errors from the validator library and formats them for the client.
func ValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	details := make(map[string]interface{})
	for _, err := range validationErrors {
		details[err.Field()] = formatValidationError(err)
	}

	if log := middleware.GetLogger(c); log != nil {
		fields := requestFields(c)
		fields["fields"] = details
		log.Warn("Validation error", fields)
	}

	respond(c, http.StatusBadRequest, ErrorDetail{
		Code:    ErrValidation,
		Message: "Validation failed for one or more fields",
		Details: details,
	})
}

// CalculationError reports a calculation failure. Input violations found by
// the engines become a 400 listing every violation; anything else is a 500.
func CalculationError(c *gin.Context, err error) {
	var verr *finance.ValidationError
	if !stderrors.As(err, &verr) {
		InternalServerError(c, "Calculation failed", err)
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		fields := requestFields(c)
		fields["violations"] = verr.Violations
		log.Warn("Invalid calculation input", fields)
	}

	respond(c, http.StatusBadRequest, ErrorDetail{
		Code:    ErrValidation,
		Message: verr.Error(),
		Details: map[string]interface{}{"violations": verr.Violations},
	})
}

// BindError maps an error from gin's JSON binding onto the matching response.
func BindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	var tooLarge *http.MaxBytesError

	switch {
	case stderrors.As(err, &validationErrors):
		ValidationError(c, validationErrors)
	case stderrors.As(err, &tooLarge):
		PayloadTooLarge(c, tooLarge.Limit)
	default:
		BadRequest(c, "Invalid request body", map[string]interface{}{"error": err.Error()})
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short or small (minimum: " + err.Param() + ")"
	case "max":
		return "Value is too long or large (maximum: " + err.Param() + ")"
	case "len":
		return "Must have length of " + err.Param()
	case "gt":
		return "Must be greater than " + err.Param()
	case "gte":
		return "Must be greater than or equal to " + err.Param()
	case "lt":
		return "Must be less than " + err.Param()
	case "lte":
		return "Must be less than or equal to " + err.Param()
	case "oneof":
		return "Must be one of: " + err.Param()
	case "dive":
		return "Contains an invalid entry"
	case "uuid":
		return "Must be a valid UUID"
	case "exit_strategy":
		return "Must be one of: refinance sale"
	case "property_type":
		return "Must be a supported property type"
	case "us_state":
		return "Must be a two-letter US state code"
	case "zip_code":
		return "Must be a 5-digit ZIP or ZIP+4 code"
	default:
		return "Validation failed for tag: " + err.Tag()
	}
}
