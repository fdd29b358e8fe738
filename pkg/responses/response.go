package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	pkgvalidator "github.com/DhavalSuthar-24/scorebook/pkg/validator"
)

// SuccessResponse represents a standard success JSON response.
type SuccessResponse struct {
	Status  string      `json:"status"`  // "success"
	Message string      `json:"message"` // Optional success message
	Data    interface{} `json:"data"`    // The actual data payload
}

// ErrorResponse represents a standard error JSON response.
type ErrorResponse struct {
	Status  string      `json:"status"`           // "error" or "fail"
	Message string      `json:"message"`          // Error message
	Code    int         `json:"code"`             // HTTP status code
	Errors  interface{} `json:"errors,omitempty"` // Detailed errors, e.g. for validation
}

// EventResponse is the outcome of a match event. State is the full post-event
// snapshot on success and the unchanged snapshot on rejection.
type EventResponse struct {
	Success     bool        `json:"success"`
	Status      string      `json:"status"`
	Message     string      `json:"message"`
	Kind        string      `json:"kind,omitempty"`   // Rejection category
	Result      string      `json:"result,omitempty"` // Set when the event finished the match
	WarningSame bool        `json:"warning_same,omitempty"`
	Code        int         `json:"code"`
	Errors      interface{} `json:"errors,omitempty"` // Field messages when the payload failed binding
	State       interface{} `json:"state"`
}

// SendSuccess sends a standardized success response.
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	if message == "" {
		message = "Operation completed successfully"
	}
	c.JSON(statusCode, SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// SendError sends a standardized error response.
func SendError(c *gin.Context, statusCode int, message string) {
	statusText := "error"
	if statusCode >= http.StatusInternalServerError {
		statusText = "fail" // Differentiate client errors from server failures
	}
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Status:  statusText,
		Message: message,
		Code:    statusCode,
	})
}

// ValidationErrorResponse sends a structured JSON response for errors
// originating from c.ShouldBindJSON() or similar.
func ValidationErrorResponse(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Status:  "error",
			Message: "Validation failed. Please check your input.",
			Code:    http.StatusBadRequest,
			Errors:  pkgvalidator.ParseError(ve),
		})
		return
	}
	// Malformed JSON, wrong field types
	BadRequest(c, "Invalid request payload: "+err.Error())
}

// EventAccepted sends the outcome of an accepted match event.
func EventAccepted(c *gin.Context, message, result string, warningSame bool, state interface{}) {
	c.JSON(http.StatusOK, EventResponse{
		Success:     true,
		Status:      "success",
		Message:     message,
		Result:      result,
		WarningSame: warningSame,
		Code:        http.StatusOK,
		State:       state,
	})
}

// EventRejected sends a rejected match event along with the unchanged state.
func EventRejected(c *gin.Context, statusCode int, kind, message string, state interface{}) {
	c.AbortWithStatusJSON(statusCode, EventResponse{
		Success: false,
		Status:  "error",
		Message: message,
		Kind:    kind,
		Code:    statusCode,
		State:   state,
	})
}

// EventPayloadRejected sends a match event whose payload failed binding,
// in the same envelope as an engine rejection.
func EventPayloadRejected(c *gin.Context, kind string, err error, state interface{}) {
	resp := EventResponse{
		Success: false,
		Status:  "error",
		Message: "Invalid request payload: " + err.Error(),
		Kind:    kind,
		Code:    http.StatusBadRequest,
		State:   state,
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		resp.Message = "Validation failed. Please check your input."
		resp.Errors = pkgvalidator.ParseError(ve)
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, resourceName string) {
	SendError(c, http.StatusNotFound, resourceName+" not found")
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request payload or parameters"
	}
	SendError(c, http.StatusBadRequest, message)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred on the server"
	}
	SendError(c, http.StatusInternalServerError, message)
}
