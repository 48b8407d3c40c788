package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// AppError is the error type returned by the service layer
type AppError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewValidationError creates a validation AppError without field information
func NewValidationError(message, details string) *AppError {
	return NewAppError(ErrCodeValidation, message, details)
}

// NewFieldError creates a validation AppError attached to a single form field
func NewFieldError(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: "Invalid form data",
		Fields:  map[string]string{field: message},
	}
}

// NewFieldErrors creates a validation AppError carrying several field messages
func NewFieldErrors(fields map[string]string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: "Invalid form data",
		Fields:  fields,
	}
}

func NewForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, "")
}

func NewNotFoundError(message, details string) *AppError {
	return NewAppError(ErrCodeNotFound, message, details)
}

// SuccessResponse wraps successful payloads
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse wraps error payloads
type ErrorResponse struct {
	Error interface{} `json:"error"`
}

// ErrorBody is the serialized form of an error
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// SendSuccess writes a success envelope
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, SuccessResponse{Data: data})
}

// SendError writes an error envelope
func SendError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// SendFieldErrors writes a validation error envelope with per-field messages
func SendFieldErrors(c *gin.Context, statusCode int, message string, fields map[string]string) {
	c.JSON(statusCode, ErrorResponse{Error: ErrorBody{
		Code:    ErrCodeValidation,
		Message: message,
		Fields:  fields,
	}})
}

// AbortWithError writes an error envelope and stops the handler chain
func AbortWithError(c *gin.Context, statusCode int, code, message string) {
	SendError(c, statusCode, code, message)
	c.Abort()
}
