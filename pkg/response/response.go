package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes used in ErrorInfo.Code.
const (
	CodeBadRequest          = "BAD_REQUEST"
	CodeMalformedIdentifier = "MALFORMED_IDENTIFIER"
	CodeUnknownStrategy     = "UNKNOWN_STRATEGY"
	CodeNotFound            = "NOT_FOUND"
	CodeInternal            = "INTERNAL_ERROR"
)

// Response represents a standard API response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success sends a successful response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// Created sends a 201 created response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// Error sends an error response.
func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeBadRequest, message)
}

// MalformedIdentifier sends a 400 response for text that is not an
// identifier.
func MalformedIdentifier(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeMalformedIdentifier, message)
}

// UnknownStrategy sends a 400 response for an unregistered strategy.
func UnknownStrategy(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeUnknownStrategy, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, CodeInternal, message)
}
