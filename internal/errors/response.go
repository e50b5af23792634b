package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error payload
type ErrorResponse struct {
	Error   string `json:"error"`   // error code, for frontend mapping
	Message string `json:"message"` // human-readable summary
}

// RespondWithError writes a standard error response
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// Shortcut responders for the common cases

func RespondUnauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, Unauthorized, message)
}

func RespondForbidden(c *gin.Context, message string) {
	if message == "" {
		message = "you do not have permission to perform this action"
	}
	RespondWithError(c, http.StatusForbidden, Forbidden, message)
}

func RespondInvalidInput(c *gin.Context, message string) {
	if message == "" {
		message = "invalid input"
	}
	RespondWithError(c, http.StatusBadRequest, InvalidInput, message)
}

func RespondNotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NotFound, message)
}

func RespondConflict(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusConflict, errorCode, message)
}

func RespondInternalError(c *gin.Context, message string) {
	if message == "" {
		message = "an unexpected error occurred, please try again later"
	}
	RespondWithError(c, http.StatusInternalServerError, ServerError, message)
}
