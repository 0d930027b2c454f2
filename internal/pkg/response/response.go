package response

import (
	"errors"
	"net/http"

	"equiprent/internal/logger"
	"equiprent/internal/pkg/validator"
	"equiprent/internal/repository"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// ValidationError answers 400 with a field -> rule map next to the message.
func ValidationError(c *gin.Context, message string, fields map[string]string) {
	body := gin.H{"message": message}
	if len(fields) > 0 {
		body["errors"] = fields
	}
	c.JSON(http.StatusBadRequest, body)
}

// BindError answers a failed ShouldBindJSON. Rule failures list the fields;
// malformed bodies get a plain message.
func BindError(c *gin.Context, err error) {
	if fields := validator.Fields(err); fields != nil {
		ValidationError(c, "Validation failed", fields)
		return
	}
	Error(c, http.StatusBadRequest, "Invalid request body")
}

// StoreError maps a repository error to its HTTP status. Anything that is not
// one of the store sentinels is logged and answered with a generic 500.
func StoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		Error(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, repository.ErrValidation), errors.Is(err, repository.ErrReferenceNotFound):
		Error(c, http.StatusBadRequest, repository.Message(err))
	case errors.Is(err, repository.ErrConflict),
		errors.Is(err, repository.ErrInUse),
		errors.Is(err, repository.ErrInvalidStatusTransition):
		Error(c, http.StatusConflict, repository.Message(err))
	default:
		_ = c.Error(err)
		logger.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
