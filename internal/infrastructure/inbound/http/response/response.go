package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-service/internal/custom_errors"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: message})
}

// FromError maps a service error to its HTTP status and writes the error body.
// Store failures keep their message so they can be diagnosed from the client.
func FromError(c *gin.Context, err error) {
	Error(c, StatusFor(err), err.Error())
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, custom_errors.ErrPostValidation),
		errors.Is(err, custom_errors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, custom_errors.ErrPostNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
