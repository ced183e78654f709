package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blog-service/internal/infrastructure/inbound/http/response"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, id int64) error
}

type DeletePostHandler struct {
	postService PostDeleter
	validate    *validator.Validate
}

func NewDeletePostHandler(postService PostDeleter, validate *validator.Validate) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		validate:    validate,
	}
}

func (h *DeletePostHandler) DeletePost(c *gin.Context) {
	id, err := parsePostID(c, h.validate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "post deleted"})
}
