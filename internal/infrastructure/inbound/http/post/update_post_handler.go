package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/inbound/http/response"
)

type PostUpdater interface {
	UpdatePost(ctx context.Context, id int64, post *model.UpdatePostDTO) (*model.Post, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validator.Validate
}

func NewUpdatePostHandler(postService PostUpdater, validate *validator.Validate) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		validate:    validate,
	}
}

// UpdatePost replaces the whole post. Omitted optional fields are cleared.
func (h *UpdatePostHandler) UpdatePost(c *gin.Context) {
	id, err := parsePostID(c, h.validate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var req writePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "title and content are required")
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), id, &model.UpdatePostDTO{
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Thumbnail: req.Thumbnail,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, PostResponse{Success: true, Post: post})
}
