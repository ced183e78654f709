package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/inbound/http/response"
)

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
	}
}

func (h *CreatePostHandler) CreatePost(c *gin.Context) {
	var req writePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "title and content are required")
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), &model.CreatePostDTO{
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Thumbnail: req.Thumbnail,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PostResponse{Success: true, Post: post})
}
