package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/response"
)

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
}

type GetPostHandler struct {
	postService PostGetter
	renderer    ContentRenderer
	validate    *validator.Validate
	log         ports.Logger
}

func NewGetPostHandler(postService PostGetter, renderer ContentRenderer, validate *validator.Validate, log ports.Logger) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		renderer:    renderer,
		validate:    validate,
		log:         log,
	}
}

type PostDetail struct {
	*model.Post
	ContentHTML string `json:"content_html,omitempty"`
}

type GetPostResponse struct {
	Success bool        `json:"success"`
	Post    *PostDetail `json:"post"`
}

func (h *GetPostHandler) GetPost(c *gin.Context) {
	id, err := parsePostID(c, h.validate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := h.postService.GetPostByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	detail := &PostDetail{Post: post}
	if h.renderer != nil {
		html, err := h.renderer.ToHTML(post.Content)
		if err != nil {
			h.log.WarnContext(c.Request.Context(), "Failed to render post content", slog.Int64("id", id), slog.String("error", err.Error()))
		} else {
			detail.ContentHTML = html
		}
	}

	c.JSON(http.StatusOK, GetPostResponse{Success: true, Post: detail})
}
