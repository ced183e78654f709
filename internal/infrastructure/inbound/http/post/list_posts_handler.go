package post_http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/inbound/http/response"
)

type PostLister interface {
	ListPosts(ctx context.Context, page, limit int) ([]*model.PostSummary, *model.Pagination, error)
}

type ListPostsHandler struct {
	postService PostLister
}

func NewListPostsHandler(postService PostLister) *ListPostsHandler {
	return &ListPostsHandler{postService: postService}
}

type ListPostsResponse struct {
	Success    bool                 `json:"success"`
	Posts      []*model.PostSummary `json:"posts"`
	Pagination *model.Pagination    `json:"pagination"`
}

// ListPosts serves GET /api/posts. Missing or malformed page and limit fall back to the defaults.
func (h *ListPostsHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	posts, pagination, err := h.postService.ListPosts(c.Request.Context(), page, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListPostsResponse{
		Success:    true,
		Posts:      posts,
		Pagination: pagination,
	})
}
