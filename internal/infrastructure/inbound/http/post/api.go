package post_http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	post_service "blog-service/internal/domain/ports/input/post"
	ports "blog-service/internal/domain/ports/output"
)

type ContentRenderer interface {
	ToHTML(source string) (string, error)
}

type PostHTTPService struct {
	listPostsHandler  *ListPostsHandler
	getPostHandler    *GetPostHandler
	createPostHandler *CreatePostHandler
	updatePostHandler *UpdatePostHandler
	deletePostHandler *DeletePostHandler
}

func NewPostHTTPService(postService post_service.Service, renderer ContentRenderer, log ports.Logger) *PostHTTPService {
	validate := validator.New()
	return &PostHTTPService{
		listPostsHandler:  NewListPostsHandler(postService),
		getPostHandler:    NewGetPostHandler(postService, renderer, validate, log),
		createPostHandler: NewCreatePostHandler(postService, validate),
		updatePostHandler: NewUpdatePostHandler(postService, validate),
		deletePostHandler: NewDeletePostHandler(postService, validate),
	}
}

func (s *PostHTTPService) Register(r gin.IRouter) {
	posts := r.Group("/posts")
	posts.GET("", s.listPostsHandler.ListPosts)
	posts.GET("/:id", s.getPostHandler.GetPost)
	posts.POST("", s.createPostHandler.CreatePost)
	posts.PUT("/:id", s.updatePostHandler.UpdatePost)
	posts.DELETE("/:id", s.deletePostHandler.DeletePost)
}

type postIDRequest struct {
	PostID int64 `validate:"required,gt=0"`
}

func parsePostID(c *gin.Context, validate *validator.Validate) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, custom_errors.ErrInvalidInput
	}
	if err := validate.Struct(&postIDRequest{PostID: id}); err != nil {
		return 0, custom_errors.ErrInvalidInput
	}
	return id, nil
}

// writePostRequest is the body accepted by create and update.
type writePostRequest struct {
	Title     string  `json:"title" validate:"required,max=255"`
	Content   string  `json:"content" validate:"required"`
	Excerpt   string  `json:"excerpt"`
	Thumbnail *string `json:"thumbnail"`
}

type PostResponse struct {
	Success bool        `json:"success"`
	Post    *model.Post `json:"post"`
}
