package view

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/domain/theme"
	"blog-service/internal/infrastructure/inbound/http/response"
)

const hoverDarkenPercent = 10

type PostReader interface {
	ListPosts(ctx context.Context, page, limit int) ([]*model.PostSummary, *model.Pagination, error)
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
}

type ThemeResolver interface {
	Resolve(ctx context.Context, coords *model.Coordinates) (*model.WeatherReport, model.Theme, error)
}

type ContentRenderer interface {
	ToHTML(source string) (string, error)
}

type Controller struct {
	posts    PostReader
	themes   ThemeResolver
	renderer ContentRenderer
	log      ports.Logger
}

func NewController(posts PostReader, themes ThemeResolver, renderer ContentRenderer, log ports.Logger) *Controller {
	return &Controller{
		posts:    posts,
		themes:   themes,
		renderer: renderer,
		log:      log,
	}
}

func (ctrl *Controller) Register(r gin.IRouter) {
	r.GET("/", ctrl.Index)
	r.GET("/posts/:id", ctrl.Detail)
}

func (ctrl *Controller) Index(c *gin.Context) {
	state := ctrl.baseState(c)

	page, _ := strconv.Atoi(c.Query("page"))
	posts, pagination, err := ctrl.posts.ListPosts(c.Request.Context(), page, model.DefaultLimit)
	if err != nil {
		ctrl.log.ErrorContext(c.Request.Context(), "Failed to list posts for page", slog.String("error", err.Error()))
		state.Error = "게시글을 불러오지 못했습니다."
		ctrl.write(c, http.StatusInternalServerError, state)
		return
	}
	state.Posts = posts
	state.Pagination = pagination

	ctrl.write(c, http.StatusOK, state)
}

func (ctrl *Controller) Detail(c *gin.Context) {
	state := ctrl.baseState(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		state.Error = "잘못된 게시글 번호입니다."
		ctrl.write(c, http.StatusBadRequest, state)
		return
	}

	post, err := ctrl.posts.GetPostByID(c.Request.Context(), id)
	if err != nil {
		status := response.StatusFor(err)
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			state.Error = "게시글을 찾을 수 없습니다."
		} else {
			ctrl.log.ErrorContext(c.Request.Context(), "Failed to load post for page", slog.Int64("id", id), slog.String("error", err.Error()))
			state.Error = "게시글을 불러오지 못했습니다."
		}
		ctrl.write(c, status, state)
		return
	}

	html, err := ctrl.renderer.ToHTML(post.Content)
	if err != nil {
		ctrl.log.WarnContext(c.Request.Context(), "Failed to render post content", slog.Int64("id", id), slog.String("error", err.Error()))
	}
	state.Current = NewPostView(post, html)

	ctrl.write(c, http.StatusOK, state)
}

// baseState resolves the theme. Resolution never fails the page; errors only mean the default theme is used.
func (ctrl *Controller) baseState(c *gin.Context) State {
	report, current, err := ctrl.themes.Resolve(c.Request.Context(), nil)
	if err != nil {
		ctrl.log.DebugContext(c.Request.Context(), "Page rendered with fallback theme", slog.String("error", err.Error()))
	}
	hover, err := theme.Darken(current.Color, hoverDarkenPercent)
	if err != nil {
		hover = current.Color
	}
	return State{Theme: current, HoverColor: hover, Weather: report}
}

func (ctrl *Controller) write(c *gin.Context, status int, state State) {
	var buf bytes.Buffer
	if err := Render(&buf, state); err != nil {
		ctrl.log.ErrorContext(c.Request.Context(), "Failed to render page", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
