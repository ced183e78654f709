package view

import (
	"html/template"
	"time"

	model "blog-service/internal/domain/models"
)

// State is everything the page needs. Render is a pure function of it.
type State struct {
	Theme      model.Theme
	HoverColor string
	Weather    *model.WeatherReport
	Posts      []*model.PostSummary
	Pagination *model.Pagination
	Current    *PostView
	Error      string
}

type PostView struct {
	ID          int64
	Title       string
	Thumbnail   *string
	ViewCount   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ContentHTML template.HTML
}

// NewPostView wraps already sanitized HTML for the template.
func NewPostView(post *model.Post, sanitizedHTML string) *PostView {
	return &PostView{
		ID:          post.ID,
		Title:       post.Title,
		Thumbnail:   post.Thumbnail,
		ViewCount:   post.ViewCount,
		CreatedAt:   post.CreatedAt.Time,
		UpdatedAt:   post.UpdatedAt.Time,
		ContentHTML: template.HTML(sanitizedHTML), // #nosec G203 -- sanitized by bluemonday
	}
}

func (s State) HasPrev() bool {
	return s.Pagination != nil && s.Pagination.Page > 1
}

func (s State) HasNext() bool {
	return s.Pagination != nil && s.Pagination.Page < s.Pagination.TotalPages
}

func (s State) PrevPage() int {
	if s.Pagination == nil {
		return model.DefaultPage
	}
	return s.Pagination.Page - 1
}

func (s State) NextPage() int {
	if s.Pagination == nil {
		return model.DefaultPage
	}
	return s.Pagination.Page + 1
}
