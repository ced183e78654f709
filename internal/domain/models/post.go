package model

import "github.com/jackc/pgx/v5/pgtype"

type Post struct {
	ID        int64              `json:"id"`
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	Excerpt   string             `json:"excerpt"`
	Thumbnail *string            `json:"thumbnail"`
	ViewCount int64              `json:"view_count"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

// PostSummary is the list projection of a post. Content is left out to keep pages small.
type PostSummary struct {
	ID        int64              `json:"id"`
	Title     string             `json:"title"`
	Excerpt   string             `json:"excerpt"`
	Thumbnail *string            `json:"thumbnail"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	ViewCount int64              `json:"view_count"`
}

func (p *Post) Summary() *PostSummary {
	return &PostSummary{
		ID:        p.ID,
		Title:     p.Title,
		Excerpt:   p.Excerpt,
		Thumbnail: p.Thumbnail,
		CreatedAt: p.CreatedAt,
		ViewCount: p.ViewCount,
	}
}
