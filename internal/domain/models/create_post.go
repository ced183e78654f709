package model

type CreatePostDTO struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Excerpt   string  `json:"excerpt"`
	Thumbnail *string `json:"thumbnail,omitempty"`
}
