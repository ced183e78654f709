package model

// UpdatePostDTO carries the full mutable state of a post. Every field is written as given.
type UpdatePostDTO struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Excerpt   string  `json:"excerpt"`
	Thumbnail *string `json:"thumbnail,omitempty"`
}
