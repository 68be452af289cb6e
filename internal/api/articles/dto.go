package articlesapi

import (
	"lumiere-backend/internal/domain/journal"
	"lumiere-backend/internal/domain/media"
)

type CreateArticleRequest struct {
	Title   string     `json:"title" binding:"required"`
	Slug    string     `json:"slug"`
	Excerpt *string    `json:"excerpt"`
	Body    *string    `json:"body"`
	Cover   *media.Ref `json:"cover"`
	Status  string     `json:"status" binding:"omitempty,oneof=draft published"`
	// 0 clears the reference.
	AuthorID   *uint `json:"author_id"`
	CategoryID *uint `json:"category_id"`
}

type UpdateArticleRequest struct {
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Excerpt    *string    `json:"excerpt"`
	Body       *string    `json:"body"`
	Cover      *media.Ref `json:"cover"`
	Status     string     `json:"status" binding:"omitempty,oneof=draft published"`
	AuthorID   *uint      `json:"author_id"`
	CategoryID *uint      `json:"category_id"`
}

type ListArticlesResponse struct {
	Items []journal.Article `json:"items"`
	Total int64             `json:"total"`
}

// refInput maps the wire convention (absent = keep, 0 = clear, n = set) onto
// the repository's keep/clear/set input.
func refInput(v *uint) **uint {
	if v == nil {
		return nil
	}
	if *v == 0 {
		var cleared *uint
		return &cleared
	}
	value := *v
	ptr := &value
	return &ptr
}
