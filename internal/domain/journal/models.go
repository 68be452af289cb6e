package journal

import (
	"time"

	"lumiere-backend/internal/domain/media"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Author of journal articles. Deleting an author nulls the reference on its
// articles, it never cascades.
type Author struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string     `gorm:"not null" json:"name"`
	Slug   string     `gorm:"not null;uniqueIndex" json:"slug"`
	Bio    string     `gorm:"type:text" json:"bio"`
	Avatar *media.Ref `gorm:"type:jsonb;serializer:json" json:"avatar,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"not null;uniqueIndex" json:"slug"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Article struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title   string     `gorm:"not null" json:"title"`
	Slug    string     `gorm:"not null;uniqueIndex" json:"slug"`
	Excerpt string     `gorm:"type:text" json:"excerpt"`
	Body    string     `gorm:"type:text" json:"body"`
	Cover   *media.Ref `gorm:"type:jsonb;serializer:json" json:"cover,omitempty"`

	Status string `gorm:"not null;default:'draft';index" json:"status"`

	AuthorID *uint   `gorm:"index" json:"author_id,omitempty"`
	Author   *Author `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
