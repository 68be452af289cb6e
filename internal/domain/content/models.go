package content

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// HomeSlug is protected from deletion by convention, not by a stored invariant.
const HomeSlug = "home"

func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished
}

type Page struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Title          string `gorm:"not null" json:"title"`
	Slug           string `gorm:"not null;uniqueIndex" json:"slug"`
	SeoTitle       string `json:"seo_title"`
	SeoDescription string `json:"seo_description"`
	Status         string `gorm:"not null;default:'draft';index" json:"status"`

	Sections []Section `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"sections,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Page) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Section is a typed content block owned by a Page. Order is dense per page and
// reassigned from array position on every save.
type Section struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PageID uuid.UUID `gorm:"type:uuid;not null;index" json:"page_id"`

	Type    string          `gorm:"not null;index" json:"type"`
	Content json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"content"`
	Order   int             `gorm:"column:sort_index;not null;default:0;index" json:"order"`
	IsShow  bool            `gorm:"not null;default:true" json:"isShow"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
