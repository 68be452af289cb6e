package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lumiere-backend/internal/domain/media"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

const (
	DiamondLabGrown = "Lab Grown"
	DiamondNatural  = "Natural"
)

func ValidDiamondType(s string) bool {
	return s == DiamondLabGrown || s == DiamondNatural
}

type Product struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"not null;uniqueIndex" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:decimal(12,2);not null;default:0" json:"price"`

	DiamondType string  `gorm:"index" json:"diamond_type"`
	Carat       float64 `gorm:"type:decimal(6,2);default:0" json:"carat"`
	Shape       string  `json:"shape"`

	Images []media.Ref `gorm:"type:jsonb;serializer:json" json:"images"`

	IsFeatured bool   `gorm:"not null;default:false;index" json:"is_featured"`
	IsShow     bool   `gorm:"not null;default:true" json:"isShow"`
	Status     string `gorm:"not null;default:'draft';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
