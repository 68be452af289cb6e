package settings

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SingletonID is the fixed row id for GlobalSetting and About.
const SingletonID uint = 1

type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type GlobalSetting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SiteName     string `json:"site_name"`
	Tagline      string `json:"tagline"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	FooterText   string `gorm:"type:text" json:"footer_text"`

	SocialLinks []SocialLink `gorm:"type:jsonb;serializer:json" json:"social_links"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type About struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title          string `json:"title"`
	SeoTitle       string `json:"seo_title"`
	SeoDescription string `json:"seo_description"`

	Blocks []AboutBlock `gorm:"foreignKey:AboutID;references:ID;constraint:OnDelete:CASCADE;" json:"blocks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AboutBlock mirrors the Section shape so the About singleton renders through
// the same resolver as pages.
type AboutBlock struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	AboutID uint `gorm:"not null;index" json:"about_id"`

	Type    string          `gorm:"not null;index" json:"type"`
	Content json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"content"`
	Order   int             `gorm:"column:sort_index;not null;default:0;index" json:"order"`
	IsShow  bool            `gorm:"not null;default:true" json:"isShow"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *AboutBlock) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
