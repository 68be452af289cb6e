package repo

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"lumiere-backend/internal/domain/settings"
)

type SettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *SettingsRepo { return &SettingsRepo{db: db} }

type GlobalInput struct {
	SiteName     *string
	Tagline      *string
	ContactEmail *string
	ContactPhone *string
	Address      *string
	FooterText   *string
	SocialLinks  *[]settings.SocialLink
}

type AboutInput struct {
	Title          *string
	SeoTitle       *string
	SeoDescription *string
	// Blocks nil means keep the existing list; non-nil replaces it wholesale.
	Blocks []SectionInput
}

// GetGlobal returns the singleton row, creating it on first access.
func (r *SettingsRepo) GetGlobal(ctx context.Context) (*settings.GlobalSetting, error) {
	var global settings.GlobalSetting
	err := r.db.WithContext(ctx).First(&global, settings.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		global = settings.GlobalSetting{ID: settings.SingletonID}
		if err := r.db.WithContext(ctx).Create(&global).Error; err != nil {
			return nil, err
		}
		return &global, nil
	}
	if err != nil {
		return nil, err
	}
	return &global, nil
}

func (r *SettingsRepo) UpdateGlobal(ctx context.Context, in GlobalInput) (*settings.GlobalSetting, error) {
	global, err := r.GetGlobal(ctx)
	if err != nil {
		return nil, err
	}

	if in.SiteName != nil {
		global.SiteName = *in.SiteName
	}
	if in.Tagline != nil {
		global.Tagline = *in.Tagline
	}
	if in.ContactEmail != nil {
		global.ContactEmail = *in.ContactEmail
	}
	if in.ContactPhone != nil {
		global.ContactPhone = *in.ContactPhone
	}
	if in.Address != nil {
		global.Address = *in.Address
	}
	if in.FooterText != nil {
		global.FooterText = *in.FooterText
	}
	if in.SocialLinks != nil {
		global.SocialLinks = *in.SocialLinks
	}

	if err := r.db.WithContext(ctx).Save(global).Error; err != nil {
		return nil, err
	}
	return global, nil
}

// GetAbout returns the About singleton with its blocks in order, creating the
// row on first access.
func (r *SettingsRepo) GetAbout(ctx context.Context) (*settings.About, error) {
	var about settings.About
	err := r.db.WithContext(ctx).
		Preload("Blocks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_index ASC") }).
		First(&about, settings.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		about = settings.About{ID: settings.SingletonID, Title: "About"}
		if err := r.db.WithContext(ctx).Create(&about).Error; err != nil {
			return nil, err
		}
		return &about, nil
	}
	if err != nil {
		return nil, err
	}
	return &about, nil
}

// UpdateAbout writes the singleton wholesale. Re-submitting the result of
// GetAbout leaves content and block structure unchanged.
func (r *SettingsRepo) UpdateAbout(ctx context.Context, in AboutInput) (*settings.About, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var about settings.About
		err := tx.First(&about, settings.SingletonID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			about = settings.About{ID: settings.SingletonID, Title: "About"}
			if err := tx.Create(&about).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if in.Title != nil {
			about.Title = *in.Title
		}
		if in.SeoTitle != nil {
			about.SeoTitle = *in.SeoTitle
		}
		if in.SeoDescription != nil {
			about.SeoDescription = *in.SeoDescription
		}
		if err := tx.Save(&about).Error; err != nil {
			return err
		}

		if in.Blocks != nil {
			if err := tx.Where("about_id = ?", about.ID).Delete(&settings.AboutBlock{}).Error; err != nil {
				return err
			}
			for i, b := range in.Blocks {
				block := settings.AboutBlock{
					AboutID: about.ID,
					Type:    b.Type,
					Content: b.Content,
					Order:   i,
					IsShow:  true,
				}
				if len(block.Content) == 0 {
					block.Content = json.RawMessage("{}")
				}
				if b.IsShow != nil {
					block.IsShow = *b.IsShow
				}
				if err := tx.Create(&block).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetAbout(ctx)
}
