package repo

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"lumiere-backend/internal/domain/content"
	"lumiere-backend/internal/domain/slug"
)

type PageRepo struct {
	db *gorm.DB
}

func NewPageRepo(db *gorm.DB) *PageRepo { return &PageRepo{db: db} }

type PageFilter struct {
	Status string
	Slugs  []string
	ListParams
}

type SectionInput struct {
	Type    string          `json:"type" binding:"required"`
	Content json.RawMessage `json:"content"`
	IsShow  *bool           `json:"isShow"`
}

type PageInput struct {
	Title          string
	Slug           string
	SeoTitle       *string
	SeoDescription *string
	Status         string
	// Sections nil means keep the existing list; non-nil replaces it wholesale.
	Sections []SectionInput
}

func sectionsPreload(db *gorm.DB) *gorm.DB {
	return db.Order("sort_index ASC")
}

func (r *PageRepo) List(ctx context.Context, f PageFilter) ([]content.Page, int64, error) {
	q := r.db.WithContext(ctx).Model(&content.Page{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if len(f.Slugs) > 0 {
		q = q.Where("slug IN ?", f.Slugs)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	p := f.normalized("created_at DESC")
	var pages []content.Page
	err := q.Order(p.OrderClause).
		Limit(p.Limit).
		Offset(p.Offset).
		Preload("Sections", sectionsPreload).
		Find(&pages).Error
	if err != nil {
		return nil, 0, err
	}
	return pages, total, nil
}

// GetBySlug returns nil (not an error) when no page matches.
func (r *PageRepo) GetBySlug(ctx context.Context, pageSlug string, publishedOnly bool) (*content.Page, error) {
	q := r.db.WithContext(ctx).Where("slug = ?", pageSlug)
	if publishedOnly {
		q = q.Where("status = ?", content.StatusPublished)
	}

	var page content.Page
	if err := q.Preload("Sections", sectionsPreload).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

func (r *PageRepo) Create(ctx context.Context, in PageInput) (*content.Page, error) {
	var page content.Page

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := in.Slug
		if strings.TrimSpace(base) == "" {
			base = in.Title
		}
		unique, err := slug.Unique(tx, &content.Page{}, slug.Make(base), "")
		if err != nil {
			return err
		}

		page = content.Page{
			Title:  in.Title,
			Slug:   unique,
			Status: in.Status,
		}
		if in.SeoTitle != nil {
			page.SeoTitle = *in.SeoTitle
		}
		if in.SeoDescription != nil {
			page.SeoDescription = *in.SeoDescription
		}
		if page.Status == "" {
			page.Status = content.StatusDraft
		}
		if err := tx.Create(&page).Error; err != nil {
			return err
		}
		return replaceSections(tx, &page, in.Sections)
	})
	if err != nil {
		return nil, err
	}
	return r.GetBySlug(ctx, page.Slug, false)
}

// Update replaces the page wholesale: last writer wins, and a non-nil section
// list deletes and recreates the child rows with order taken from array index.
func (r *PageRepo) Update(ctx context.Context, pageSlug string, in PageInput) (*content.Page, error) {
	var updatedSlug string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var page content.Page
		if err := tx.Where("slug = ?", pageSlug).First(&page).Error; err != nil {
			return err
		}

		titleChanged := in.Title != "" && in.Title != page.Title
		if in.Title != "" {
			page.Title = in.Title
		}

		switch {
		case strings.TrimSpace(in.Slug) != "":
			unique, err := slug.Unique(tx, &content.Page{}, slug.Make(in.Slug), page.Slug)
			if err != nil {
				return err
			}
			page.Slug = unique
		case titleChanged:
			// Re-slugify only when the title changed and no explicit slug came in.
			unique, err := slug.Unique(tx, &content.Page{}, slug.Make(page.Title), page.Slug)
			if err != nil {
				return err
			}
			page.Slug = unique
		}

		if in.SeoTitle != nil {
			page.SeoTitle = *in.SeoTitle
		}
		if in.SeoDescription != nil {
			page.SeoDescription = *in.SeoDescription
		}
		if in.Status != "" {
			page.Status = in.Status
		}

		if err := tx.Save(&page).Error; err != nil {
			return err
		}
		if in.Sections != nil {
			if err := tx.Where("page_id = ?", page.ID).Delete(&content.Section{}).Error; err != nil {
				return err
			}
			if err := replaceSections(tx, &page, in.Sections); err != nil {
				return err
			}
		}
		updatedSlug = page.Slug
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetBySlug(ctx, updatedSlug, false)
}

// Delete reports false when no page matched. Sections are removed in the same
// transaction rather than relying on the engine's cascade.
func (r *PageRepo) Delete(ctx context.Context, pageSlug string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var page content.Page
		if err := tx.Where("slug = ?", pageSlug).First(&page).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("page_id = ?", page.ID).Delete(&content.Section{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&page).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func replaceSections(tx *gorm.DB, page *content.Page, inputs []SectionInput) error {
	for i, in := range inputs {
		section := content.Section{
			PageID:  page.ID,
			Type:    in.Type,
			Content: in.Content,
			Order:   i,
			IsShow:  true,
		}
		if len(section.Content) == 0 {
			section.Content = json.RawMessage("{}")
		}
		if in.IsShow != nil {
			section.IsShow = *in.IsShow
		}
		if err := tx.Create(&section).Error; err != nil {
			return err
		}
	}
	return nil
}
