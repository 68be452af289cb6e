package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"lumiere-backend/internal/domain/journal"
	"lumiere-backend/internal/domain/slug"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

type CategoryInput struct {
	Name string
	Slug string
}

func (r *CategoryRepo) List(ctx context.Context, p ListParams) ([]journal.Category, int64, error) {
	q := r.db.WithContext(ctx).Model(&journal.Category{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	n := p.normalized("name ASC")
	var categories []journal.Category
	if err := q.Order(n.OrderClause).Limit(n.Limit).Offset(n.Offset).Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *CategoryRepo) GetBySlug(ctx context.Context, categorySlug string) (*journal.Category, error) {
	var category journal.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", categorySlug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepo) Create(ctx context.Context, in CategoryInput) (*journal.Category, error) {
	var category journal.Category

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := in.Slug
		if strings.TrimSpace(base) == "" {
			base = in.Name
		}
		unique, err := slug.Unique(tx, &journal.Category{}, slug.Make(base), "")
		if err != nil {
			return err
		}
		category = journal.Category{Name: in.Name, Slug: unique}
		return tx.Create(&category).Error
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepo) Update(ctx context.Context, categorySlug string, in CategoryInput) (*journal.Category, error) {
	var category journal.Category

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slug = ?", categorySlug).First(&category).Error; err != nil {
			return err
		}

		nameChanged := in.Name != "" && in.Name != category.Name
		if in.Name != "" {
			category.Name = in.Name
		}

		switch {
		case strings.TrimSpace(in.Slug) != "":
			unique, err := slug.Unique(tx, &journal.Category{}, slug.Make(in.Slug), category.Slug)
			if err != nil {
				return err
			}
			category.Slug = unique
		case nameChanged:
			unique, err := slug.Unique(tx, &journal.Category{}, slug.Make(category.Name), category.Slug)
			if err != nil {
				return err
			}
			category.Slug = unique
		}
		return tx.Save(&category).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Delete nulls the category reference on dependent articles, never cascades.
func (r *CategoryRepo) Delete(ctx context.Context, categorySlug string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category journal.Category
		if err := tx.Where("slug = ?", categorySlug).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Model(&journal.Article{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Delete(&category).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}
