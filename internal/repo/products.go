package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"lumiere-backend/internal/domain/catalog"
	"lumiere-backend/internal/domain/media"
	"lumiere-backend/internal/domain/slug"
)

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

type ProductFilter struct {
	Status      string
	Featured    *bool
	DiamondType string
	Shape       string
	Slugs       []string
	VisibleOnly bool
	ListParams
}

// ProductInput uses pointers so partial admin updates only touch the fields
// the payload actually carried.
type ProductInput struct {
	Name        string
	Slug        string
	Description *string
	Price       *float64
	DiamondType *string
	Carat       *float64
	Shape       *string
	Images      *[]media.Ref
	IsFeatured  *bool
	IsShow      *bool
	Status      string
}

func (r *ProductRepo) List(ctx context.Context, f ProductFilter) ([]catalog.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&catalog.Product{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Featured != nil {
		q = q.Where("is_featured = ?", *f.Featured)
	}
	if f.DiamondType != "" {
		q = q.Where("diamond_type = ?", f.DiamondType)
	}
	if f.Shape != "" {
		q = q.Where("shape = ?", f.Shape)
	}
	if len(f.Slugs) > 0 {
		q = q.Where("slug IN ?", f.Slugs)
	}
	if f.VisibleOnly {
		q = q.Where("is_show = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	p := f.normalized("created_at DESC")
	var products []catalog.Product
	if err := q.Order(p.OrderClause).Limit(p.Limit).Offset(p.Offset).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepo) GetBySlug(ctx context.Context, productSlug string, publishedOnly bool) (*catalog.Product, error) {
	q := r.db.WithContext(ctx).Where("slug = ?", productSlug)
	if publishedOnly {
		q = q.Where("status = ?", catalog.StatusPublished)
	}

	var product catalog.Product
	if err := q.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) Create(ctx context.Context, in ProductInput) (*catalog.Product, error) {
	var product catalog.Product

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := in.Slug
		if strings.TrimSpace(base) == "" {
			base = in.Name
		}
		unique, err := slug.Unique(tx, &catalog.Product{}, slug.Make(base), "")
		if err != nil {
			return err
		}

		product = catalog.Product{
			Name:   in.Name,
			Slug:   unique,
			Status: in.Status,
			IsShow: true,
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.DiamondType != nil {
			product.DiamondType = *in.DiamondType
		}
		if in.Carat != nil {
			product.Carat = *in.Carat
		}
		if in.Shape != nil {
			product.Shape = *in.Shape
		}
		if in.Images != nil {
			product.Images = *in.Images
		}
		if in.IsFeatured != nil {
			product.IsFeatured = *in.IsFeatured
		}
		if in.IsShow != nil {
			product.IsShow = *in.IsShow
		}
		if product.Status == "" {
			product.Status = catalog.StatusDraft
		}
		return tx.Create(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) Update(ctx context.Context, productSlug string, in ProductInput) (*catalog.Product, error) {
	var product catalog.Product

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slug = ?", productSlug).First(&product).Error; err != nil {
			return err
		}

		nameChanged := in.Name != "" && in.Name != product.Name
		if in.Name != "" {
			product.Name = in.Name
		}

		switch {
		case strings.TrimSpace(in.Slug) != "":
			unique, err := slug.Unique(tx, &catalog.Product{}, slug.Make(in.Slug), product.Slug)
			if err != nil {
				return err
			}
			product.Slug = unique
		case nameChanged:
			unique, err := slug.Unique(tx, &catalog.Product{}, slug.Make(product.Name), product.Slug)
			if err != nil {
				return err
			}
			product.Slug = unique
		}

		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.DiamondType != nil {
			product.DiamondType = *in.DiamondType
		}
		if in.Carat != nil {
			product.Carat = *in.Carat
		}
		if in.Shape != nil {
			product.Shape = *in.Shape
		}
		if in.Images != nil {
			product.Images = *in.Images
		}
		if in.IsFeatured != nil {
			product.IsFeatured = *in.IsFeatured
		}
		if in.IsShow != nil {
			product.IsShow = *in.IsShow
		}
		if in.Status != "" {
			product.Status = in.Status
		}
		return tx.Save(&product).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) Delete(ctx context.Context, productSlug string) (bool, error) {
	res := r.db.WithContext(ctx).Where("slug = ?", productSlug).Delete(&catalog.Product{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
