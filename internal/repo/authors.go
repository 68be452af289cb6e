package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"lumiere-backend/internal/domain/journal"
	"lumiere-backend/internal/domain/media"
	"lumiere-backend/internal/domain/slug"
)

type AuthorRepo struct {
	db *gorm.DB
}

func NewAuthorRepo(db *gorm.DB) *AuthorRepo { return &AuthorRepo{db: db} }

type AuthorInput struct {
	Name   string
	Slug   string
	Bio    *string
	Avatar *media.Ref
}

func (r *AuthorRepo) List(ctx context.Context, p ListParams) ([]journal.Author, int64, error) {
	q := r.db.WithContext(ctx).Model(&journal.Author{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	n := p.normalized("name ASC")
	var authors []journal.Author
	if err := q.Order(n.OrderClause).Limit(n.Limit).Offset(n.Offset).Find(&authors).Error; err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

func (r *AuthorRepo) GetBySlug(ctx context.Context, authorSlug string) (*journal.Author, error) {
	var author journal.Author
	if err := r.db.WithContext(ctx).Where("slug = ?", authorSlug).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &author, nil
}

func (r *AuthorRepo) Create(ctx context.Context, in AuthorInput) (*journal.Author, error) {
	var author journal.Author

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := in.Slug
		if strings.TrimSpace(base) == "" {
			base = in.Name
		}
		unique, err := slug.Unique(tx, &journal.Author{}, slug.Make(base), "")
		if err != nil {
			return err
		}

		author = journal.Author{Name: in.Name, Slug: unique}
		if in.Bio != nil {
			author.Bio = *in.Bio
		}
		author.Avatar = in.Avatar
		return tx.Create(&author).Error
	})
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *AuthorRepo) Update(ctx context.Context, authorSlug string, in AuthorInput) (*journal.Author, error) {
	var author journal.Author

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slug = ?", authorSlug).First(&author).Error; err != nil {
			return err
		}

		nameChanged := in.Name != "" && in.Name != author.Name
		if in.Name != "" {
			author.Name = in.Name
		}

		switch {
		case strings.TrimSpace(in.Slug) != "":
			unique, err := slug.Unique(tx, &journal.Author{}, slug.Make(in.Slug), author.Slug)
			if err != nil {
				return err
			}
			author.Slug = unique
		case nameChanged:
			unique, err := slug.Unique(tx, &journal.Author{}, slug.Make(author.Name), author.Slug)
			if err != nil {
				return err
			}
			author.Slug = unique
		}

		if in.Bio != nil {
			author.Bio = *in.Bio
		}
		if in.Avatar != nil {
			author.Avatar = in.Avatar
		}
		return tx.Save(&author).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &author, nil
}

// Delete nulls the author reference on dependent articles before removing the
// row; articles themselves are never cascaded.
func (r *AuthorRepo) Delete(ctx context.Context, authorSlug string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var author journal.Author
		if err := tx.Where("slug = ?", authorSlug).First(&author).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Model(&journal.Article{}).
			Where("author_id = ?", author.ID).
			Update("author_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Delete(&author).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}
