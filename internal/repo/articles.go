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

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo { return &ArticleRepo{db: db} }

type ArticleFilter struct {
	Status     string
	AuthorID   *uint
	CategoryID *uint
	Slugs      []string
	ListParams
}

type ArticleInput struct {
	Title   string
	Slug    string
	Excerpt *string
	Body    *string
	Cover   *media.Ref
	Status  string
	// Pointer-to-pointer distinguishes "leave alone" (nil) from "clear" (*nil).
	AuthorID   **uint
	CategoryID **uint
}

func (r *ArticleRepo) List(ctx context.Context, f ArticleFilter) ([]journal.Article, int64, error) {
	q := r.db.WithContext(ctx).Model(&journal.Article{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.AuthorID != nil {
		q = q.Where("author_id = ?", *f.AuthorID)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if len(f.Slugs) > 0 {
		q = q.Where("slug IN ?", f.Slugs)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	p := f.normalized("created_at DESC")
	var articles []journal.Article
	err := q.Order(p.OrderClause).
		Limit(p.Limit).
		Offset(p.Offset).
		Preload("Author").
		Preload("Category").
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *ArticleRepo) GetBySlug(ctx context.Context, articleSlug string, publishedOnly bool) (*journal.Article, error) {
	q := r.db.WithContext(ctx).Where("slug = ?", articleSlug)
	if publishedOnly {
		q = q.Where("status = ?", journal.StatusPublished)
	}

	var article journal.Article
	if err := q.Preload("Author").Preload("Category").First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepo) Create(ctx context.Context, in ArticleInput) (*journal.Article, error) {
	var article journal.Article

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := in.Slug
		if strings.TrimSpace(base) == "" {
			base = in.Title
		}
		unique, err := slug.Unique(tx, &journal.Article{}, slug.Make(base), "")
		if err != nil {
			return err
		}

		article = journal.Article{
			Title:  in.Title,
			Slug:   unique,
			Status: in.Status,
		}
		if in.Excerpt != nil {
			article.Excerpt = *in.Excerpt
		}
		if in.Body != nil {
			article.Body = *in.Body
		}
		if in.Cover != nil {
			article.Cover = in.Cover
		}
		if in.AuthorID != nil {
			article.AuthorID = *in.AuthorID
		}
		if in.CategoryID != nil {
			article.CategoryID = *in.CategoryID
		}
		if article.Status == "" {
			article.Status = journal.StatusDraft
		}
		return tx.Create(&article).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetBySlug(ctx, article.Slug, false)
}

func (r *ArticleRepo) Update(ctx context.Context, articleSlug string, in ArticleInput) (*journal.Article, error) {
	var updatedSlug string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article journal.Article
		if err := tx.Where("slug = ?", articleSlug).First(&article).Error; err != nil {
			return err
		}

		titleChanged := in.Title != "" && in.Title != article.Title
		if in.Title != "" {
			article.Title = in.Title
		}

		switch {
		case strings.TrimSpace(in.Slug) != "":
			unique, err := slug.Unique(tx, &journal.Article{}, slug.Make(in.Slug), article.Slug)
			if err != nil {
				return err
			}
			article.Slug = unique
		case titleChanged:
			unique, err := slug.Unique(tx, &journal.Article{}, slug.Make(article.Title), article.Slug)
			if err != nil {
				return err
			}
			article.Slug = unique
		}

		if in.Excerpt != nil {
			article.Excerpt = *in.Excerpt
		}
		if in.Body != nil {
			article.Body = *in.Body
		}
		if in.Cover != nil {
			article.Cover = in.Cover
		}
		if in.AuthorID != nil {
			article.AuthorID = *in.AuthorID
		}
		if in.CategoryID != nil {
			article.CategoryID = *in.CategoryID
		}
		if in.Status != "" {
			article.Status = in.Status
		}

		updatedSlug = article.Slug
		return tx.Save(&article).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetBySlug(ctx, updatedSlug, false)
}

func (r *ArticleRepo) Delete(ctx context.Context, articleSlug string) (bool, error) {
	res := r.db.WithContext(ctx).Where("slug = ?", articleSlug).Delete(&journal.Article{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
