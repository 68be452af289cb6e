package pagesapi

import (
	"fmt"

	"lumiere-backend/internal/domain/content"
	"lumiere-backend/internal/repo"
	"lumiere-backend/internal/sections"
)

type CreatePageRequest struct {
	Title          string              `json:"title" binding:"required"`
	Slug           string              `json:"slug"`
	SeoTitle       *string             `json:"seo_title"`
	SeoDescription *string             `json:"seo_description"`
	Status         string              `json:"status" binding:"omitempty,oneof=draft published"`
	Sections       []repo.SectionInput `json:"sections"`
}

type UpdatePageRequest struct {
	Title          string              `json:"title"`
	Slug           string              `json:"slug"`
	SeoTitle       *string             `json:"seo_title"`
	SeoDescription *string             `json:"seo_description"`
	Status         string              `json:"status" binding:"omitempty,oneof=draft published"`
	Sections       []repo.SectionInput `json:"sections"`
}

type ListPagesResponse struct {
	Items []content.Page `json:"items"`
	Total int64          `json:"total"`
}

// validateSections gates section writes at the API boundary: every block must
// carry a registered type and content that decodes into that type's payload.
func validateSections(inputs []repo.SectionInput) error {
	for i, s := range inputs {
		if err := sections.Validate(s.Type, s.Content); err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
	}
	return nil
}
