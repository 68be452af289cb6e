package productsapi

import (
	"fmt"

	"lumiere-backend/internal/domain/catalog"
	"lumiere-backend/internal/domain/media"
)

type CreateProductRequest struct {
	Name        string       `json:"name" binding:"required"`
	Slug        string       `json:"slug"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price" binding:"omitempty,gte=0"`
	DiamondType *string      `json:"diamond_type"`
	Carat       *float64     `json:"carat" binding:"omitempty,gte=0"`
	Shape       *string      `json:"shape"`
	Images      *[]media.Ref `json:"images"`
	IsFeatured  *bool        `json:"is_featured"`
	IsShow      *bool        `json:"isShow"`
	Status      string       `json:"status" binding:"omitempty,oneof=draft published"`
}

type UpdateProductRequest struct {
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price" binding:"omitempty,gte=0"`
	DiamondType *string      `json:"diamond_type"`
	Carat       *float64     `json:"carat" binding:"omitempty,gte=0"`
	Shape       *string      `json:"shape"`
	Images      *[]media.Ref `json:"images"`
	IsFeatured  *bool        `json:"is_featured"`
	IsShow      *bool        `json:"isShow"`
	Status      string       `json:"status" binding:"omitempty,oneof=draft published"`
}

type ListProductsResponse struct {
	Items []catalog.Product `json:"items"`
	Total int64             `json:"total"`
}

// The enum carries a space, so it is checked here rather than with a oneof tag.
func validateDiamondType(t *string) error {
	if t == nil || *t == "" {
		return nil
	}
	if !catalog.ValidDiamondType(*t) {
		return fmt.Errorf("diamond_type must be %q or %q", catalog.DiamondLabGrown, catalog.DiamondNatural)
	}
	return nil
}

func validateImages(images *[]media.Ref) error {
	if images == nil {
		return nil
	}
	for i, ref := range *images {
		if ref.URL == "" || ref.PublicID == "" {
			return fmt.Errorf("image %d: url and publicId are required", i)
		}
	}
	return nil
}
