package sections

import "lumiere-backend/internal/domain/media"

// One payload struct per section kind. These are the single source of truth for
// the shape of a section's content; the public resolver decodes into them and
// the admin editor derives its forms from them.

type HeroContent struct {
	Heading    string     `json:"heading"`
	Subheading string     `json:"subheading"`
	CtaLabel   string     `json:"ctaLabel"`
	CtaLink    string     `json:"ctaLink"`
	Background *media.Ref `json:"background,omitempty"`
}

type AboutContent struct {
	Heading string     `json:"heading"`
	Body    string     `json:"body"`
	Image   *media.Ref `json:"image,omitempty"`
}

// ProductGridContent references products by id. The references are loose:
// a deleted product simply drops out of the rendered grid.
type ProductGridContent struct {
	Heading      string   `json:"heading"`
	ProductIDs   []string `json:"productIds"`
	FeaturedOnly bool     `json:"featuredOnly"`
	Limit        int      `json:"limit"`
}

type FeatureItem struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon"`
}

type FeaturesContent struct {
	Heading string        `json:"heading"`
	Items   []FeatureItem `json:"items"`
}

type TestimonialItem struct {
	Quote string `json:"quote"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type TestimonialsContent struct {
	Heading string            `json:"heading"`
	Items   []TestimonialItem `json:"items"`
}

type GalleryContent struct {
	Heading string      `json:"heading"`
	Images  []media.Ref `json:"images"`
}

type CtaContent struct {
	Heading     string `json:"heading"`
	Body        string `json:"body"`
	ButtonLabel string `json:"buttonLabel"`
	ButtonLink  string `json:"buttonLink"`
}

type ContactContent struct {
	Heading     string `json:"heading"`
	Body        string `json:"body"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	MapEmbedURL string `json:"mapEmbedUrl"`
}
