package sections

import (
	"encoding/json"
	"fmt"

	"lumiere-backend/internal/domain/media"
)

type Kind string

const (
	KindHero         Kind = "hero"
	KindAbout        Kind = "about"
	KindProductGrid  Kind = "product-grid"
	KindFeatures     Kind = "features"
	KindTestimonials Kind = "testimonials"
	KindGallery      Kind = "gallery"
	KindCta          Kind = "cta"
	KindContact      Kind = "contact"
)

// Group describes a repeatable sub-list inside a payload, addressed by the
// dotted path of the list field. NewItem is the record appended by the
// editor's add-item action.
type Group struct {
	Path    string
	Label   string
	NewItem func() any
}

type Definition struct {
	Kind   Kind
	Label  string
	New    func() any
	Groups []Group
}

// kindOrder fixes the order in which Kinds() reports types to the editor.
var kindOrder = []Kind{
	KindHero,
	KindAbout,
	KindProductGrid,
	KindFeatures,
	KindTestimonials,
	KindGallery,
	KindCta,
	KindContact,
}

var registry = map[Kind]Definition{
	KindHero: {
		Kind:  KindHero,
		Label: "Hero",
		New:   func() any { return &HeroContent{} },
	},
	KindAbout: {
		Kind:  KindAbout,
		Label: "About",
		New:   func() any { return &AboutContent{} },
	},
	KindProductGrid: {
		Kind:  KindProductGrid,
		Label: "Product Grid",
		New:   func() any { return &ProductGridContent{Limit: 6} },
		Groups: []Group{
			{Path: "productIds", Label: "Products", NewItem: func() any { return "" }},
		},
	},
	KindFeatures: {
		Kind:  KindFeatures,
		Label: "Features",
		New:   func() any { return &FeaturesContent{} },
		Groups: []Group{
			{Path: "items", Label: "Features", NewItem: func() any { return FeatureItem{} }},
		},
	},
	KindTestimonials: {
		Kind:  KindTestimonials,
		Label: "Testimonials",
		New:   func() any { return &TestimonialsContent{} },
		Groups: []Group{
			{Path: "items", Label: "Testimonials", NewItem: func() any { return TestimonialItem{} }},
		},
	},
	KindGallery: {
		Kind:  KindGallery,
		Label: "Gallery",
		New:   func() any { return &GalleryContent{} },
		Groups: []Group{
			{Path: "images", Label: "Images", NewItem: func() any { return media.Ref{} }},
		},
	},
	KindCta: {
		Kind:  KindCta,
		Label: "Call To Action",
		New:   func() any { return &CtaContent{} },
	},
	KindContact: {
		Kind:  KindContact,
		Label: "Contact",
		New:   func() any { return &ContactContent{} },
	},
}

func Lookup(k Kind) (Definition, bool) {
	def, ok := registry[k]
	return def, ok
}

func Known(t string) bool {
	_, ok := registry[Kind(t)]
	return ok
}

// Kinds returns every registered definition in a stable order.
func Kinds() []Definition {
	out := make([]Definition, 0, len(kindOrder))
	for _, k := range kindOrder {
		out = append(out, registry[k])
	}
	return out
}

// Decode unmarshals raw content into the payload struct for kind. Decoding is
// lenient: missing fields are left at their zero value so legacy rows still
// render with blanks rather than failing.
func Decode(k Kind, raw json.RawMessage) (any, error) {
	def, ok := registry[k]
	if !ok {
		return nil, fmt.Errorf("unknown section type %q", k)
	}
	payload := def.New()
	if len(raw) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, fmt.Errorf("decode %s content: %w", k, err)
	}
	return payload, nil
}

// Validate is the write-boundary check: the type must be registered and the
// content must be a JSON object that decodes into the type's payload struct.
func Validate(t string, raw json.RawMessage) error {
	if !Known(t) {
		return fmt.Errorf("unknown section type %q", t)
	}
	if len(raw) == 0 {
		return nil
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("section content must be a JSON object: %w", err)
	}
	if _, err := Decode(Kind(t), raw); err != nil {
		return err
	}
	return nil
}
