package render

import (
	"encoding/json"
	"sort"

	"github.com/rs/zerolog"

	"lumiere-backend/internal/domain/content"
	"lumiere-backend/internal/domain/settings"
	"lumiere-backend/internal/sections"
)

// Block is the resolver's neutral view of a typed content block. Page sections
// and About blocks both convert into it.
type Block struct {
	ID      string
	Type    string
	Content json.RawMessage
	Order   int
	IsShow  bool
}

func FromSections(secs []content.Section) []Block {
	out := make([]Block, 0, len(secs))
	for _, s := range secs {
		out = append(out, Block{ID: s.ID.String(), Type: s.Type, Content: s.Content, Order: s.Order, IsShow: s.IsShow})
	}
	return out
}

func FromAboutBlocks(blocks []settings.AboutBlock) []Block {
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, Block{ID: b.ID.String(), Type: b.Type, Content: b.Content, Order: b.Order, IsShow: b.IsShow})
	}
	return out
}

type RenderedSection struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type RenderedPage struct {
	Title          string            `json:"title"`
	Slug           string            `json:"slug"`
	SeoTitle       string            `json:"seo_title"`
	SeoDescription string            `json:"seo_description"`
	Sections       []RenderedSection `json:"sections"`
}

type Resolver struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Resolver {
	return &Resolver{log: log}
}

// Resolve turns an ordered block list into render-ready sections. Hidden
// blocks are skipped silently; blocks with no registered type are skipped with
// a warning so the page renders with a content gap rather than an error.
func (r *Resolver) Resolve(blocks []Block) []RenderedSection {
	ordered := make([]Block, len(blocks))
	copy(ordered, blocks)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	out := make([]RenderedSection, 0, len(ordered))
	for _, b := range ordered {
		if !b.IsShow {
			continue
		}
		data, err := sections.Decode(sections.Kind(b.Type), b.Content)
		if err != nil {
			r.log.Warn().
				Str("type", b.Type).
				Str("section_id", b.ID).
				Err(err).
				Msg("skipping section with no renderer")
			continue
		}
		out = append(out, RenderedSection{Type: b.Type, Data: data})
	}
	return out
}

func (r *Resolver) ResolvePage(p *content.Page) RenderedPage {
	return RenderedPage{
		Title:          p.Title,
		Slug:           p.Slug,
		SeoTitle:       p.SeoTitle,
		SeoDescription: p.SeoDescription,
		Sections:       r.Resolve(FromSections(p.Sections)),
	}
}

func (r *Resolver) ResolveAbout(a *settings.About) RenderedPage {
	return RenderedPage{
		Title:          a.Title,
		Slug:           "about",
		SeoTitle:       a.SeoTitle,
		SeoDescription: a.SeoDescription,
		Sections:       r.Resolve(FromAboutBlocks(a.Blocks)),
	}
}
