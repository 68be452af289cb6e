package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere-backend/internal/sections"
)

func block(typ string, order int, isShow bool, content string) Block {
	return Block{Type: typ, Content: json.RawMessage(content), Order: order, IsShow: isShow}
}

func TestResolveOrdersByOrderField(t *testing.T) {
	r := New(zerolog.Nop())

	out := r.Resolve([]Block{
		block("contact", 2, true, `{}`),
		block("hero", 0, true, `{"heading":"Lumière"}`),
		block("cta", 1, true, `{}`),
	})

	require.Len(t, out, 3)
	assert.Equal(t, "hero", out[0].Type)
	assert.Equal(t, "cta", out[1].Type)
	assert.Equal(t, "contact", out[2].Type)

	hero, ok := out[0].Data.(*sections.HeroContent)
	require.True(t, ok)
	assert.Equal(t, "Lumière", hero.Heading)
}

func TestResolveSkipsHiddenSections(t *testing.T) {
	r := New(zerolog.Nop())

	out := r.Resolve([]Block{
		block("hero", 0, false, `{}`),
		block("contact", 1, true, `{}`),
	})

	require.Len(t, out, 1)
	assert.Equal(t, "contact", out[0].Type)
}

func TestResolveSkipsUnknownTypeWithWarning(t *testing.T) {
	var buf bytes.Buffer
	r := New(zerolog.New(&buf))

	out := r.Resolve([]Block{
		block("video-wall", 0, true, `{}`),
		block("contact", 1, true, `{}`),
	})

	require.Len(t, out, 1)
	assert.Equal(t, "contact", out[0].Type)
	assert.Contains(t, buf.String(), "video-wall")
	assert.Contains(t, buf.String(), "warn")
}

func TestResolveMissingFieldsRenderBlank(t *testing.T) {
	r := New(zerolog.Nop())

	out := r.Resolve([]Block{block("hero", 0, true, `{}`)})
	require.Len(t, out, 1)

	hero, ok := out[0].Data.(*sections.HeroContent)
	require.True(t, ok)
	assert.Empty(t, hero.Heading)
	assert.Empty(t, hero.CtaLabel)
}

func TestResolveStableForEqualOrder(t *testing.T) {
	r := New(zerolog.Nop())

	out := r.Resolve([]Block{
		block("hero", 0, true, `{"heading":"first"}`),
		block("about", 0, true, `{"heading":"second"}`),
	})

	require.Len(t, out, 2)
	assert.Equal(t, "hero", out[0].Type)
	assert.Equal(t, "about", out[1].Type)
}
