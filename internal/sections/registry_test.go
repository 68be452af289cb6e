package sections

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindsStableOrder(t *testing.T) {
	defs := Kinds()
	require.Len(t, defs, len(registry))
	assert.Equal(t, KindHero, defs[0].Kind)

	again := Kinds()
	for i := range defs {
		assert.Equal(t, defs[i].Kind, again[i].Kind)
	}
}

func TestDecodeMissingFieldsDefaultToZero(t *testing.T) {
	payload, err := Decode(KindHero, json.RawMessage(`{"heading":"Brilliance"}`))
	require.NoError(t, err)

	hero, ok := payload.(*HeroContent)
	require.True(t, ok)
	assert.Equal(t, "Brilliance", hero.Heading)
	assert.Empty(t, hero.Subheading)
	assert.Nil(t, hero.Background)
}

func TestDecodeEmptyContent(t *testing.T) {
	payload, err := Decode(KindTestimonials, nil)
	require.NoError(t, err)

	ts, ok := payload.(*TestimonialsContent)
	require.True(t, ok)
	assert.Empty(t, ts.Items)
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := Decode(Kind("video-wall"), json.RawMessage(`{}`))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("hero", json.RawMessage(`{"heading":"x"}`)))
	assert.NoError(t, Validate("hero", nil))

	// unregistered type
	assert.Error(t, Validate("video-wall", json.RawMessage(`{}`)))

	// not an object
	assert.Error(t, Validate("hero", json.RawMessage(`[1,2]`)))
	assert.Error(t, Validate("hero", json.RawMessage(`{"heading"`)))

	// shape mismatch against the payload struct
	assert.Error(t, Validate("features", json.RawMessage(`{"items":"not-a-list"}`)))
}

func TestGroupDefaults(t *testing.T) {
	def, ok := Lookup(KindTestimonials)
	require.True(t, ok)
	require.Len(t, def.Groups, 1)
	assert.Equal(t, "items", def.Groups[0].Path)
	assert.IsType(t, TestimonialItem{}, def.Groups[0].NewItem())
}
