package repo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere-backend/internal/domain/settings"
)

func TestGlobalSingletonCreatedOnFirstAccess(t *testing.T) {
	r := NewSettingsRepo(setupTestDB(t))

	global, err := r.GetGlobal(testCtx())
	require.NoError(t, err)
	require.NotNil(t, global)
	assert.Equal(t, settings.SingletonID, global.ID)
	assert.Empty(t, global.SiteName)

	// a second read returns the same row, not a second one
	again, err := r.GetGlobal(testCtx())
	require.NoError(t, err)
	assert.Equal(t, global.ID, again.ID)
}

func TestGlobalUpdatePartial(t *testing.T) {
	r := NewSettingsRepo(setupTestDB(t))

	_, err := r.UpdateGlobal(testCtx(), GlobalInput{
		SiteName:     ptr("Lumière"),
		ContactEmail: ptr("hello@lumiere.example"),
		SocialLinks: &[]settings.SocialLink{
			{Label: "Instagram", URL: "https://instagram.com/lumiere"},
		},
	})
	require.NoError(t, err)

	global, err := r.UpdateGlobal(testCtx(), GlobalInput{Tagline: ptr("Brilliance, bottled")})
	require.NoError(t, err)
	assert.Equal(t, "Lumière", global.SiteName)
	assert.Equal(t, "Brilliance, bottled", global.Tagline)
	assert.Equal(t, "hello@lumiere.example", global.ContactEmail)
	require.Len(t, global.SocialLinks, 1)
	assert.Equal(t, "Instagram", global.SocialLinks[0].Label)
}

func TestAboutSingletonCreatedOnFirstAccess(t *testing.T) {
	r := NewSettingsRepo(setupTestDB(t))

	about, err := r.GetAbout(testCtx())
	require.NoError(t, err)
	require.NotNil(t, about)
	assert.Equal(t, settings.SingletonID, about.ID)
	assert.Equal(t, "About", about.Title)
	assert.Empty(t, about.Blocks)
}

func TestAboutUpdateReplacesBlocksWholesale(t *testing.T) {
	r := NewSettingsRepo(setupTestDB(t))

	about, err := r.UpdateAbout(testCtx(), AboutInput{
		Title: ptr("Our Story"),
		Blocks: []SectionInput{
			{Type: "hero", Content: json.RawMessage(`{"heading":"Since 1987"}`)},
			{Type: "gallery"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Our Story", about.Title)
	require.Len(t, about.Blocks, 2)
	assert.Equal(t, "hero", about.Blocks[0].Type)
	assert.Equal(t, 0, about.Blocks[0].Order)
	assert.JSONEq(t, `{}`, string(about.Blocks[1].Content))

	about, err = r.UpdateAbout(testCtx(), AboutInput{
		Blocks: []SectionInput{{Type: "cta"}},
	})
	require.NoError(t, err)
	require.Len(t, about.Blocks, 1)
	assert.Equal(t, "cta", about.Blocks[0].Type)
	assert.Equal(t, 0, about.Blocks[0].Order)
}

func TestAboutSaveRoundTripIsIdempotent(t *testing.T) {
	r := NewSettingsRepo(setupTestDB(t))

	first, err := r.UpdateAbout(testCtx(), AboutInput{
		Title: ptr("Our Story"),
		Blocks: []SectionInput{
			{Type: "hero", Content: json.RawMessage(`{"heading":"Since 1987"}`)},
			{Type: "cta", IsShow: ptr(false)},
		},
	})
	require.NoError(t, err)

	// feed the read model straight back in, as the admin UI save does
	resubmit := make([]SectionInput, len(first.Blocks))
	for i, b := range first.Blocks {
		resubmit[i] = SectionInput{Type: b.Type, Content: b.Content, IsShow: ptr(b.IsShow)}
	}
	second, err := r.UpdateAbout(testCtx(), AboutInput{Title: &first.Title, Blocks: resubmit})
	require.NoError(t, err)

	assert.Equal(t, first.Title, second.Title)
	require.Len(t, second.Blocks, len(first.Blocks))
	for i := range first.Blocks {
		assert.Equal(t, first.Blocks[i].Type, second.Blocks[i].Type)
		assert.Equal(t, first.Blocks[i].Order, second.Blocks[i].Order)
		assert.Equal(t, first.Blocks[i].IsShow, second.Blocks[i].IsShow)
		assert.JSONEq(t, string(first.Blocks[i].Content), string(second.Blocks[i].Content))
	}
}
