package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere-backend/internal/domain/catalog"
	"lumiere-backend/internal/domain/media"
)

func TestProductCreateSlugCollision(t *testing.T) {
	r := NewProductRepo(setupTestDB(t))

	p1, err := r.Create(testCtx(), ProductInput{Name: "Test Diamond"})
	require.NoError(t, err)
	assert.Equal(t, "test-diamond", p1.Slug)
	assert.Equal(t, catalog.StatusDraft, p1.Status)
	assert.True(t, p1.IsShow)

	p2, err := r.Create(testCtx(), ProductInput{Name: "Test Diamond"})
	require.NoError(t, err)
	assert.Equal(t, "test-diamond-1", p2.Slug)
}

func TestProductImagesRoundTrip(t *testing.T) {
	r := NewProductRepo(setupTestDB(t))

	images := []media.Ref{
		{URL: "https://cdn.example/solitaire.jpg", PublicID: "lumiere/solitaire", Width: 1600, Height: 1200, Format: "jpg"},
	}
	_, err := r.Create(testCtx(), ProductInput{
		Name:        "Solitaire Ring",
		DiamondType: ptr(catalog.DiamondLabGrown),
		Carat:       ptr(1.2),
		Images:      &images,
		Status:      catalog.StatusPublished,
	})
	require.NoError(t, err)

	got, err := r.GetBySlug(testCtx(), "solitaire-ring", true)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "lumiere/solitaire", got.Images[0].PublicID)
	assert.Equal(t, 1600, got.Images[0].Width)
	assert.Equal(t, catalog.DiamondLabGrown, got.DiamondType)
}

func TestProductListFilters(t *testing.T) {
	r := NewProductRepo(setupTestDB(t))

	seed := []ProductInput{
		{Name: "Round Lab", DiamondType: ptr(catalog.DiamondLabGrown), Shape: ptr("round"), IsFeatured: ptr(true), Status: catalog.StatusPublished},
		{Name: "Oval Natural", DiamondType: ptr(catalog.DiamondNatural), Shape: ptr("oval"), Status: catalog.StatusPublished},
		{Name: "Hidden Round", Shape: ptr("round"), IsShow: ptr(false), Status: catalog.StatusPublished},
		{Name: "Draft Ring", Status: catalog.StatusDraft},
	}
	for _, in := range seed {
		_, err := r.Create(testCtx(), in)
		require.NoError(t, err)
	}

	products, total, err := r.List(testCtx(), ProductFilter{Status: catalog.StatusPublished, VisibleOnly: true})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, products, 2)

	products, _, err = r.List(testCtx(), ProductFilter{Featured: ptr(true)})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Round Lab", products[0].Name)

	products, _, err = r.List(testCtx(), ProductFilter{DiamondType: catalog.DiamondNatural})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Oval Natural", products[0].Name)

	products, _, err = r.List(testCtx(), ProductFilter{Shape: "round"})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductUpdatePartial(t *testing.T) {
	r := NewProductRepo(setupTestDB(t))

	_, err := r.Create(testCtx(), ProductInput{
		Name:        "Emerald Cut",
		Price:       ptr(4200.0),
		Description: ptr("Original"),
	})
	require.NoError(t, err)

	// only the price moves, everything else stays put
	got, err := r.Update(testCtx(), "emerald-cut", ProductInput{Price: ptr(3900.0)})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3900.0, got.Price)
	assert.Equal(t, "Original", got.Description)
	assert.Equal(t, "emerald-cut", got.Slug)

	got, err = r.Update(testCtx(), "no-such-product", ProductInput{Price: ptr(1.0)})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductDelete(t *testing.T) {
	r := NewProductRepo(setupTestDB(t))

	_, err := r.Create(testCtx(), ProductInput{Name: "Pear Pendant"})
	require.NoError(t, err)

	ok, err := r.Delete(testCtx(), "pear-pendant")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Delete(testCtx(), "pear-pendant")
	require.NoError(t, err)
	assert.False(t, ok)
}
