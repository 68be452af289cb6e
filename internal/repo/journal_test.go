package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere-backend/internal/domain/journal"
	"lumiere-backend/internal/domain/media"
)

func seedJournal(t *testing.T) (*ArticleRepo, *AuthorRepo, *CategoryRepo, *journal.Author, *journal.Category) {
	t.Helper()
	db := setupTestDB(t)
	articles := NewArticleRepo(db)
	authors := NewAuthorRepo(db)
	categories := NewCategoryRepo(db)

	author, err := authors.Create(testCtx(), AuthorInput{
		Name:   "Claire Dubois",
		Bio:    ptr("Gemologist"),
		Avatar: &media.Ref{URL: "https://cdn.example/claire.jpg", PublicID: "lumiere/claire"},
	})
	require.NoError(t, err)

	category, err := categories.Create(testCtx(), CategoryInput{Name: "Buying Guides"})
	require.NoError(t, err)

	return articles, authors, categories, author, category
}

func TestArticleCreateWithReferences(t *testing.T) {
	articles, _, _, author, category := seedJournal(t)

	article, err := articles.Create(testCtx(), ArticleInput{
		Title:      "Choosing a Lab Grown Stone",
		Excerpt:    ptr("Where to start"),
		Status:     journal.StatusPublished,
		AuthorID:   ptr(&author.ID),
		CategoryID: ptr(&category.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, "choosing-a-lab-grown-stone", article.Slug)
	require.NotNil(t, article.Author)
	assert.Equal(t, "Claire Dubois", article.Author.Name)
	require.NotNil(t, article.Category)
	assert.Equal(t, "buying-guides", article.Category.Slug)
}

func TestArticleClearAuthorReference(t *testing.T) {
	articles, _, _, author, _ := seedJournal(t)

	_, err := articles.Create(testCtx(), ArticleInput{
		Title:    "Care Guide",
		AuthorID: ptr(&author.ID),
	})
	require.NoError(t, err)

	// a nil inner pointer clears the reference
	var clear *uint
	got, err := articles.Update(testCtx(), "care-guide", ArticleInput{AuthorID: &clear})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.AuthorID)

	// omitting the field leaves whatever is there alone
	got, err = articles.Update(testCtx(), "care-guide", ArticleInput{Title: "Care and Cleaning"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.AuthorID)
	assert.Equal(t, "care-and-cleaning", got.Slug)
}

func TestArticleListFilters(t *testing.T) {
	articles, _, _, author, category := seedJournal(t)

	_, err := articles.Create(testCtx(), ArticleInput{
		Title: "By Claire", Status: journal.StatusPublished, AuthorID: ptr(&author.ID),
	})
	require.NoError(t, err)
	_, err = articles.Create(testCtx(), ArticleInput{
		Title: "Guide Entry", Status: journal.StatusPublished, CategoryID: ptr(&category.ID),
	})
	require.NoError(t, err)
	_, err = articles.Create(testCtx(), ArticleInput{Title: "Unpublished"})
	require.NoError(t, err)

	list, total, err := articles.List(testCtx(), ArticleFilter{Status: journal.StatusPublished})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, list, 2)

	list, _, err = articles.List(testCtx(), ArticleFilter{AuthorID: &author.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "By Claire", list[0].Title)

	list, _, err = articles.List(testCtx(), ArticleFilter{CategoryID: &category.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Guide Entry", list[0].Title)
}

func TestAuthorDeleteNullsArticleReference(t *testing.T) {
	articles, authors, _, author, _ := seedJournal(t)

	_, err := articles.Create(testCtx(), ArticleInput{
		Title:    "Orphaned Soon",
		AuthorID: ptr(&author.ID),
	})
	require.NoError(t, err)

	ok, err := authors.Delete(testCtx(), author.Slug)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := articles.GetBySlug(testCtx(), "orphaned-soon", false)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.AuthorID)
	assert.Nil(t, got.Author)
}

func TestCategoryDeleteNullsArticleReference(t *testing.T) {
	articles, _, categories, _, category := seedJournal(t)

	_, err := articles.Create(testCtx(), ArticleInput{
		Title:      "Guide",
		CategoryID: ptr(&category.ID),
	})
	require.NoError(t, err)

	ok, err := categories.Delete(testCtx(), category.Slug)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := articles.GetBySlug(testCtx(), "guide", false)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.CategoryID)
}

func TestAuthorUpdateRenameReslugs(t *testing.T) {
	_, authors, _, author, _ := seedJournal(t)

	got, err := authors.Update(testCtx(), author.Slug, AuthorInput{Name: "Claire Moreau"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "claire-moreau", got.Slug)
	assert.Equal(t, "Gemologist", got.Bio)
}
