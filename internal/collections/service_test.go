package collections

import (
	"context"
	"testing"

	"github.com/ESRS-Group/backend-api/internal/articles"
	"github.com/ESRS-Group/backend-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *articles.MemoryRepository) {
	arts := articles.NewMemoryRepository()
	return NewService(NewMemoryRepository(), arts), arts
}

func TestCreateFirstCollectionReturnsFullSet(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	set, ref, err := svc.Create(ctx, "u1", "A")
	require.NoError(t, err)
	require.Nil(t, ref)
	require.NotNil(t, set)
	require.Equal(t, "u1", set.UserID)
	require.Equal(t, map[string][]string{"A": {}}, set.Collections)

	// same name for a different user is isolated
	set2, ref2, err := svc.Create(ctx, "u2", "A")
	require.NoError(t, err)
	require.Nil(t, ref2)
	require.NotNil(t, set2)

	got, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, map[string][]string{"A": {}}, got.Collections)
}

func TestCreateInExistingSetReturnsRef(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Create(ctx, "u1", "A")
	require.NoError(t, err)

	set, ref, err := svc.Create(ctx, "u1", "B")
	require.NoError(t, err)
	require.Nil(t, set)
	require.NotNil(t, ref)
	require.Equal(t, "u1", ref.UserID)
	require.Equal(t, "B", ref.CollectionName)

	// re-creating an existing empty collection changes nothing
	_, _, err = svc.Create(ctx, "u1", "B")
	require.ErrorIs(t, err, ErrNotModified)
}

func TestCreateResetsExistingNonEmptyCollection(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Create(ctx, "u1", "A")
	require.NoError(t, err)
	ok, err := svc.AddArticle(ctx, "u1", "A", "a1")
	require.NoError(t, err)
	require.True(t, ok)

	_, ref, err := svc.Create(ctx, "u1", "A")
	require.NoError(t, err)
	require.NotNil(t, ref)

	got, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, got.Collections["A"])
}

func TestCreateRejectsUnstorableNames(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, name := range []string{"", "a.b", "$top"} {
		_, _, err := svc.Create(ctx, "u1", name)
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
}

func TestAddArticleSetSemantics(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Create(ctx, "u1", "Favorites")
	require.NoError(t, err)

	ok, err := svc.AddArticle(ctx, "u1", "Favorites", "a1")
	require.NoError(t, err)
	require.True(t, ok)

	// idempotent: second add of the same id still succeeds
	ok, err = svc.AddArticle(ctx, "u1", "Favorites", "a1")
	require.NoError(t, err)
	require.True(t, ok)

	got, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"a1"}, got.Collections["Favorites"])

	// no auto-creation for a missing collection or user
	ok, err = svc.AddArticle(ctx, "u1", "Missing", "a1")
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = svc.AddArticle(ctx, "ghost", "Favorites", "a1")
	require.NoError(t, err)
	require.False(t, ok)

	got, err = svc.List(ctx, "u1")
	require.NoError(t, err)
	require.NotContains(t, got.Collections, "Missing")
}

func TestRemoveArticleAndDelete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Create(ctx, "u1", "A")
	require.NoError(t, err)
	_, err = svc.AddArticle(ctx, "u1", "A", "a1")
	require.NoError(t, err)

	ok, err := svc.RemoveArticle(ctx, "u1", "A", "a1")
	require.NoError(t, err)
	require.True(t, ok)

	// removing from a missing collection is false
	ok, err = svc.RemoveArticle(ctx, "u1", "Nope", "a1")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = svc.Delete(ctx, "u1", "A")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Delete(ctx, "u1", "A")
	require.NoError(t, err)
	require.False(t, ok)

	got, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, got.Collections)
}

func TestRenamePreservesArticlesAndConflicts(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Create(ctx, "u1", "Old")
	require.NoError(t, err)
	_, err = svc.AddArticle(ctx, "u1", "Old", "a1")
	require.NoError(t, err)
	_, err = svc.AddArticle(ctx, "u1", "Old", "a2")
	require.NoError(t, err)

	ok, err := svc.Rename(ctx, "u1", "Old", "New")
	require.NoError(t, err)
	require.True(t, ok)

	got, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.NotContains(t, got.Collections, "Old")
	require.Equal(t, []string{"a1", "a2"}, got.Collections["New"])

	// renaming a missing name is false, not an error
	ok, err = svc.Rename(ctx, "u1", "Old", "Other")
	require.NoError(t, err)
	require.False(t, ok)

	// renaming onto an existing name is a conflict
	_, _, err = svc.Create(ctx, "u1", "Second")
	require.NoError(t, err)
	_, err = svc.Rename(ctx, "u1", "Second", "New")
	require.ErrorIs(t, err, ErrConflict)
}

func TestCollectionScenario(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Create(ctx, "u1", "Favorites")
	require.NoError(t, err)

	for _, id := range []string{"a1", "a1", "a2"} {
		ok, err := svc.AddArticle(ctx, "u1", "Favorites", id)
		require.NoError(t, err)
		require.True(t, ok)
	}

	ok, err := svc.RemoveArticle(ctx, "u1", "Favorites", "a1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Rename(ctx, "u1", "Favorites", "Picks")
	require.NoError(t, err)
	require.True(t, ok)

	got, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, map[string][]string{"Picks": {"a2"}}, got.Collections)
}

func TestListWithArticlesDropsStaleReferences(t *testing.T) {
	svc, arts := newTestService()
	ctx := context.Background()

	alive := arts.Add(models.Article{Title: "Still here"})
	dead := arts.Add(models.Article{Title: "Soon gone"})

	_, _, err := svc.Create(ctx, "u1", "Mix")
	require.NoError(t, err)
	for _, id := range []string{alive.ID.Hex(), dead.ID.Hex(), "not-a-valid-id"} {
		ok, err := svc.AddArticle(ctx, "u1", "Mix", id)
		require.NoError(t, err)
		require.True(t, ok)
	}

	arts.Remove(dead.ID.Hex())

	hydrated, err := svc.ListWithArticles(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", hydrated.UserID)
	require.Len(t, hydrated.Collections["Mix"], 1)
	require.Equal(t, "Still here", hydrated.Collections["Mix"][0].Title)
}

func TestListForUnknownUserIsEmpty(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	got, err := svc.List(ctx, "nobody")
	require.NoError(t, err)
	require.Equal(t, "nobody", got.UserID)
	require.Empty(t, got.Collections)

	hydrated, err := svc.ListWithArticles(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, hydrated.Collections)
}
