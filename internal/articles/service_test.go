package articles

import (
	"context"
	"testing"
	"time"

	"github.com/ESRS-Group/backend-api/internal/models"
	"github.com/stretchr/testify/require"
)

func seedRepo(t *testing.T) (*MemoryRepository, []models.Article) {
	t.Helper()
	repo := NewMemoryRepository()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seeded := []models.Article{
		repo.Add(models.Article{Title: "Markets rally", Summary: "Stocks up", Author: "BBC-News", Genre: "Business", Published: base.Add(3 * time.Hour)}),
		repo.Add(models.Article{Title: "Election results", Summary: "Vote counted", Author: "Reuters", Genre: "Politics", Published: base.Add(2 * time.Hour)}),
		repo.Add(models.Article{Title: "Cup final recap", Summary: "Late winner", Author: "BBC-News", Genre: "Sports", Published: base.Add(1 * time.Hour)}),
		repo.Add(models.Article{Title: "Undated piece", Summary: "No timestamp", Author: "Reuters", Genre: "Politics"}),
	}
	return repo, seeded
}

func TestListFiltersAndSorts(t *testing.T) {
	repo, _ := seedRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	all, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	// newest first, undated last
	require.Equal(t, "Markets rally", all[0].Title)
	require.Equal(t, "Undated piece", all[3].Title)

	politics, err := svc.List(ctx, "Politics", "")
	require.NoError(t, err)
	require.Len(t, politics, 2)
	for _, a := range politics {
		require.Equal(t, "Politics", a.Genre)
	}

	bbc, err := svc.List(ctx, "", "BBC-News")
	require.NoError(t, err)
	require.Len(t, bbc, 2)

	both, err := svc.List(ctx, "Sports", "BBC-News")
	require.NoError(t, err)
	require.Len(t, both, 1)
	require.Equal(t, "Cup final recap", both[0].Title)
}

func TestListPaginatedReconstructsFullSet(t *testing.T) {
	repo, _ := seedRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.ListPaginated(ctx, "", "", 1, 3)
	require.NoError(t, err)
	require.Equal(t, 1, first.Page)
	require.Equal(t, 3, first.Limit)
	require.Equal(t, int64(4), first.Total)
	require.Equal(t, 2, first.Pages)
	require.Equal(t, 3, first.Count)

	second, err := svc.ListPaginated(ctx, "", "", 2, 3)
	require.NoError(t, err)
	require.Equal(t, 1, second.Count)

	// union over all pages covers the whole set without duplicates
	seen := map[string]bool{}
	for _, a := range append(first.Data, second.Data...) {
		require.False(t, seen[a.ID.Hex()], "duplicate article across pages")
		seen[a.ID.Hex()] = true
	}
	require.Len(t, seen, 4)

	// out-of-range page is empty, not an error
	empty, err := svc.ListPaginated(ctx, "", "", 5, 3)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Count)
	require.Equal(t, int64(4), empty.Total)
}

func TestGetByIDCollapsesMalformedAndAbsent(t *testing.T) {
	repo, seeded := seedRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	got, err := svc.GetByID(ctx, seeded[0].ID.Hex())
	require.NoError(t, err)
	require.Equal(t, seeded[0].Title, got.Title)

	// malformed id
	_, err = svc.GetByID(ctx, "123invalidid")
	require.ErrorIs(t, err, ErrNotFound)

	// well-formed but absent id yields the identical error
	_, err = svc.GetByID(ctx, "67bf73248d2ae870c932d262")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	repo, _ := seedRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	byTitle, err := svc.Search(ctx, "rally")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)

	bySource, err := svc.Search(ctx, "bbc")
	require.NoError(t, err)
	require.Len(t, bySource, 2)

	byGenre, err := svc.Search(ctx, "POLITICS")
	require.NoError(t, err)
	require.Len(t, byGenre, 2)

	none, err := svc.Search(ctx, "zebra")
	require.NoError(t, err)
	require.Empty(t, none)
}
