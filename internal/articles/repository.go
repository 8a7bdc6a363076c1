package articles

import (
	"context"
	"errors"

	"github.com/ESRS-Group/backend-api/internal/models"
)

// ErrNotFound covers both a well-formed id with no matching document and a
// malformed id. The two are deliberately indistinguishable to callers.
var ErrNotFound = errors.New("article not found")

// Filter restricts article listings. Empty fields are ignored; non-empty
// fields are exact matches. Source matches the stored author field.
type Filter struct {
	Genre  string
	Source string
}

// Repository defines read operations over the article record set. Articles
// are written by an external ingestion process; this service never mutates
// them.
type Repository interface {
	// List returns all matching articles sorted by published descending,
	// articles without a published date last.
	List(ctx context.Context, f Filter) ([]models.Article, error)
	// ListPage returns one page of the same filtered, sorted result set.
	ListPage(ctx context.Context, f Filter, skip, limit int64) ([]models.Article, error)
	// Count returns the full matching count for the filter.
	Count(ctx context.Context, f Filter) (int64, error)
	// GetByID returns ErrNotFound for malformed as well as absent ids.
	GetByID(ctx context.Context, id string) (*models.Article, error)
	// Search matches the query case-insensitively as a substring of title,
	// summary, author or genre.
	Search(ctx context.Context, query string) ([]models.Article, error)
}
