package collections

import (
	"context"
	"errors"

	"github.com/ESRS-Group/backend-api/internal/models"
)

var (
	// ErrConflict reports a rename onto a name that already exists.
	ErrConflict = errors.New("collection name already exists")
	// ErrNotModified reports a create that matched the user's set but
	// changed nothing (the name already existed as an empty collection).
	ErrNotModified = errors.New("collection set not modified")
)

// Repository persists the one-document-per-user CollectionSet and its
// transitions. Mutations against a missing user or missing collection name
// report false rather than creating anything.
type Repository interface {
	// Get returns the user's set, or (nil, nil) when the user has never
	// created a collection.
	Get(ctx context.Context, userID string) (*models.CollectionSet, error)
	// CreateSet inserts a brand-new set holding a single empty collection
	// and returns the full document.
	CreateSet(ctx context.Context, userID, name string) (*models.CollectionSet, error)
	// CreateCollection sets collections[name] = [] on an existing set. An
	// existing non-empty collection is reset to empty; the returned flag is
	// false when the document was left unchanged.
	CreateCollection(ctx context.Context, userID, name string) (bool, error)
	// AddArticle set-adds an article id into an existing collection. False
	// when the user or the named collection does not exist.
	AddArticle(ctx context.Context, userID, name, articleID string) (bool, error)
	RemoveArticle(ctx context.Context, userID, name, articleID string) (bool, error)
	// Delete removes the named collection from the set entirely.
	Delete(ctx context.Context, userID, name string) (bool, error)
	// Rename moves the article list to newName and drops oldName. False when
	// oldName is absent; ErrConflict when newName already exists.
	Rename(ctx context.Context, userID, oldName, newName string) (bool, error)
}
