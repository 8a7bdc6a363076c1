package collections

import (
	"context"
	"errors"
	"strings"

	"github.com/ESRS-Group/backend-api/internal/articles"
	"github.com/ESRS-Group/backend-api/internal/models"
	"github.com/ESRS-Group/backend-api/pkg/logger"
)

// ErrInvalidName reports a collection name that cannot be stored as a map
// key in the document store.
var ErrInvalidName = errors.New("invalid collection name")

// Service owns the CollectionSet invariants: unique names per user, unique
// article ids per collection, no auto-creation on mutation.
type Service struct {
	repo     Repository
	articles articles.Repository
}

func NewService(r Repository, a articles.Repository) *Service {
	return &Service{repo: r, articles: a}
}

// validateName rejects names the store cannot hold as nested map keys.
// Names are otherwise free-form and case-sensitive.
func validateName(name string) error {
	if name == "" || strings.Contains(name, ".") || strings.HasPrefix(name, "$") {
		return ErrInvalidName
	}
	return nil
}

// Create makes the named collection for the user. The two branches return
// different shapes on purpose: a user's first collection returns the full
// new CollectionSet, while a collection added to an existing set returns a
// lightweight reference. Creating a name that already exists as an empty
// collection changes nothing and reports ErrNotModified; creating an
// existing non-empty name resets it to empty.
func (s *Service) Create(ctx context.Context, userID, name string) (*models.CollectionSet, *models.CollectionRef, error) {
	if err := validateName(name); err != nil {
		return nil, nil, err
	}
	set, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if set == nil {
		created, err := s.repo.CreateSet(ctx, userID, name)
		if err != nil {
			return nil, nil, err
		}
		return created, nil, nil
	}
	modified, err := s.repo.CreateCollection(ctx, userID, name)
	if err != nil {
		return nil, nil, err
	}
	if !modified {
		return nil, nil, ErrNotModified
	}
	return nil, &models.CollectionRef{UserID: userID, CollectionName: name}, nil
}

func (s *Service) AddArticle(ctx context.Context, userID, name, articleID string) (bool, error) {
	return s.repo.AddArticle(ctx, userID, name, articleID)
}

func (s *Service) RemoveArticle(ctx context.Context, userID, name, articleID string) (bool, error) {
	return s.repo.RemoveArticle(ctx, userID, name, articleID)
}

func (s *Service) Delete(ctx context.Context, userID, name string) (bool, error) {
	return s.repo.Delete(ctx, userID, name)
}

func (s *Service) Rename(ctx context.Context, userID, oldName, newName string) (bool, error) {
	if err := validateName(newName); err != nil {
		return false, err
	}
	return s.repo.Rename(ctx, userID, oldName, newName)
}

// List returns the raw set without article hydration. A user who never
// created a collection gets an empty set, not an error.
func (s *Service) List(ctx context.Context, userID string) (*models.CollectionSet, error) {
	set, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return &models.CollectionSet{UserID: userID, Collections: map[string][]string{}}, nil
	}
	return set, nil
}

// ListWithArticles hydrates every article reference in the user's set. Ids
// that fail to resolve, for whatever reason, are dropped from the result and
// logged; one stale reference must not fail the whole view.
func (s *Service) ListWithArticles(ctx context.Context, userID string) (*models.HydratedCollections, error) {
	set, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &models.HydratedCollections{UserID: userID, Collections: map[string][]models.Article{}}
	if set == nil {
		return out, nil
	}
	for name, ids := range set.Collections {
		hydrated := []models.Article{}
		for _, id := range ids {
			a, err := s.articles.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, articles.ErrNotFound) {
					logger.Debugf("dropping unresolved article %s from collection %q of user %s", id, name, userID)
				} else {
					logger.Warnf("dropping article %s from collection %q of user %s after lookup failure: %v", id, name, userID, err)
				}
				continue
			}
			hydrated = append(hydrated, *a)
		}
		out.Collections[name] = hydrated
	}
	return out, nil
}
