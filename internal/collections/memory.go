package collections

import (
	"context"
	"sync"

	"github.com/ESRS-Group/backend-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is an in-memory Repository for unit tests. It mirrors the
// Mongo conditional-update semantics, including insertion-ordered set-adds.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*models.CollectionSet
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: map[string]*models.CollectionSet{}}
}

func copySet(s *models.CollectionSet) *models.CollectionSet {
	cp := &models.CollectionSet{ID: s.ID, UserID: s.UserID, Collections: map[string][]string{}}
	for name, ids := range s.Collections {
		cp.Collections[name] = append([]string{}, ids...)
	}
	return cp
}

func (m *MemoryRepository) Get(ctx context.Context, userID string) (*models.CollectionSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.store[userID]
	if !ok {
		return nil, nil
	}
	return copySet(s), nil
}

func (m *MemoryRepository) CreateSet(ctx context.Context, userID, name string) (*models.CollectionSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &models.CollectionSet{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Collections: map[string][]string{name: {}},
	}
	m.store[userID] = s
	return copySet(s), nil
}

func (m *MemoryRepository) CreateCollection(ctx context.Context, userID, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.store[userID]
	if !ok {
		return false, nil
	}
	if ids, ok := s.Collections[name]; ok && len(ids) == 0 {
		// already empty, nothing changes
		return false, nil
	}
	s.Collections[name] = []string{}
	return true, nil
}

func (m *MemoryRepository) AddArticle(ctx context.Context, userID, name, articleID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.store[userID]
	if !ok {
		return false, nil
	}
	ids, ok := s.Collections[name]
	if !ok {
		return false, nil
	}
	for _, id := range ids {
		if id == articleID {
			return true, nil
		}
	}
	s.Collections[name] = append(ids, articleID)
	return true, nil
}

func (m *MemoryRepository) RemoveArticle(ctx context.Context, userID, name, articleID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.store[userID]
	if !ok {
		return false, nil
	}
	ids, ok := s.Collections[name]
	if !ok {
		return false, nil
	}
	for i, id := range ids {
		if id == articleID {
			s.Collections[name] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return true, nil
}

func (m *MemoryRepository) Delete(ctx context.Context, userID, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.store[userID]
	if !ok {
		return false, nil
	}
	if _, ok := s.Collections[name]; !ok {
		return false, nil
	}
	delete(s.Collections, name)
	return true, nil
}

func (m *MemoryRepository) Rename(ctx context.Context, userID, oldName, newName string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.store[userID]
	if !ok {
		return false, nil
	}
	ids, ok := s.Collections[oldName]
	if !ok {
		return false, nil
	}
	if _, ok := s.Collections[newName]; ok {
		return false, ErrConflict
	}
	s.Collections[newName] = ids
	delete(s.Collections, oldName)
	return true, nil
}
