package articles

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ESRS-Group/backend-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is an in-memory Repository used for unit tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	store []models.Article
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Add inserts an article, assigning an id when missing. Test helper; the real
// record set is owned by the ingestion pipeline.
func (m *MemoryRepository) Add(a models.Article) models.Article {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	m.store = append(m.store, a)
	return a
}

// Remove deletes an article by id. Used by tests to simulate a reference
// going stale underneath a collection.
func (m *MemoryRepository) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.store {
		if a.ID.Hex() == id {
			m.store = append(m.store[:i], m.store[i+1:]...)
			return
		}
	}
}

func (f Filter) matches(a models.Article) bool {
	if f.Genre != "" && a.Genre != f.Genre {
		return false
	}
	if f.Source != "" && a.Author != f.Source {
		return false
	}
	return true
}

func sortPublishedDesc(list []models.Article) {
	sort.SliceStable(list, func(i, j int) bool {
		// missing dates sort last
		if list[j].Published.IsZero() {
			return !list[i].Published.IsZero()
		}
		if list[i].Published.IsZero() {
			return false
		}
		return list[i].Published.After(list[j].Published)
	})
}

func (m *MemoryRepository) filtered(f Filter) []models.Article {
	out := []models.Article{}
	for _, a := range m.store {
		if f.matches(a) {
			out = append(out, a)
		}
	}
	sortPublishedDesc(out)
	return out
}

func (m *MemoryRepository) List(ctx context.Context, f Filter) ([]models.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filtered(f), nil
}

func (m *MemoryRepository) ListPage(ctx context.Context, f Filter, skip, limit int64) ([]models.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := m.filtered(f)
	if skip >= int64(len(all)) {
		return []models.Article{}, nil
	}
	all = all[skip:]
	if limit < int64(len(all)) {
		all = all[:limit]
	}
	return all, nil
}

func (m *MemoryRepository) Count(ctx context.Context, f Filter) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.filtered(f))), nil
}

func (m *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrNotFound
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.store {
		if a.ID.Hex() == id {
			cp := a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepository) Search(ctx context.Context, query string) ([]models.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q := strings.ToLower(query)
	out := []models.Article{}
	for _, a := range m.store {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Summary), q) ||
			strings.Contains(strings.ToLower(a.Author), q) ||
			strings.Contains(strings.ToLower(a.Genre), q) {
			out = append(out, a)
		}
	}
	sortPublishedDesc(out)
	return out, nil
}
