package engagement

import (
	"context"
	"sort"
	"sync"

	"github.com/ESRS-Group/backend-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCommentRepository is an in-memory CommentRepository for unit tests.
type MemoryCommentRepository struct {
	mu    sync.RWMutex
	store []models.Comment
}

func NewMemoryCommentRepository() *MemoryCommentRepository {
	return &MemoryCommentRepository{}
}

func (m *MemoryCommentRepository) Insert(ctx context.Context, c *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	m.store = append(m.store, *c)
	return nil
}

func (m *MemoryCommentRepository) ListByArticle(ctx context.Context, articleID string, limit int64) ([]models.Comment, error) {
	return m.list(func(c models.Comment) bool { return c.ArticleID == articleID }, limit), nil
}

func (m *MemoryCommentRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]models.Comment, error) {
	return m.list(func(c models.Comment) bool { return c.UserID == userID }, limit), nil
}

func (m *MemoryCommentRepository) list(match func(models.Comment) bool, limit int64) []models.Comment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Comment{}
	for _, c := range m.store {
		if match(c) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out
}

func (m *MemoryCommentRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.store {
		if c.ID.Hex() == id {
			m.store = append(m.store[:i], m.store[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// MemoryRatingRepository is an in-memory RatingRepository for unit tests.
type MemoryRatingRepository struct {
	mu    sync.RWMutex
	store []models.Rating
}

func NewMemoryRatingRepository() *MemoryRatingRepository {
	return &MemoryRatingRepository{}
}

func (m *MemoryRatingRepository) Insert(ctx context.Context, r *models.Rating) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	m.store = append(m.store, *r)
	return nil
}

func (m *MemoryRatingRepository) ListByArticle(ctx context.Context, articleID string) ([]models.Rating, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Rating{}
	for _, r := range m.store {
		if r.ArticleID == articleID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryRatingRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]models.Rating, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Rating{}
	for _, r := range m.store {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}
