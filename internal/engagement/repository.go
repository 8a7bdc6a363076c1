package engagement

import (
	"context"

	"github.com/ESRS-Group/backend-api/internal/models"
)

// CommentRepository defines persistence for article comments. Comments are
// append-only: created, listed, deleted by id, never updated. A limit <= 0
// means unbounded.
type CommentRepository interface {
	Insert(ctx context.Context, c *models.Comment) error
	// ListByArticle returns comments sorted by created_at ascending.
	ListByArticle(ctx context.Context, articleID string, limit int64) ([]models.Comment, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.Comment, error)
	// DeleteByID reports whether exactly one comment was removed. A missing
	// or malformed id yields false, not an error.
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// RatingRepository defines persistence for credibility ratings. No
// uniqueness is enforced on (user, article); duplicates coexist.
type RatingRepository interface {
	Insert(ctx context.Context, r *models.Rating) error
	ListByArticle(ctx context.Context, articleID string) ([]models.Rating, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.Rating, error)
}
