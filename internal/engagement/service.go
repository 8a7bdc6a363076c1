package engagement

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/ESRS-Group/backend-api/internal/articles"
	"github.com/ESRS-Group/backend-api/internal/models"
	"github.com/ESRS-Group/backend-api/pkg/logger"
)

// Sentinel titles attached when the rating -> article join cannot produce a
// real title. These travel as data, never as errors.
const (
	TitleNotFound   = "Article Not Found"
	TitleFetchError = "Error Fetching Article"
)

// ArticleGetter is the one article operation the rating join needs.
type ArticleGetter interface {
	GetByID(ctx context.Context, id string) (*models.Article, error)
}

// Service bundles comment and rating operations.
type Service struct {
	comments CommentRepository
	ratings  RatingRepository
	articles ArticleGetter
}

func NewService(c CommentRepository, r RatingRepository, a ArticleGetter) *Service {
	return &Service{comments: c, ratings: r, articles: a}
}

// AddComment stamps created_at server-side and stores the comment. The
// article reference is not validated.
func (s *Service) AddComment(ctx context.Context, articleID, userID, body string) (*models.Comment, error) {
	c := &models.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListComments(ctx context.Context, articleID string, limit int64) ([]models.Comment, error) {
	return s.comments.ListByArticle(ctx, articleID, limit)
}

func (s *Service) ListCommentsByUser(ctx context.Context, userID string, limit int64) ([]models.Comment, error) {
	return s.comments.ListByUser(ctx, userID, limit)
}

// DeleteComment reports whether a comment was removed; deleting a missing id
// is false, not an error.
func (s *Service) DeleteComment(ctx context.Context, id string) (bool, error) {
	return s.comments.DeleteByID(ctx, id)
}

func (s *Service) AddRating(ctx context.Context, articleID, userID string, accuracy, bias, insight int) (*models.Rating, error) {
	r := &models.Rating{
		ArticleID: articleID,
		UserID:    userID,
		Accuracy:  accuracy,
		Bias:      bias,
		Insight:   insight,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.ratings.Insert(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) ListRatingsByArticle(ctx context.Context, articleID string) ([]models.Rating, error) {
	return s.ratings.ListByArticle(ctx, articleID)
}

// ListRatingsByUser joins each rating with its article title. Join misses
// become the TitleNotFound sentinel and join failures TitleFetchError;
// ratings missing a timestamp get one backfilled for display only. The
// result is sorted created_at descending in memory, after the backfill.
func (s *Service) ListRatingsByUser(ctx context.Context, userID string, limit int64) ([]models.RatingWithArticle, error) {
	list, err := s.ratings.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]models.RatingWithArticle, 0, len(list))
	for _, r := range list {
		title := TitleNotFound
		a, err := s.articles.GetByID(ctx, r.ArticleID)
		switch {
		case err == nil:
			title = a.Title
		case errors.Is(err, articles.ErrNotFound):
			// stale soft reference, keep the sentinel
		default:
			logger.Errorf("rating join failed for article %s: %v", r.ArticleID, err)
			title = TitleFetchError
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = time.Now().UTC()
		}
		out = append(out, models.RatingWithArticle{Rating: r, ArticleTitle: title})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
