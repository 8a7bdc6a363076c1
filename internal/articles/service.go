package articles

import (
	"context"

	"github.com/ESRS-Group/backend-api/internal/models"
)

// Service exposes the article operations used by the handler layer.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns all articles matching the optional genre/source filters,
// newest first.
func (s *Service) List(ctx context.Context, genre, source string) ([]models.Article, error) {
	return s.repo.List(ctx, Filter{Genre: genre, Source: source})
}

// ListPaginated returns one page of the filtered listing together with the
// full matching total. Total and page data come from separate queries; the
// result is eventually consistent under concurrent writes.
func (s *Service) ListPaginated(ctx context.Context, genre, source string, page, limit int) (*models.PagedArticles, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	f := Filter{Genre: genre, Source: source}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	skip := int64(page-1) * int64(limit)
	data, err := s.repo.ListPage(ctx, f, skip, int64(limit))
	if err != nil {
		return nil, err
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return &models.PagedArticles{
		Page:  page,
		Limit: limit,
		Count: len(data),
		Total: total,
		Pages: pages,
		Data:  data,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return s.repo.GetByID(ctx, id)
}

// Search runs a case-insensitive substring match over title, summary, author
// and genre. Empty queries are rejected by the handler before reaching here.
func (s *Service) Search(ctx context.Context, query string) ([]models.Article, error) {
	return s.repo.Search(ctx, query)
}
