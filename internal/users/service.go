package users

import (
	"context"

	"github.com/ESRS-Group/backend-api/internal/models"
)

// Service encapsulates user-related business logic
type Service struct {
	repo UserRepository
}

func NewService(r UserRepository) *Service {
	return &Service{repo: r}
}

// UpsertFromClaims creates or updates a user profile from verified identity
// claims. The picture claim is read but not persisted; the stored profile is
// sub, email and display name only.
func (s *Service) UpsertFromClaims(ctx context.Context, claims map[string]interface{}) (*models.User, error) {
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	_, _ = claims["picture"].(string)
	if sub == "" {
		return nil, nil
	}
	u := &models.User{
		ExternalID: sub,
		Email:      email,
		Name:       name,
	}
	return s.repo.UpsertByExternalID(ctx, u)
}

func (s *Service) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	return s.repo.GetByExternalID(ctx, externalID)
}
