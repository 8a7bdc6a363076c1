package sessions

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository stores refresh sessions. Both backends return (nil, nil) for an
// unknown refresh token; callers treat absence as an auth failure, not an
// error.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByRefresh(ctx context.Context, refresh string) (*Session, error)
	DeleteByRefresh(ctx context.Context, refresh string) error
}

// applied when a session arrives without an expiry of its own
const fallbackSessionTTL = 7 * 24 * time.Hour

// MongoRepository keeps sessions in the primary document store. Used when
// Redis is not configured; expired documents are filtered on read by the
// service, not swept.
type MongoRepository struct {
	sessions *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{sessions: col}
}

func (r *MongoRepository) Create(ctx context.Context, s *Session) error {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.ExpiresAt.IsZero() {
		s.ExpiresAt = now.Add(fallbackSessionTTL)
	}
	_, err := r.sessions.InsertOne(ctx, s)
	return err
}

func (r *MongoRepository) GetByRefresh(ctx context.Context, refresh string) (*Session, error) {
	var s Session
	if err := r.sessions.FindOne(ctx, bson.M{"refreshToken": refresh}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *MongoRepository) DeleteByRefresh(ctx context.Context, refresh string) error {
	_, err := r.sessions.DeleteOne(ctx, bson.M{"refreshToken": refresh})
	return err
}
