package users

import (
	"context"
	"time"

	"github.com/ESRS-Group/backend-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository defines persistence operations for user profiles
type UserRepository interface {
	UpsertByExternalID(ctx context.Context, u *models.User) (*models.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
}

// MongoUserRepository implements UserRepository using MongoDB
type MongoUserRepository struct {
	col *mongo.Collection
}

// NewMongoUserRepository creates a new repository for the given collection
func NewMongoUserRepository(col *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{col: col}
}

// upsertUpdate builds the upsert document: name and email are overwritten on
// every call, createdAt is written only when the profile is first inserted.
func upsertUpdate(u *models.User, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"email":     u.Email,
			"name":      u.Name,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
}

// UpsertByExternalID creates or refreshes the profile keyed by the external
// identity subject.
func (r *MongoUserRepository) UpsertByExternalID(ctx context.Context, u *models.User) (*models.User, error) {
	filter := bson.M{"external_id": u.ExternalID}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var updated models.User
	if err := r.col.FindOneAndUpdate(ctx, filter, upsertUpdate(u, time.Now().UTC()), opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			// Shouldn't happen because of upsert, but handle gracefully
			return u, nil
		}
		return nil, err
	}
	return &updated, nil
}

func (r *MongoUserRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"external_id": externalID}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
