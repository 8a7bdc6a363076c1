package collections

import (
	"context"

	"github.com/ESRS-Group/backend-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements Repository against the collections collection.
// All transitions are single conditional updates keyed on user_id plus a
// dotted path into the nested map; none of them is a multi-document
// transaction.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	// one set per user
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoRepository{col: col}
}

func key(name string) string {
	return "collections." + name
}

func (r *MongoRepository) Get(ctx context.Context, userID string) (*models.CollectionSet, error) {
	var set models.CollectionSet
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&set); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &set, nil
}

func (r *MongoRepository) CreateSet(ctx context.Context, userID, name string) (*models.CollectionSet, error) {
	set := &models.CollectionSet{
		UserID:      userID,
		Collections: map[string][]string{name: {}},
	}
	res, err := r.col.InsertOne(ctx, set)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		set.ID = oid
	}
	return set, nil
}

func (r *MongoRepository) CreateCollection(ctx context.Context, userID, name string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{key(name): []string{}}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoRepository) AddArticle(ctx context.Context, userID, name, articleID string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID, key(name): bson.M{"$exists": true}},
		bson.M{"$addToSet": bson.M{key(name): articleID}})
	if err != nil {
		return false, err
	}
	// matched means the user and the named collection both exist; a no-op
	// add of an already-present id still counts as success
	return res.MatchedCount > 0, nil
}

func (r *MongoRepository) RemoveArticle(ctx context.Context, userID, name, articleID string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID, key(name): bson.M{"$exists": true}},
		bson.M{"$pull": bson.M{key(name): articleID}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoRepository) Delete(ctx context.Context, userID, name string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID, key(name): bson.M{"$exists": true}},
		bson.M{"$unset": bson.M{key(name): ""}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoRepository) Rename(ctx context.Context, userID, oldName, newName string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{
			"user_id":    userID,
			key(oldName): bson.M{"$exists": true},
			key(newName): bson.M{"$exists": false},
		},
		bson.M{"$rename": bson.M{key(oldName): key(newName)}})
	if err != nil {
		return false, err
	}
	if res.MatchedCount > 0 {
		return true, nil
	}
	// distinguish missing source from existing target
	set, err := r.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	if set == nil {
		return false, nil
	}
	if _, ok := set.Collections[oldName]; !ok {
		return false, nil
	}
	if _, ok := set.Collections[newName]; ok {
		return false, ErrConflict
	}
	// raced with a concurrent mutation; report plain failure
	return false, nil
}
