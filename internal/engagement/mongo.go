package engagement

import (
	"context"

	"github.com/ESRS-Group/backend-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var createdAsc = bson.D{{Key: "created_at", Value: 1}}

// MongoCommentRepository implements CommentRepository.
type MongoCommentRepository struct {
	col *mongo.Collection
}

func NewMongoCommentRepository(col *mongo.Collection) *MongoCommentRepository {
	return &MongoCommentRepository{col: col}
}

func (r *MongoCommentRepository) Insert(ctx context.Context, c *models.Comment) error {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}

func (r *MongoCommentRepository) ListByArticle(ctx context.Context, articleID string, limit int64) ([]models.Comment, error) {
	return r.list(ctx, bson.M{"article_id": articleID}, limit)
}

func (r *MongoCommentRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]models.Comment, error) {
	return r.list(ctx, bson.M{"user_id": userID}, limit)
}

func (r *MongoCommentRepository) list(ctx context.Context, q bson.M, limit int64) ([]models.Comment, error) {
	opts := options.Find().SetSort(createdAsc)
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Comment{}
	for cur.Next(ctx) {
		var c models.Comment
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}

func (r *MongoCommentRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

// MongoRatingRepository implements RatingRepository.
type MongoRatingRepository struct {
	col *mongo.Collection
}

func NewMongoRatingRepository(col *mongo.Collection) *MongoRatingRepository {
	return &MongoRatingRepository{col: col}
}

func (r *MongoRatingRepository) Insert(ctx context.Context, rt *models.Rating) error {
	res, err := r.col.InsertOne(ctx, rt)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rt.ID = oid
	}
	return nil
}

func (r *MongoRatingRepository) ListByArticle(ctx context.Context, articleID string) ([]models.Rating, error) {
	return r.list(ctx, bson.M{"article_id": articleID}, 0)
}

func (r *MongoRatingRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]models.Rating, error) {
	return r.list(ctx, bson.M{"user_id": userID}, limit)
}

func (r *MongoRatingRepository) list(ctx context.Context, q bson.M, limit int64) ([]models.Rating, error) {
	opts := options.Find()
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Rating{}
	for cur.Next(ctx) {
		var rt models.Rating
		if err := cur.Decode(&rt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, cur.Err()
}
