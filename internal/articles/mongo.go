package articles

import (
	"context"
	"regexp"

	"github.com/ESRS-Group/backend-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements Repository against the articles collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

// publishedDesc sorts newest first. BSON orders null/missing below dates, so
// articles without a published value end up last, matching the memory repo.
var publishedDesc = bson.D{{Key: "published", Value: -1}}

func (f Filter) query() bson.M {
	q := bson.M{}
	if f.Genre != "" {
		q["genre"] = f.Genre
	}
	if f.Source != "" {
		q["author"] = f.Source
	}
	return q
}

func (r *MongoRepository) List(ctx context.Context, f Filter) ([]models.Article, error) {
	cur, err := r.col.Find(ctx, f.query(), options.Find().SetSort(publishedDesc))
	if err != nil {
		return nil, err
	}
	return decodeArticles(ctx, cur)
}

func (r *MongoRepository) ListPage(ctx context.Context, f Filter, skip, limit int64) ([]models.Article, error) {
	opts := options.Find().SetSort(publishedDesc).SetSkip(skip).SetLimit(limit)
	cur, err := r.col.Find(ctx, f.query(), opts)
	if err != nil {
		return nil, err
	}
	return decodeArticles(ctx, cur)
}

func (r *MongoRepository) Count(ctx context.Context, f Filter) (int64, error) {
	return r.col.CountDocuments(ctx, f.query())
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// malformed ids collapse to not-found, same as absent ones
		return nil, ErrNotFound
	}
	var a models.Article
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *MongoRepository) Search(ctx context.Context, query string) ([]models.Article, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	q := bson.M{"$or": []bson.M{
		{"title": re},
		{"summary": re},
		{"author": re},
		{"genre": re},
	}}
	cur, err := r.col.Find(ctx, q, options.Find().SetSort(publishedDesc))
	if err != nil {
		return nil, err
	}
	return decodeArticles(ctx, cur)
}

func decodeArticles(ctx context.Context, cur *mongo.Cursor) ([]models.Article, error) {
	defer cur.Close(ctx)
	out := []models.Article{}
	for cur.Next(ctx) {
		var a models.Article
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, cur.Err()
}
