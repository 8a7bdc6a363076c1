package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article is a news item produced by the external ingestion pipeline.
// This service only reads and searches articles; it never writes them.
type Article struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Summary   string             `bson:"summary" json:"summary"`
	Author    string             `bson:"author" json:"author"` // exposed as "source" in query filters
	Genre     string             `bson:"genre" json:"genre"`
	Published time.Time          `bson:"published,omitempty" json:"published"`
}

// PagedArticles is the envelope returned by paginated article listings.
type PagedArticles struct {
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Count int       `json:"count"`
	Total int64     `json:"total"`
	Pages int       `json:"pages"`
	Data  []Article `json:"data"`
}
