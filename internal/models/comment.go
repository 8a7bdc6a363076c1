package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a user-submitted comment on an article. The article reference is
// a plain string and is not validated against the articles collection.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ArticleID string             `bson:"article_id" json:"article_id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Body      string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
