package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is a credibility rating for an article. There is no uniqueness
// constraint on (user_id, article_id): a user may submit several ratings for
// the same article and all of them are kept.
type Rating struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ArticleID string             `bson:"article_id" json:"article_id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Accuracy  int                `bson:"accuracy" json:"accuracy"`
	Bias      int                `bson:"bias" json:"bias"`
	Insight   int                `bson:"insight" json:"insight"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at"`
}

// RatingWithArticle is a Rating joined with the title of the rated article
// for display. ArticleTitle carries the sentinel "Article Not Found" when the
// referenced article no longer resolves, and "Error Fetching Article" when
// the lookup itself failed; both are data values, not errors.
type RatingWithArticle struct {
	Rating       `bson:",inline"`
	ArticleTitle string `json:"article_title"`
}
