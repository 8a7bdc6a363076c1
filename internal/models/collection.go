package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CollectionSet is the single per-user document holding all of that user's
// named article collections. Collection names are case-sensitive and unique
// within the set; article ids within a collection are unique but keep
// insertion order for display. Article ids are soft references.
type CollectionSet struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	UserID      string              `bson:"user_id" json:"user_id"`
	Collections map[string][]string `bson:"collections" json:"collections"`
}

// CollectionRef is the lightweight result returned when a collection is
// created inside an already-existing set. The first collection a user ever
// creates returns the full CollectionSet instead.
type CollectionRef struct {
	UserID         string `json:"user_id"`
	CollectionName string `json:"collection_name"`
}

// HydratedCollections replaces every article id in a user's collections with
// the full article document. Ids that no longer resolve are dropped.
type HydratedCollections struct {
	UserID      string               `json:"user_id"`
	Collections map[string][]Article `json:"collections"`
}
