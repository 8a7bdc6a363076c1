package models

import "time"

// User represents an application user profile, keyed by the subject id of the
// external identity provider. Upserted on every successful login; never
// deleted. The provider also supplies a picture URL which is accepted at the
// auth boundary but intentionally not stored here (matches the existing API
// contract; see DESIGN.md).
type User struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	ExternalID string    `bson:"external_id" json:"externalId"`
	Email      string    `bson:"email" json:"email"`
	Name       string    `bson:"name" json:"name"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
