package sessions

import "time"

// Session represents a persistent refresh session. The subject is the user's
// external identity id.
type Session struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	RefreshToken string    `bson:"refreshToken" json:"refreshToken"`
	ExternalID   string    `bson:"external_id" json:"externalId"`
	ExpiresAt    time.Time `bson:"expiresAt" json:"expiresAt"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
