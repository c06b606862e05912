package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the identity record behind the credential endpoints.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
}
