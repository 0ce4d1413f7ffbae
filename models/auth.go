package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Credentials is the username/password pair posted to the token-auth
// endpoint. Never persisted beyond the login call.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResult is the token-auth response: the bearer token, the officer it
// was issued to and the token expiry as epoch seconds
type AuthResult struct {
	Token   string  `json:"token"`
	Officer Officer `json:"officer"`
	Expiry  int64   `json:"expiry"`
}

// Account holds the structure for the accounts collection: the login
// identity backing an officer
type Account struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	Officer      Officer            `json:"officer" bson:"officer"`
}

// Token holds the structure for the tokens collection, tracking issued
// bearer tokens so expired ones can be purged
type Token struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Token     string             `bson:"token"`
	Username  string             `bson:"username"`
	ExpiresAt int64              `bson:"expires_at"`
}
