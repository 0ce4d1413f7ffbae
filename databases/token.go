package databases

// go generate: mockery --name TokenDatabase

import (
	"context"

	"github.com/apdreports/incident-reports/models"
)

const tokenName = "tokens"

// TokenDatabase contains the methods to use with the token database
type TokenDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Token, error)
	InsertOne(ctx context.Context, token models.Token) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
}

type tokenDatabase struct {
	db DatabaseHelper
}

// NewTokenDatabase initializes a new instance of token database with the
// provided db connection
func NewTokenDatabase(db DatabaseHelper) TokenDatabase {
	return &tokenDatabase{
		db: db,
	}
}

func (t *tokenDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Token, error) {
	token := &models.Token{}
	err := t.db.Collection(tokenName).FindOne(ctx, filter).Decode(&token)
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (t *tokenDatabase) InsertOne(ctx context.Context, token models.Token) error {
	res := t.db.Collection(tokenName).InsertOne(ctx, token)
	if res.Decode() == nil {
		return ErrNotInserted
	}
	return nil
}

func (t *tokenDatabase) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return t.db.Collection(tokenName).DeleteMany(ctx, filter)
}
