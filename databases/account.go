package databases

// go generate: mockery --name AccountDatabase

import (
	"context"

	"github.com/apdreports/incident-reports/models"
)

const accountName = "accounts"

// AccountDatabase contains the methods to use with the account database
type AccountDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Account, error)
}

type accountDatabase struct {
	db DatabaseHelper
}

// NewAccountDatabase initializes a new instance of account database with the
// provided db connection
func NewAccountDatabase(db DatabaseHelper) AccountDatabase {
	return &accountDatabase{
		db: db,
	}
}

func (c *accountDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Account, error) {
	account := &models.Account{}
	err := c.db.Collection(accountName).FindOne(ctx, filter).Decode(&account)
	if err != nil {
		return nil, err
	}
	return account, nil
}
