package databases

// go generate: mockery --name OffenseDatabase

import (
	"context"

	"github.com/apdreports/incident-reports/models"
)

const offenseName = "offenses"

// OffenseDatabase contains the methods to use with the offense catalog
type OffenseDatabase interface {
	Find(ctx context.Context, filter interface{}) ([]models.Offense, error)
}

type offenseDatabase struct {
	db DatabaseHelper
}

// NewOffenseDatabase initializes a new instance of offense database with the
// provided db connection
func NewOffenseDatabase(db DatabaseHelper) OffenseDatabase {
	return &offenseDatabase{
		db: db,
	}
}

func (c *offenseDatabase) Find(ctx context.Context, filter interface{}) ([]models.Offense, error) {
	var offenses []models.Offense
	err := c.db.Collection(offenseName).Find(ctx, filter).Decode(&offenses)
	if err != nil {
		return nil, err
	}
	return offenses, nil
}
