package databases

// go generate: mockery --name OfficerDatabase

import (
	"context"

	"github.com/apdreports/incident-reports/models"
)

const officerName = "officers"

// OfficerDatabase contains the methods to use with the officer catalog
type OfficerDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Officer, error)
	Find(ctx context.Context, filter interface{}) ([]models.Officer, error)
}

type officerDatabase struct {
	db DatabaseHelper
}

// NewOfficerDatabase initializes a new instance of officer database with the
// provided db connection
func NewOfficerDatabase(db DatabaseHelper) OfficerDatabase {
	return &officerDatabase{
		db: db,
	}
}

func (c *officerDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Officer, error) {
	officer := &models.Officer{}
	err := c.db.Collection(officerName).FindOne(ctx, filter).Decode(&officer)
	if err != nil {
		return nil, err
	}
	return officer, nil
}

func (c *officerDatabase) Find(ctx context.Context, filter interface{}) ([]models.Officer, error) {
	var officers []models.Officer
	err := c.db.Collection(officerName).Find(ctx, filter).Decode(&officers)
	if err != nil {
		return nil, err
	}
	return officers, nil
}
