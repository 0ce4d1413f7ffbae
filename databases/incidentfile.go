package databases

// go generate: mockery --name IncidentFileDatabase

import (
	"context"

	"github.com/apdreports/incident-reports/models"
)

const incidentFileName = "incident_files"

// IncidentFileDatabase contains the methods to use with the incident file
// database
type IncidentFileDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.IncidentFile, error)
	Find(ctx context.Context, filter interface{}) ([]models.IncidentFile, error)
	InsertOne(ctx context.Context, file models.IncidentFile) error
	DeleteOne(ctx context.Context, filter interface{}) error
}

type incidentFileDatabase struct {
	db DatabaseHelper
}

// NewIncidentFileDatabase initializes a new instance of incident file
// database with the provided db connection
func NewIncidentFileDatabase(db DatabaseHelper) IncidentFileDatabase {
	return &incidentFileDatabase{
		db: db,
	}
}

func (c *incidentFileDatabase) FindOne(ctx context.Context, filter interface{}) (*models.IncidentFile, error) {
	file := &models.IncidentFile{}
	err := c.db.Collection(incidentFileName).FindOne(ctx, filter).Decode(&file)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (c *incidentFileDatabase) Find(ctx context.Context, filter interface{}) ([]models.IncidentFile, error) {
	var files []models.IncidentFile
	err := c.db.Collection(incidentFileName).Find(ctx, filter).Decode(&files)
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (c *incidentFileDatabase) InsertOne(ctx context.Context, file models.IncidentFile) error {
	res := c.db.Collection(incidentFileName).InsertOne(ctx, file)
	if res.Decode() == nil {
		return ErrNotInserted
	}
	return nil
}

func (c *incidentFileDatabase) DeleteOne(ctx context.Context, filter interface{}) error {
	return c.db.Collection(incidentFileName).DeleteOne(ctx, filter)
}
