package databases

// go generate: mockery --name IncidentDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/apdreports/incident-reports/models"
)

const incidentName = "incidents"

// IncidentDatabase contains the methods to use with the incident database
type IncidentDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Incident, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Incident, error)
	InsertOne(ctx context.Context, incident models.Incident) error
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) error
}

type incidentDatabase struct {
	db DatabaseHelper
}

// NewIncidentDatabase initializes a new instance of incident database with
// the provided db connection
func NewIncidentDatabase(db DatabaseHelper) IncidentDatabase {
	return &incidentDatabase{
		db: db,
	}
}

func (c *incidentDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Incident, error) {
	incident := &models.Incident{}
	err := c.db.Collection(incidentName).FindOne(ctx, filter).Decode(&incident)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func (c *incidentDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Incident, error) {
	var incidents []models.Incident
	err := c.db.Collection(incidentName).Find(ctx, filter, opts...).Decode(&incidents)
	if err != nil {
		return nil, err
	}
	return incidents, nil
}

func (c *incidentDatabase) InsertOne(ctx context.Context, incident models.Incident) error {
	res := c.db.Collection(incidentName).InsertOne(ctx, incident)
	if res.Decode() == nil {
		return ErrNotInserted
	}
	return nil
}

func (c *incidentDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) error {
	return c.db.Collection(incidentName).UpdateOne(ctx, filter, update)
}
