package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/apdreports/incident-reports/databases"
	"github.com/apdreports/incident-reports/databases/mocks"
	"github.com/apdreports/incident-reports/models"
)

func TestIncidentDatabase_FindOne(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Incident)
		(*arg).ID = 42
		(*arg).IncidentNumber = "2024-001"
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "incidents").Return(conn)

	incidentDB := databases.NewIncidentDatabase(db)
	incident, err := incidentDB.FindOne(context.Background(), bson.M{"id": 42})

	assert.NoError(t, err)
	assert.Equal(t, 42, incident.ID)
	assert.Equal(t, "2024-001", incident.IncidentNumber)
}

func TestIncidentDatabase_FindOne_Error(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "incidents").Return(conn)

	incidentDB := databases.NewIncidentDatabase(db)
	incident, err := incidentDB.FindOne(context.Background(), bson.M{"id": 42})

	assert.Nil(t, incident)
	assert.EqualError(t, err, "mocked-error")
}

func TestIncidentDatabase_InsertOne_NotInserted(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	insertOneResultHelper := &mocks.InsertOneResultHelper{}

	insertOneResultHelper.On("Decode").Return(nil)
	conn.On("InsertOne", mock.Anything, mock.Anything).Return(insertOneResultHelper)
	db.On("Collection", "incidents").Return(conn)

	incidentDB := databases.NewIncidentDatabase(db)
	err := incidentDB.InsertOne(context.Background(), models.Incident{ID: 1})

	assert.ErrorIs(t, err, databases.ErrNotInserted)
}
