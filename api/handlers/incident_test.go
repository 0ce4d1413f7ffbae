package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/apdreports/incident-reports/api/handlers"
	"github.com/apdreports/incident-reports/databases"
	"github.com/apdreports/incident-reports/databases/mocks"
	"github.com/apdreports/incident-reports/models"
)

type MockDatabaseHelper struct {
	mock.Mock
}

// Client provides a mock function.
func (_m *MockDatabaseHelper) Client() databases.ClientHelper {
	ret := _m.Called()

	var r0 databases.ClientHelper
	if rf, ok := ret.Get(0).(func() databases.ClientHelper); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(databases.ClientHelper)
		}
	}

	return r0
}

// Collection provides a mock function.
func (_m *MockDatabaseHelper) Collection(name string) databases.CollectionHelper {
	ret := _m.Called(name)

	var r0 databases.CollectionHelper
	if rf, ok := ret.Get(0).(func(string) databases.CollectionHelper); ok {
		r0 = rf(name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(databases.CollectionHelper)
		}
	}

	return r0
}

// fakeCounter hands out a fixed sequence of ids
type fakeCounter struct {
	next int
	err  error
}

func (f *fakeCounter) Next(ctx context.Context, sequence string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.next, nil
}

func TestIncident_IncidentByIDHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/incidents/42/", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"incident_id": "42"})

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Incident)
		(*arg).ID = 42
		(*arg).IncidentNumber = "2024-001"
		(*arg).Shift = "night"
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "incidents").Return(conn)

	i := handlers.Incident{DB: databases.NewIncidentDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(i.IncidentByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.Incident
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 42, got.ID)
	assert.Equal(t, "2024-001", got.IncidentNumber)
	assert.Equal(t, "night", got.Shift)
}

func TestIncident_IncidentByIDHandler_NotFound(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/incidents/42/", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"incident_id": "42"})

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "incidents").Return(conn)

	i := handlers.Incident{DB: databases.NewIncidentDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(i.IncidentByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestIncident_IncidentByIDHandler_BadID(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/incidents/abc/", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"incident_id": "abc"})

	i := handlers.Incident{}

	rr := httptest.NewRecorder()
	http.HandlerFunc(i.IncidentByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestIncident_IncidentsHandler_EmptyMarshalsAsList(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/incidents/", nil)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil)
	conn.On("Find", mock.Anything, mock.Anything).Return(cursorHelper)
	db.On("Collection", "incidents").Return(conn)

	i := handlers.Incident{DB: databases.NewIncidentDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(i.IncidentsHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestIncident_CreateIncidentHandler(t *testing.T) {
	incident := models.NewIncident(time.Now())
	incident.IncidentNumber = "2024-007"
	body, err := json.Marshal(incident)
	if err != nil {
		t.Fatal(err)
	}

	req, err := http.NewRequest("POST", "/api/incidents/", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	insertOneResultHelper := &mocks.InsertOneResultHelper{}

	insertOneResultHelper.On("Decode").Return("inserted-id")
	conn.On("InsertOne", mock.Anything, mock.Anything).Return(insertOneResultHelper)
	db.On("Collection", "incidents").Return(conn)

	i := handlers.Incident{
		DB:      databases.NewIncidentDatabase(db),
		Counter: &fakeCounter{next: 7},
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(i.CreateIncidentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var created models.Incident
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "2024-007", created.IncidentNumber)
	assert.NotNil(t, created.Offenses)
}

func TestIncident_CreateIncidentHandler_BareOfficerIDsResolve(t *testing.T) {
	body := []byte(`{"incident_number": "2024-008", "reporting_officer": 3}`)

	req, err := http.NewRequest("POST", "/api/incidents/", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	officerConn := &mocks.CollectionHelper{}
	insertOneResultHelper := &mocks.InsertOneResultHelper{}
	officerResult := &mocks.SingleResultHelper{}

	insertOneResultHelper.On("Decode").Return("inserted-id")
	conn.On("InsertOne", mock.Anything, mock.Anything).Return(insertOneResultHelper)
	officerResult.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Officer)
		(*arg).ID = 3
		(*arg).OfficerNumber = 5150
	})
	officerConn.On("FindOne", mock.Anything, mock.Anything).Return(officerResult)
	db.On("Collection", "incidents").Return(conn)
	db.On("Collection", "officers").Return(officerConn)

	i := handlers.Incident{
		DB:       databases.NewIncidentDatabase(db),
		Counter:  &fakeCounter{next: 8},
		Officers: databases.NewOfficerDatabase(db),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(i.CreateIncidentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var created models.Incident
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 3, created.ReportingOfficer.ID)
	assert.Equal(t, 5150, created.ReportingOfficer.OfficerNumber)
}

func TestIncident_UpdateIncidentHandler_MergesSparseBody(t *testing.T) {
	body := []byte(`{"shift": "night"}`)

	req, err := http.NewRequest("PATCH", "/api/incidents/42/", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"incident_id": "42"})

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Incident)
		(*arg).ID = 42
		(*arg).IncidentNumber = "2024-001"
		(*arg).Shift = "day"
		(*arg).Narrative = "kept as-is"
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	db.On("Collection", "incidents").Return(conn)

	i := handlers.Incident{DB: databases.NewIncidentDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(i.UpdateIncidentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var updated models.Incident
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 42, updated.ID)
	assert.Equal(t, "night", updated.Shift)
	assert.Equal(t, "2024-001", updated.IncidentNumber)
	assert.Equal(t, "kept as-is", updated.Narrative)
}
