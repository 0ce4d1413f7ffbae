package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/apdreports/incident-reports/api/handlers"
	"github.com/apdreports/incident-reports/databases"
	"github.com/apdreports/incident-reports/databases/mocks"
	"github.com/apdreports/incident-reports/models"
)

func TestParty_CreatePartyHandler(t *testing.T) {
	body := []byte(`{"first_name": "Jane"}`)

	req, err := http.NewRequest("POST", "/api/incidents/7/victims/", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"incident_id": "7"})

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	insertOneResultHelper := &mocks.InsertOneResultHelper{}

	insertOneResultHelper.On("Decode").Return("inserted-id")
	conn.On("InsertOne", mock.Anything, mock.Anything).Return(insertOneResultHelper)
	db.On("Collection", "parties").Return(conn)

	v := handlers.Party{
		DB:        databases.NewPartyDatabase(db),
		Counter:   &fakeCounter{next: 15},
		PartyType: models.PartyVictim,
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(v.CreatePartyHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var created models.InvolvedParty
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 15, created.ID)
	assert.Equal(t, 7, created.Incident)
	assert.Equal(t, "Jane", created.FirstName)
	assert.Equal(t, models.PartyVictim, created.PartyType)
}

func TestParty_PartiesHandler_EmptyMarshalsAsList(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/incidents/7/suspects/", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"incident_id": "7"})

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil)
	conn.On("Find", mock.Anything, mock.Anything).Return(cursorHelper)
	db.On("Collection", "parties").Return(conn)

	s := handlers.Party{
		DB:        databases.NewPartyDatabase(db),
		PartyType: models.PartySuspect,
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.PartiesHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestParty_UpdatePartyHandler_PreservesIdentity(t *testing.T) {
	// an update body cannot move a party to another incident or flip its role
	body := []byte(`{"first_name": "Janet", "id": 99, "incident": 12, "party_type": "SUSPECT"}`)

	req, err := http.NewRequest("PATCH", "/api/incidents/7/victims/15/", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"incident_id": "7", "party_id": "15"})

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.InvolvedParty)
		(*arg).ID = 15
		(*arg).Incident = 7
		(*arg).PartyType = models.PartyVictim
		(*arg).FirstName = "Jane"
		(*arg).LastName = "Doe"
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	db.On("Collection", "parties").Return(conn)

	v := handlers.Party{
		DB:        databases.NewPartyDatabase(db),
		PartyType: models.PartyVictim,
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(v.UpdatePartyHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var updated models.InvolvedParty
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 15, updated.ID)
	assert.Equal(t, 7, updated.Incident)
	assert.Equal(t, models.PartyVictim, updated.PartyType)
	assert.Equal(t, "Janet", updated.FirstName)
	assert.Equal(t, "Doe", updated.LastName)
}
