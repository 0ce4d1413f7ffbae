package handlers_test

import (
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

func TestPrint_PrintIncidentHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/incidents/print/42/", nil)
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
		(*arg).Narrative = "Vehicle break-in reported at the north lot."
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "incidents").Return(conn)

	p := handlers.Print{DB: databases.NewIncidentDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.PrintIncidentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.True(t, len(rr.Body.Bytes()) > 4)
	assert.Equal(t, "%PDF", string(rr.Body.Bytes()[:4]))
}

func TestPrint_PrintIncidentHandler_IncludesParties(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/incidents/print/42/", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"incident_id": "42"})

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	partyConn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}
	partyCursor := &mocks.CursorHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Incident)
		(*arg).ID = 42
		(*arg).IncidentNumber = "2024-001"
	})
	partyCursor.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.InvolvedParty)
		*arg = []models.InvolvedParty{
			{ID: 15, Incident: 42, PartyType: models.PartyVictim, FirstName: "Jane", LastName: "Doe", EyeColor: "GRN"},
		}
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	partyConn.On("Find", mock.Anything, mock.Anything).Return(partyCursor)
	db.On("Collection", "incidents").Return(conn)
	db.On("Collection", "parties").Return(partyConn)

	p := handlers.Print{
		DB:      databases.NewIncidentDatabase(db),
		Parties: databases.NewPartyDatabase(db),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.PrintIncidentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", string(rr.Body.Bytes()[:4]))
	partyConn.AssertCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestPrint_PrintIncidentHandler_NotFound(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/incidents/print/42/", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"incident_id": "42"})

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(assert.AnError)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "incidents").Return(conn)

	p := handlers.Print{DB: databases.NewIncidentDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.PrintIncidentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
