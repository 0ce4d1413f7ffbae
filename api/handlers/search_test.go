package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/apdreports/incident-reports/api/handlers"
	"github.com/apdreports/incident-reports/databases"
	"github.com/apdreports/incident-reports/databases/mocks"
)

func searchWithBody(t *testing.T, body string) bson.M {
	t.Helper()

	req, err := http.NewRequest("POST", "/api/incidents/search/", bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	var captured bson.M
	cursorHelper.On("Decode", mock.Anything).Return(nil)
	conn.On("Find", mock.Anything, mock.Anything).Return(cursorHelper).Run(func(args mock.Arguments) {
		captured = args.Get(1).(bson.M)
	})
	db.On("Collection", "incidents").Return(conn)

	s := handlers.Search{DB: databases.NewIncidentDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.SearchIncidentsHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	return captured
}

func TestSearch_SearchIncidentsHandler_ScalarCriterion(t *testing.T) {
	filter := searchWithBody(t, `{"incident_number": "2024-001"}`)

	assert.Equal(t, bson.M{"incident_number": "2024-001"}, filter)
}

func TestSearch_SearchIncidentsHandler_RangeSuffixes(t *testing.T) {
	filter := searchWithBody(t, `{"damaged_amount_min": 100, "damaged_amount_max": 500}`)

	assert.Equal(t, bson.M{
		"damaged_amount": bson.M{"$gte": float64(100), "$lte": float64(500)},
	}, filter)
}

func TestSearch_SearchIncidentsHandler_OfficerByBareID(t *testing.T) {
	filter := searchWithBody(t, `{"reporting_officer": 3}`)

	assert.Equal(t, bson.M{"reporting_officer.id": 3}, filter)
}

func TestSearch_SearchIncidentsHandler_DateTimeComponents(t *testing.T) {
	filter := searchWithBody(t, `{"report_datetime_min": {"date": "2024-01-01", "time": ""}}`)

	assert.Equal(t, bson.M{
		"report_datetime.date": bson.M{"$gte": "2024-01-01"},
	}, filter)
}

func TestSearch_SearchIncidentsHandler_IgnoresUnknownAndBlankKeys(t *testing.T) {
	filter := searchWithBody(t, `{
		"victim_first_name": "Jane",
		"not_a_field": "x",
		"shift": "",
		"beat": 0
	}`)

	assert.Equal(t, bson.M{}, filter)
}
