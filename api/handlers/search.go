package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/apdreports/incident-reports/config"
	"github.com/apdreports/incident-reports/databases"
	"github.com/apdreports/incident-reports/models"
)

// Search exported for testing purposes
type Search struct {
	DB databases.IncidentDatabase
}

// searchableFields are the incident fields the search endpoint will filter
// on. Keys arriving with a _min or _max suffix are checked against the base
// name; anything else in the request body is ignored.
var searchableFields = map[string]bool{
	"incident_number":              true,
	"location":                     true,
	"report_datetime":              true,
	"reviewed_datetime":            true,
	"approved_datetime":            true,
	"earliest_occurrence_datetime": true,
	"latest_occurrence_datetime":   true,
	"reporting_officer":            true,
	"reviewed_by_officer":          true,
	"investigating_officer":        true,
	"officer_making_report":        true,
	"supervisor":                   true,
	"beat":                         true,
	"shift":                        true,
	"damaged_amount":               true,
	"stolen_amount":                true,
	"narrative":                    true,
}

// SearchIncidentsHandler filters incidents with the sparse criteria object
// in the request body. Absent keys mean "no filter on this field"; a _min or
// _max suffix turns the comparison into a range bound.
func (s Search) SearchIncidentsHandler(w http.ResponseWriter, r *http.Request) {
	var params map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	filter := bson.M{}
	for key, value := range params {
		field, op := key, ""
		if strings.HasSuffix(key, "_min") {
			field, op = strings.TrimSuffix(key, "_min"), "$gte"
		} else if strings.HasSuffix(key, "_max") {
			field, op = strings.TrimSuffix(key, "_max"), "$lte"
		}
		if !searchableFields[field] {
			continue
		}
		addCriterion(filter, field, op, value)
	}

	zap.S().Debugw("searching incidents", "filter", filter)

	dbResp, err := s.DB.Find(context.TODO(), filter)
	if err != nil {
		config.ErrorStatus("failed to search incidents", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.Incident{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// addCriterion translates one submitted key/value into mongo filter terms.
// Officer references arrive as bare ids and match on the nested id; datetime
// and address values arrive as objects and match per non-empty component.
func addCriterion(filter bson.M, field, op string, value interface{}) {
	switch v := value.(type) {
	case nil:
		return
	case string:
		if v == "" {
			return
		}
		setTerm(filter, field, op, v)
	case float64:
		if v == 0 {
			return
		}
		if strings.HasSuffix(field, "_officer") || field == "supervisor" || field == "officer_making_report" {
			setTerm(filter, field+".id", op, int(v))
			return
		}
		setTerm(filter, field, op, v)
	case map[string]interface{}:
		for part, inner := range v {
			s, ok := inner.(string)
			if !ok || s == "" {
				continue
			}
			setTerm(filter, field+"."+part, op, s)
		}
	}
}

func setTerm(filter bson.M, key, op string, value interface{}) {
	if op == "" {
		filter[key] = value
		return
	}
	if existing, ok := filter[key].(bson.M); ok {
		existing[op] = value
		return
	}
	filter[key] = bson.M{op: value}
}
