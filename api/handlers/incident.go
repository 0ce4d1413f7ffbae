package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/apdreports/incident-reports/config"
	"github.com/apdreports/incident-reports/databases"
	"github.com/apdreports/incident-reports/models"
)

// Incident exported for testing purposes
type Incident struct {
	DB       databases.IncidentDatabase
	Counter  databases.CounterDatabase
	Officers databases.OfficerDatabase
}

// resolveOfficers replaces bare-id officer references with the catalog
// record so reads always serve the full nested object. Unknown ids keep
// the bare reference.
func (i Incident) resolveOfficers(ctx context.Context, incident *models.Incident) {
	if i.Officers == nil {
		return
	}
	refs := []*models.Officer{
		&incident.ReportingOfficer,
		&incident.ReviewedByOfficer,
		&incident.InvestigatingOfficer,
		&incident.OfficerMakingReport,
		&incident.Supervisor,
	}
	for _, ref := range refs {
		if ref.ID == 0 || ref.OfficerNumber != 0 {
			continue
		}
		officer, err := i.Officers.FindOne(ctx, bson.M{"id": ref.ID})
		if err != nil {
			zap.S().Debugw("officer reference not in catalog", "id", ref.ID)
			continue
		}
		*ref = *officer
	}
}

// IncidentsHandler returns all incidents, optionally paginated with the
// limit and page query params
func (i Incident) IncidentsHandler(w http.ResponseWriter, r *http.Request) {
	var opts []*options.FindOptions
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		page := getPage(r)
		limit64 := int64(limit)
		skip64 := int64(page * limit)
		opts = append(opts, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	}

	dbResp, err := i.DB.Find(context.TODO(), bson.D{}, opts...)
	if err != nil {
		config.ErrorStatus("failed to get incidents", http.StatusNotFound, w, err)
		return
	}

	// The webui binds directly to the elements of the response, so an empty
	// result set must marshal as [] rather than null
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

// IncidentByIDHandler returns an incident by ID
func (i Incident) IncidentByIDHandler(w http.ResponseWriter, r *http.Request) {
	incidentID := mux.Vars(r)["incident_id"]

	zap.S().Debugf("incident_id: %v", incidentID)

	id, err := strconv.Atoi(incidentID)
	if err != nil {
		config.ErrorStatus("failed to parse incident id", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := i.DB.FindOne(context.Background(), bson.M{"id": id})
	if err != nil {
		config.ErrorStatus("failed to get incident by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateIncidentHandler creates a new incident and returns it with its
// assigned id
func (i Incident) CreateIncidentHandler(w http.ResponseWriter, r *http.Request) {
	var incident models.Incident
	if err := json.NewDecoder(r.Body).Decode(&incident); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	id, err := i.Counter.Next(context.Background(), "incidents")
	if err != nil {
		config.ErrorStatus("failed to allocate incident id", http.StatusInternalServerError, w, err)
		return
	}
	incident.ID = id
	if incident.Offenses == nil {
		incident.Offenses = []models.Offense{}
	}
	i.resolveOfficers(r.Context(), &incident)

	if err := i.DB.InsertOne(context.Background(), incident); err != nil {
		config.ErrorStatus("failed to create incident", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(incident)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// UpdateIncidentHandler applies a partial update to an incident and returns
// the merged record
func (i Incident) UpdateIncidentHandler(w http.ResponseWriter, r *http.Request) {
	incidentID := mux.Vars(r)["incident_id"]

	id, err := strconv.Atoi(incidentID)
	if err != nil {
		config.ErrorStatus("failed to parse incident id", http.StatusBadRequest, w, err)
		return
	}

	existing, err := i.DB.FindOne(context.Background(), bson.M{"id": id})
	if err != nil {
		config.ErrorStatus("failed to find incident", http.StatusNotFound, w, err)
		return
	}

	// Merge the request body over the stored record field by field, so a
	// PATCH with a sparse body leaves the other fields alone
	existingMap := make(map[string]interface{})
	data, _ := json.Marshal(existing)
	json.Unmarshal(data, &existingMap)

	var updateData map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updateData); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	for key, value := range updateData {
		existingMap[key] = value
	}

	updated := models.Incident{}
	data, _ = json.Marshal(existingMap)
	json.Unmarshal(data, &updated)
	updated.ID = id
	i.resolveOfficers(r.Context(), &updated)

	if err := i.DB.UpdateOne(context.Background(), bson.M{"id": id}, bson.M{"$set": updated}); err != nil {
		config.ErrorStatus("failed to update incident", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(updated)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// getPage returns the zero-based page query param, defaulting to 0
func getPage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		return 0
	}
	return page
}
