package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/apdreports/incident-reports/config"
	"github.com/apdreports/incident-reports/databases"
	"github.com/apdreports/incident-reports/models"
)

// Party serves the victim and suspect sub-resources of an incident. Both
// roles share the parties collection; PartyType fixes which slice of it this
// handler exposes.
type Party struct {
	DB        databases.PartyDatabase
	Counter   databases.CounterDatabase
	PartyType models.PartyType
}

// PartiesHandler returns the incident's parties of this handler's role
func (p Party) PartiesHandler(w http.ResponseWriter, r *http.Request) {
	incidentID, err := strconv.Atoi(mux.Vars(r)["incident_id"])
	if err != nil {
		config.ErrorStatus("failed to parse incident id", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := p.DB.Find(context.TODO(), bson.M{"incident": incidentID, "party_type": p.PartyType})
	if err != nil {
		config.ErrorStatus("failed to get parties", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.InvolvedParty{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreatePartyHandler creates a new party under the incident and returns it
// with its assigned id
func (p Party) CreatePartyHandler(w http.ResponseWriter, r *http.Request) {
	incidentID, err := strconv.Atoi(mux.Vars(r)["incident_id"])
	if err != nil {
		config.ErrorStatus("failed to parse incident id", http.StatusBadRequest, w, err)
		return
	}

	var party models.InvolvedParty
	if err := json.NewDecoder(r.Body).Decode(&party); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	id, err := p.Counter.Next(context.Background(), "parties")
	if err != nil {
		config.ErrorStatus("failed to allocate party id", http.StatusInternalServerError, w, err)
		return
	}
	party.ID = id
	party.Incident = incidentID
	party.PartyType = p.PartyType

	if err := p.DB.InsertOne(context.Background(), party); err != nil {
		config.ErrorStatus("failed to create party", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Debugw("created party",
		"id", party.ID,
		"incident", incidentID,
		"party_type", p.PartyType,
	)

	b, err := json.Marshal(party)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// UpdatePartyHandler applies a partial update to a party and returns the
// merged record
func (p Party) UpdatePartyHandler(w http.ResponseWriter, r *http.Request) {
	incidentID, err := strconv.Atoi(mux.Vars(r)["incident_id"])
	if err != nil {
		config.ErrorStatus("failed to parse incident id", http.StatusBadRequest, w, err)
		return
	}
	partyID, err := strconv.Atoi(mux.Vars(r)["party_id"])
	if err != nil {
		config.ErrorStatus("failed to parse party id", http.StatusBadRequest, w, err)
		return
	}

	filter := bson.M{"id": partyID, "incident": incidentID, "party_type": p.PartyType}
	existing, err := p.DB.FindOne(context.Background(), filter)
	if err != nil {
		config.ErrorStatus("failed to find party", http.StatusNotFound, w, err)
		return
	}

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

	updated := models.InvolvedParty{}
	data, _ = json.Marshal(existingMap)
	json.Unmarshal(data, &updated)
	updated.ID = partyID
	updated.Incident = incidentID
	updated.PartyType = p.PartyType

	if err := p.DB.UpdateOne(context.Background(), filter, bson.M{"$set": updated}); err != nil {
		config.ErrorStatus("failed to update party", http.StatusInternalServerError, w, err)
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
