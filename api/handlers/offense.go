package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/apdreports/incident-reports/config"
	"github.com/apdreports/incident-reports/databases"
	"github.com/apdreports/incident-reports/models"
)

// Offense exported for testing purposes
type Offense struct {
	DB databases.OffenseDatabase
}

// OffensesHandler returns the full offense catalog
func (o Offense) OffensesHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := o.DB.Find(context.TODO(), bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get offenses", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.Offense{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
