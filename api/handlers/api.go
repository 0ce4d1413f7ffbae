package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/apdreports/incident-reports/api"
	"github.com/apdreports/incident-reports/api/scheduler"
	"github.com/apdreports/incident-reports/config"
	"github.com/apdreports/incident-reports/databases"
	"github.com/apdreports/incident-reports/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	DB        databases.CollectionHelper
	Config    config.Config
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{
		DB:  databases.NewAccountDatabase(a.dbHelper),
		TDB: databases.NewTokenDatabase(a.dbHelper),
	}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	counters := databases.NewCounterDatabase(a.dbHelper)
	i := Incident{DB: databases.NewIncidentDatabase(a.dbHelper), Counter: counters, Officers: databases.NewOfficerDatabase(a.dbHelper)}
	v := Party{DB: databases.NewPartyDatabase(a.dbHelper), Counter: counters, PartyType: models.PartyVictim}
	s := Party{DB: databases.NewPartyDatabase(a.dbHelper), Counter: counters, PartyType: models.PartySuspect}
	off := Offense{DB: databases.NewOffenseDatabase(a.dbHelper)}
	o := Officer{DB: databases.NewOfficerDatabase(a.dbHelper)}
	f := File{DB: databases.NewIncidentFileDatabase(a.dbHelper), Counter: counters, Storage: a.newFileStorage()}
	search := Search{DB: databases.NewIncidentDatabase(a.dbHelper)}
	print := Print{DB: databases.NewIncidentDatabase(a.dbHelper), Parties: databases.NewPartyDatabase(a.dbHelper)}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api").Subrouter()

	apiCreate.Handle("/auth/token-auth/", http.HandlerFunc(m.CreateToken)).Methods("POST")
	apiCreate.Handle("/auth/logout/", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/incidents/", api.Middleware(http.HandlerFunc(i.IncidentsHandler))).Methods("GET")
	apiCreate.Handle("/incidents/", api.Middleware(http.HandlerFunc(i.CreateIncidentHandler))).Methods("POST")
	apiCreate.Handle("/incidents/search/", api.Middleware(http.HandlerFunc(search.SearchIncidentsHandler))).Methods("POST")
	apiCreate.Handle("/incidents/print/{incident_id}/", api.Middleware(http.HandlerFunc(print.PrintIncidentHandler))).Methods("GET")
	apiCreate.Handle("/incidents/{incident_id}/", api.Middleware(http.HandlerFunc(i.IncidentByIDHandler))).Methods("GET")
	apiCreate.Handle("/incidents/{incident_id}/", api.Middleware(http.HandlerFunc(i.UpdateIncidentHandler))).Methods("PATCH")

	apiCreate.Handle("/incidents/{incident_id}/victims/", api.Middleware(http.HandlerFunc(v.PartiesHandler))).Methods("GET")
	apiCreate.Handle("/incidents/{incident_id}/victims/", api.Middleware(http.HandlerFunc(v.CreatePartyHandler))).Methods("POST")
	apiCreate.Handle("/incidents/{incident_id}/victims/{party_id}/", api.Middleware(http.HandlerFunc(v.UpdatePartyHandler))).Methods("PATCH")

	apiCreate.Handle("/incidents/{incident_id}/suspects/", api.Middleware(http.HandlerFunc(s.PartiesHandler))).Methods("GET")
	apiCreate.Handle("/incidents/{incident_id}/suspects/", api.Middleware(http.HandlerFunc(s.CreatePartyHandler))).Methods("POST")
	apiCreate.Handle("/incidents/{incident_id}/suspects/{party_id}/", api.Middleware(http.HandlerFunc(s.UpdatePartyHandler))).Methods("PATCH")

	apiCreate.Handle("/incidents/{incident_id}/files/", api.Middleware(http.HandlerFunc(f.FilesHandler))).Methods("GET")
	apiCreate.Handle("/incidents/{incident_id}/files/", api.Middleware(http.HandlerFunc(f.UploadFilesHandler))).Methods("POST")
	apiCreate.Handle("/incidents/{incident_id}/files/{file_id}/", api.Middleware(http.HandlerFunc(f.DeleteFileHandler))).Methods("DELETE")

	apiCreate.Handle("/offenses/", api.Middleware(http.HandlerFunc(off.OffensesHandler))).Methods("GET")
	apiCreate.Handle("/officers/", api.Middleware(http.HandlerFunc(o.OfficersHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("incident-reports-api has connected to the database")

	a.Scheduler = scheduler.NewScheduler(databases.NewTokenDatabase(a.dbHelper))
	a.Scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func (a *App) newFileStorage() FileStorage {
	cld, err := cloudinary.NewFromURL(a.Config.CloudinaryURL)
	if err != nil {
		zap.S().With(err).Error("failed to initialize cloudinary, uploads will fail")
		return nil
	}
	return &cloudinaryStorage{cld: cld}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
