package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/apdreports/incident-reports/config"
	"github.com/apdreports/incident-reports/databases"
	"github.com/apdreports/incident-reports/models"
)

// maxUploadBytes bounds a single multipart upload request
const maxUploadBytes = 32 << 20

// FileStorage uploads and destroys the binary assets behind incident files
type FileStorage interface {
	Upload(ctx context.Context, name string, contents io.Reader) (url string, asset string, err error)
	Destroy(ctx context.Context, asset string) error
}

type cloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func (s *cloudinaryStorage) Upload(ctx context.Context, name string, contents io.Reader) (string, string, error) {
	publicID := fmt.Sprintf("incident-files/%s-%s", uuid.New().String(), name)
	resp, err := s.cld.Upload.Upload(ctx, contents, uploader.UploadParams{PublicID: publicID})
	if err != nil {
		return "", "", err
	}
	return resp.SecureURL, resp.PublicID, nil
}

func (s *cloudinaryStorage) Destroy(ctx context.Context, asset string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: asset})
	return err
}

// File exported for testing purposes
type File struct {
	DB      databases.IncidentFileDatabase
	Counter databases.CounterDatabase
	Storage FileStorage
}

// FilesHandler returns all files attached to an incident
func (f File) FilesHandler(w http.ResponseWriter, r *http.Request) {
	incidentID, err := strconv.Atoi(mux.Vars(r)["incident_id"])
	if err != nil {
		config.ErrorStatus("failed to parse incident id", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := f.DB.Find(context.TODO(), bson.M{"incident": incidentID})
	if err != nil {
		config.ErrorStatus("failed to get files", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.IncidentFile{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UploadFilesHandler stores every part of the multipart upload and returns
// the created file records
func (f File) UploadFilesHandler(w http.ResponseWriter, r *http.Request) {
	incidentID, err := strconv.Atoi(mux.Vars(r)["incident_id"])
	if err != nil {
		config.ErrorStatus("failed to parse incident id", http.StatusBadRequest, w, err)
		return
	}
	if f.Storage == nil {
		config.ErrorStatus("file storage is not configured", http.StatusInternalServerError, w, errors.New("no storage backend"))
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		config.ErrorStatus("failed to parse multipart form", http.StatusBadRequest, w, err)
		return
	}

	created := []models.IncidentFile{}
	for _, header := range r.MultipartForm.File["uploadFile"] {
		part, err := header.Open()
		if err != nil {
			config.ErrorStatus("failed to open uploaded file", http.StatusBadRequest, w, err)
			return
		}
		url, asset, err := f.Storage.Upload(r.Context(), header.Filename, part)
		part.Close()
		if err != nil {
			config.ErrorStatus("failed to store uploaded file", http.StatusInternalServerError, w, err)
			return
		}

		id, err := f.Counter.Next(r.Context(), "incident_files")
		if err != nil {
			config.ErrorStatus("failed to allocate file id", http.StatusInternalServerError, w, err)
			return
		}
		file := models.IncidentFile{
			ID:       id,
			Incident: incidentID,
			File:     url,
			FileName: header.Filename,
			Asset:    asset,
		}
		if err := f.DB.InsertOne(r.Context(), file); err != nil {
			config.ErrorStatus("failed to create file record", http.StatusInternalServerError, w, err)
			return
		}
		created = append(created, file)
	}

	zap.S().Debugw("uploaded incident files",
		"incident", incidentID,
		"count", len(created),
	)

	b, err := json.Marshal(created)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// DeleteFileHandler destroys the backing asset and then removes the record.
// A failed destroy keeps the record.
func (f File) DeleteFileHandler(w http.ResponseWriter, r *http.Request) {
	incidentID, err := strconv.Atoi(mux.Vars(r)["incident_id"])
	if err != nil {
		config.ErrorStatus("failed to parse incident id", http.StatusBadRequest, w, err)
		return
	}
	fileID, err := strconv.Atoi(mux.Vars(r)["file_id"])
	if err != nil {
		config.ErrorStatus("failed to parse file id", http.StatusBadRequest, w, err)
		return
	}

	filter := bson.M{"id": fileID, "incident": incidentID}
	file, err := f.DB.FindOne(r.Context(), filter)
	if err != nil {
		config.ErrorStatus("failed to find file", http.StatusNotFound, w, err)
		return
	}

	if f.Storage != nil && file.Asset != "" {
		if err := f.Storage.Destroy(r.Context(), file.Asset); err != nil {
			config.ErrorStatus("failed to destroy stored asset", http.StatusInternalServerError, w, err)
			return
		}
	}

	if err := f.DB.DeleteOne(r.Context(), filter); err != nil {
		config.ErrorStatus("failed to delete file", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "File deleted successfully",
	})
}
