package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/apdreports/incident-reports/models"
)

// Upload is one file queued for upload
type Upload struct {
	Name     string
	Contents io.Reader
}

// GetFiles lists the files attached to an incident
func (c *Client) GetFiles(ctx context.Context, incidentID int) []models.IncidentFile {
	files := []models.IncidentFile{}
	path := fmt.Sprintf("/incidents/%d/files/", incidentID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &files); err != nil {
		logError("get files", err)
		return []models.IncidentFile{}
	}
	return files
}

// UploadFiles posts the given files as one multipart request and returns
// the created records. An empty list is a no-op.
func (c *Client) UploadFiles(ctx context.Context, incidentID int, uploads []Upload) []models.IncidentFile {
	if len(uploads) == 0 {
		return []models.IncidentFile{}
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	for _, upload := range uploads {
		part, err := form.CreateFormFile("uploadFile", upload.Name)
		if err != nil {
			logError("upload files", err)
			return []models.IncidentFile{}
		}
		if _, err := io.Copy(part, upload.Contents); err != nil {
			logError("upload files", err)
			return []models.IncidentFile{}
		}
	}
	if err := form.Close(); err != nil {
		logError("upload files", err)
		return []models.IncidentFile{}
	}

	path := fmt.Sprintf("/incidents/%d/files/", incidentID)
	req, err := c.newRequest(ctx, http.MethodPost, path, &body)
	if err != nil {
		logError("upload files", err)
		return []models.IncidentFile{}
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		logError("upload files", err)
		return []models.IncidentFile{}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		logError("upload files", fmt.Errorf("upload returned %s", resp.Status))
		return []models.IncidentFile{}
	}

	created := []models.IncidentFile{}
	if err := decodeBody(resp.Body, &created); err != nil {
		logError("upload files", err)
		return []models.IncidentFile{}
	}
	return created
}

// DeleteFile removes one file by its composite (incident, file) key
func (c *Client) DeleteFile(ctx context.Context, incidentID, fileID int) bool {
	path := fmt.Sprintf("/incidents/%d/files/%d/", incidentID, fileID)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		logError("delete file", err)
		return false
	}
	return true
}
