package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/apdreports/incident-reports/models"
)

// GetIncidents lists every incident. Failures come back as an empty list.
func (c *Client) GetIncidents(ctx context.Context) []models.Incident {
	incidents := []models.Incident{}
	if err := c.doJSON(ctx, http.MethodGet, "/incidents/", nil, &incidents); err != nil {
		logError("get incidents", err)
		return []models.Incident{}
	}
	return incidents
}

// GetIncident fetches one incident by id. Failures come back as (zero,
// false).
func (c *Client) GetIncident(ctx context.Context, id int) (models.Incident, bool) {
	var incident models.Incident
	path := fmt.Sprintf("/incidents/%d/", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &incident); err != nil {
		logError("get incident", err)
		return models.Incident{}, false
	}
	return incident, true
}

// AddIncident creates an incident and returns the created record so the
// caller learns the assigned id
func (c *Client) AddIncident(ctx context.Context, incident models.IncidentSubmission) (models.Incident, bool) {
	var created models.Incident
	if err := c.doJSON(ctx, http.MethodPost, "/incidents/", incident, &created); err != nil {
		logError("add incident", err)
		return models.Incident{}, false
	}
	return created, true
}

// UpdateIncident patches an incident with the full submitted value
func (c *Client) UpdateIncident(ctx context.Context, incident models.IncidentSubmission) bool {
	path := fmt.Sprintf("/incidents/%d/", incident.ID)
	if err := c.doJSON(ctx, http.MethodPatch, path, incident, nil); err != nil {
		logError("update incident", err)
		return false
	}
	return true
}

// SearchIncidents posts a sparse criteria object and returns the matches.
// Absent keys mean "no filter on this field".
func (c *Client) SearchIncidents(ctx context.Context, criteria map[string]interface{}) []models.Incident {
	incidents := []models.Incident{}
	if err := c.doJSON(ctx, http.MethodPost, "/incidents/search/", criteria, &incidents); err != nil {
		logError("search incidents", err)
		return []models.Incident{}
	}
	return incidents
}

// PrintIncident downloads the rendered report document for an incident
func (c *Client) PrintIncident(ctx context.Context, id int) ([]byte, bool) {
	path := fmt.Sprintf("/incidents/print/%d/", id)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		logError("print incident", err)
		return nil, false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		logError("print incident", err)
		return nil, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		logError("print incident", fmt.Errorf("print returned %s", resp.Status))
		return nil, false
	}
	doc, err := io.ReadAll(resp.Body)
	if err != nil {
		logError("print incident", err)
		return nil, false
	}
	return doc, true
}
