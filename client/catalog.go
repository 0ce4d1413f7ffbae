package client

import (
	"context"
	"net/http"

	"github.com/apdreports/incident-reports/models"
)

// GetAllOfficers fetches the officer catalog. Fetched once per edit
// session, never cached across sessions.
func (c *Client) GetAllOfficers(ctx context.Context) []models.Officer {
	officers := []models.Officer{}
	if err := c.doJSON(ctx, http.MethodGet, "/officers/", nil, &officers); err != nil {
		logError("get officers", err)
		return []models.Officer{}
	}
	return officers
}

// GetAllOffenses fetches the offense catalog
func (c *Client) GetAllOffenses(ctx context.Context) []models.Offense {
	offenses := []models.Offense{}
	if err := c.doJSON(ctx, http.MethodGet, "/offenses/", nil, &offenses); err != nil {
		logError("get offenses", err)
		return []models.Offense{}
	}
	return offenses
}
