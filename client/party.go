package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/apdreports/incident-reports/models"
)

// GetVictims lists the victims recorded on an incident
func (c *Client) GetVictims(ctx context.Context, incidentID int) []models.InvolvedParty {
	return c.getParties(ctx, incidentID, "victims")
}

// AddVictim creates a victim under an incident and returns the created row
func (c *Client) AddVictim(ctx context.Context, victim models.InvolvedParty) (models.InvolvedParty, bool) {
	return c.addParty(ctx, victim, "victims")
}

// UpdateVictim patches an existing victim row
func (c *Client) UpdateVictim(ctx context.Context, victim models.InvolvedParty) bool {
	return c.updateParty(ctx, victim, "victims")
}

// GetSuspects lists the suspects recorded on an incident
func (c *Client) GetSuspects(ctx context.Context, incidentID int) []models.InvolvedParty {
	return c.getParties(ctx, incidentID, "suspects")
}

// AddSuspect creates a suspect under an incident and returns the created row
func (c *Client) AddSuspect(ctx context.Context, suspect models.InvolvedParty) (models.InvolvedParty, bool) {
	return c.addParty(ctx, suspect, "suspects")
}

// UpdateSuspect patches an existing suspect row
func (c *Client) UpdateSuspect(ctx context.Context, suspect models.InvolvedParty) bool {
	return c.updateParty(ctx, suspect, "suspects")
}

func (c *Client) getParties(ctx context.Context, incidentID int, resource string) []models.InvolvedParty {
	parties := []models.InvolvedParty{}
	path := fmt.Sprintf("/incidents/%d/%s/", incidentID, resource)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &parties); err != nil {
		logError("get "+resource, err)
		return []models.InvolvedParty{}
	}
	return parties
}

func (c *Client) addParty(ctx context.Context, party models.InvolvedParty, resource string) (models.InvolvedParty, bool) {
	var created models.InvolvedParty
	path := fmt.Sprintf("/incidents/%d/%s/", party.Incident, resource)
	if err := c.doJSON(ctx, http.MethodPost, path, party, &created); err != nil {
		logError("add "+resource, err)
		return models.InvolvedParty{}, false
	}
	return created, true
}

func (c *Client) updateParty(ctx context.Context, party models.InvolvedParty, resource string) bool {
	path := fmt.Sprintf("/incidents/%d/%s/%d/", party.Incident, resource, party.ID)
	if err := c.doJSON(ctx, http.MethodPatch, path, party, nil); err != nil {
		logError("update "+resource, err)
		return false
	}
	return true
}
