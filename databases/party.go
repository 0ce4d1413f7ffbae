package databases

// go generate: mockery --name PartyDatabase

import (
	"context"

	"github.com/apdreports/incident-reports/models"
)

const partyName = "parties"

// PartyDatabase contains the methods to use with the involved-party
// database. Victims and suspects live in one collection, filtered by
// party_type.
type PartyDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.InvolvedParty, error)
	Find(ctx context.Context, filter interface{}) ([]models.InvolvedParty, error)
	InsertOne(ctx context.Context, party models.InvolvedParty) error
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) error
}

type partyDatabase struct {
	db DatabaseHelper
}

// NewPartyDatabase initializes a new instance of party database with the
// provided db connection
func NewPartyDatabase(db DatabaseHelper) PartyDatabase {
	return &partyDatabase{
		db: db,
	}
}

func (c *partyDatabase) FindOne(ctx context.Context, filter interface{}) (*models.InvolvedParty, error) {
	party := &models.InvolvedParty{}
	err := c.db.Collection(partyName).FindOne(ctx, filter).Decode(&party)
	if err != nil {
		return nil, err
	}
	return party, nil
}

func (c *partyDatabase) Find(ctx context.Context, filter interface{}) ([]models.InvolvedParty, error) {
	var parties []models.InvolvedParty
	err := c.db.Collection(partyName).Find(ctx, filter).Decode(&parties)
	if err != nil {
		return nil, err
	}
	return parties, nil
}

func (c *partyDatabase) InsertOne(ctx context.Context, party models.InvolvedParty) error {
	res := c.db.Collection(partyName).InsertOne(ctx, party)
	if res.Decode() == nil {
		return ErrNotInserted
	}
	return nil
}

func (c *partyDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) error {
	return c.db.Collection(partyName).UpdateOne(ctx, filter, update)
}
