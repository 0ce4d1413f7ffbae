package databases

// go generate: mockery --name CounterDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const counterName = "counters"

// CounterDatabase hands out the next numeric id for a named sequence.
// Records carry client-visible integer ids (0 means unsaved), so inserts
// draw from per-collection counters instead of ObjectIDs.
type CounterDatabase interface {
	Next(ctx context.Context, sequence string) (int, error)
}

type counterDatabase struct {
	db DatabaseHelper
}

// NewCounterDatabase initializes a new instance of counter database with the
// provided db connection
func NewCounterDatabase(db DatabaseHelper) CounterDatabase {
	return &counterDatabase{
		db: db,
	}
}

func (c *counterDatabase) Next(ctx context.Context, sequence string) (int, error) {
	var doc struct {
		Value int `bson:"value"`
	}
	upsert := true
	after := options.After
	opts := &options.FindOneAndUpdateOptions{Upsert: &upsert, ReturnDocument: &after}
	err := c.db.Collection(counterName).FindOneAndUpdate(ctx,
		bson.M{"_id": sequence},
		bson.M{"$inc": bson.M{"value": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Value, nil
}
