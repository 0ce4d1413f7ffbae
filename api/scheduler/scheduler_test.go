package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/apdreports/incident-reports/models"
)

type stubTokens struct {
	filter  interface{}
	deleted int64
}

func (s *stubTokens) FindOne(ctx context.Context, filter interface{}) (*models.Token, error) {
	return nil, assert.AnError
}

func (s *stubTokens) InsertOne(ctx context.Context, token models.Token) error {
	return nil
}

func (s *stubTokens) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	s.filter = filter
	return s.deleted, nil
}

func TestPurgeExpiredTokens(t *testing.T) {
	tokens := &stubTokens{deleted: 3}
	s := NewScheduler(tokens)

	before := time.Now().Unix()
	s.purgeExpiredTokens()

	filter, ok := tokens.filter.(bson.M)
	if !ok {
		t.Fatalf("unexpected filter type %T", tokens.filter)
	}
	bound, ok := filter["expires_at"].(bson.M)
	if !ok {
		t.Fatalf("missing expires_at bound in %v", filter)
	}
	cutoff, ok := bound["$lt"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, cutoff, before)
}

func TestSchedulerStartStop(t *testing.T) {
	s := NewScheduler(&stubTokens{})
	s.Start()
	s.Stop()
}
