package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/apdreports/incident-reports/databases"
)

// Scheduler handles periodic background jobs
type Scheduler struct {
	cron *cron.Cron
	TDB  databases.TokenDatabase
}

// NewScheduler creates a new scheduler instance
func NewScheduler(tDB databases.TokenDatabase) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		TDB:  tDB,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Purge expired auth tokens hourly
	_, err := s.cron.AddFunc("0 * * * *", s.purgeExpiredTokens)
	if err != nil {
		zap.S().Errorw("failed to register token purge job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("token purge scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("token purge scheduler stopped")
}

// purgeExpiredTokens deletes every token record whose expiry has passed.
// Logout revokes a token from the auth cache but leaves its record; this
// job is the only place records are removed.
func (s *Scheduler) purgeExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleted, err := s.TDB.DeleteMany(ctx, bson.M{
		"expires_at": bson.M{"$lt": time.Now().Unix()},
	})
	if err != nil {
		zap.S().Errorw("failed to purge expired tokens", "error", err)
		return
	}
	if deleted > 0 {
		zap.S().Infow("purged expired tokens", "count", deleted)
	}
}
