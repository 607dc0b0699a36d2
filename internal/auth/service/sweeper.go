package service

import (
	"context"
	"log"
	"time"

	"github.com/Hoff08/barbeariateste/internal/auth/domain"
)

// SessionSweeper periodically deletes expired refresh sessions. It runs
// as a background loop, never inline with a request; validation checks
// expiry on its own, so the sweep only reclaims storage.
type SessionSweeper struct {
	sessions domain.SessionRepository
}

func NewSessionSweeper(sessions domain.SessionRepository) *SessionSweeper {
	return &SessionSweeper{sessions: sessions}
}

// Start runs the sweep loop until ctx is cancelled.
func (sw *SessionSweeper) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("session sweeper started, interval %s", interval)

	for {
		select {
		case <-ctx.Done():
			log.Printf("session sweeper stopped")
			return
		case <-ticker.C:
			sw.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep. Failures are logged and retried on
// the next tick rather than propagated; a missed sweep only delays
// storage reclamation.
func (sw *SessionSweeper) RunOnce(ctx context.Context) {
	deleted, err := sw.sessions.DeleteExpiredSessions(ctx)
	if err != nil {
		log.Printf("warn: failed to sweep expired refresh sessions: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("swept %d expired refresh sessions", deleted)
	}
}
