package service

import (
	"context"
	"log"
	"time"

	"github.com/devprince/ecommerce-api/internal/repository"
)

// Sweeper periodically purges accounts that never completed email
// verification. It runs on its own schedule, independent of request traffic.
type Sweeper struct {
	userRepo repository.UserRepository
	interval time.Duration
	maxAge   time.Duration
}

func NewSweeper(userRepo repository.UserRepository, interval, maxAge time.Duration) *Sweeper {
	return &Sweeper{
		userRepo: userRepo,
		interval: interval,
		maxAge:   maxAge,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep removes unverified accounts older than maxAge. A missing repository
// handle (store not yet initialized) skips the run instead of crashing.
func (s *Sweeper) Sweep(ctx context.Context) {
	if s.userRepo == nil {
		log.Printf("WARN [sweeper.Sweep] store not initialized, skipping run")
		return
	}

	cutoff := time.Now().Add(-s.maxAge)
	removed, err := s.userRepo.DeleteUnverifiedCreatedBefore(ctx, cutoff)
	if err != nil {
		log.Printf("ERROR [sweeper.Sweep] delete unverified users: %v", err)
		return
	}

	log.Printf("INFO [sweeper.Sweep] removed %d unverified users older than %s", removed, s.maxAge)
}
