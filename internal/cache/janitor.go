package cache

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Janitor prunes expired cache entries on a cron schedule.
type Janitor struct {
	cron  *cron.Cron
	store Store
}

// NewJanitor creates a Janitor over the given store.
func NewJanitor(store Store) *Janitor {
	return &Janitor{cron: cron.New(), store: store}
}

// Register schedules the prune job with a standard 5-field cron spec.
func (j *Janitor) Register(spec string) error {
	if _, err := j.cron.AddFunc(spec, j.prune); err != nil {
		return fmt.Errorf("register cache prune: %w", err)
	}
	return nil
}

func (j *Janitor) prune() {
	n, err := j.store.Prune()
	if err != nil {
		log.Printf("[ERROR] cache prune: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[INFO] cache prune removed %d expired entries", n)
	}
}

// Start starts the cron scheduler.
func (j *Janitor) Start() {
	j.cron.Start()
	log.Println("[INFO] cache janitor started")
}

// Stop stops the cron scheduler gracefully.
func (j *Janitor) Stop() {
	j.cron.Stop()
	log.Println("[INFO] cache janitor stopped")
}
