package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/irclabs/weathercmd/internal/cache"
)

// Scheduler periodically reloads the location cache from the database so
// rows written by other processes sharing the file become visible.
type Scheduler struct {
	scheduler *gocron.Scheduler
	cache     *cache.Cache
	interval  time.Duration
}

// New creates a new Scheduler.
func New(c *cache.Cache, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		cache:     c,
		interval:  interval,
	}
}

// Start schedules the periodic resync job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.cache.Load(ctx); err != nil {
			log.Printf("scheduler: location cache resync failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
