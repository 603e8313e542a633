// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-post-mirror/internal/config"
	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/internal/service"
)

// RefreshJob re-fetches the post list on a fixed interval.
type RefreshJob struct {
	coordinator service.PostsCoordinator
	interval    time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob calling coordinator.FetchAll every
// cfg.RefreshInterval. A non-positive interval leaves the job idle.
func NewRefreshJob(coordinator service.PostsCoordinator, cfg config.ClientWorkers, log *logger.Logger) *RefreshJob {
	return &RefreshJob{
		coordinator: coordinator,
		interval:    cfg.RefreshInterval,
		logger:      log,
	}
}

// Run implements [Worker]. It stops any previously running loop, then
// launches a goroutine that dispatches FetchAll on every tick and waits for it
// to settle before the next one. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *RefreshJob) Run(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Debug().Msg("refresh job disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.coordinator.FetchAll(jobCtx).Wait(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("scheduled refresh failed")
				}
			}
		}
	}()

	j.logger.Info().Dur("interval", j.interval).Msg("refresh job started")
}

// Stop implements [Worker]. Safe to call when the job is not running.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
