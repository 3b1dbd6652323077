// Package queue runs store warm-up on a small sharded worker pool.
package queue

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 16
)

type job struct {
	category domain.Category
	done     func(error)
}

// Warmer loads report categories ahead of the first request so absent blobs
// are seeded at startup. Jobs for one category always land on the same
// worker and never overlap.
type Warmer struct {
	workers []chan job
	repo    ports.ReportRepository
	log     zerolog.Logger
}

// NewWarmer creates a Warmer with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewWarmer(numWorkers int, repo ports.ReportRepository, log zerolog.Logger) *Warmer {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	w := &Warmer{
		workers: make([]chan job, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range w.workers {
		w.workers[i] = make(chan job, channelBuffer)
	}
	return w
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (w *Warmer) Start(ctx context.Context) {
	for i, ch := range w.workers {
		go w.runWorker(ctx, i, ch)
	}
}

// Warm loads every category and waits for the results. Failures are joined.
func (w *Warmer) Warm(ctx context.Context, categories []domain.Category) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, c := range categories {
		wg.Add(1)
		j := job{category: c, done: func(err error) {
			defer wg.Done()
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("warm %s: %w", c, err))
				mu.Unlock()
			}
		}}
		select {
		case w.workers[w.shardIndex(c)] <- j:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-ctx.Done():
		return ctx.Err()
	}

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(errs...)
}

// shardIndex maps a category deterministically to a worker index.
func (w *Warmer) shardIndex(c domain.Category) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(c))
	return int(h.Sum32() % uint32(len(w.workers)))
}

func (w *Warmer) runWorker(ctx context.Context, id int, ch <-chan job) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-ch:
			records, err := w.repo.Load(ctx, j.category)
			if err != nil {
				w.log.Error().Err(err).
					Str("category", string(j.category)).
					Int("worker_id", id).
					Msg("store warm-up failed")
			} else {
				w.log.Debug().
					Str("category", string(j.category)).
					Int("records", len(records)).
					Int("worker_id", id).
					Msg("store warmed")
			}
			j.done(err)
		}
	}
}
