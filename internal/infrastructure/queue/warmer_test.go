package queue

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/worklog/report-dashboard/internal/core/domain"
)

type recordingRepo struct {
	mu     sync.Mutex
	loaded []domain.Category
	fail   map[domain.Category]error
}

func (r *recordingRepo) Load(_ context.Context, c domain.Category) ([]domain.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = append(r.loaded, c)
	if err := r.fail[c]; err != nil {
		return nil, err
	}
	return []domain.Record{}, nil
}

func (r *recordingRepo) Save(context.Context, domain.Category, []domain.Record) error { return nil }

// ---------------------------------------------------------------------------
// Warm
// ---------------------------------------------------------------------------

func TestWarm_LoadsEveryCategory(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := &recordingRepo{}
	w := NewWarmer(2, repo, zerolog.Nop())
	w.Start(ctx)

	if err := w.Warm(ctx, domain.Categories); err != nil {
		t.Fatalf("Warm: %v", err)
	}
	if len(repo.loaded) != len(domain.Categories) {
		t.Errorf("loaded %v, want every category", repo.loaded)
	}
}

func TestWarm_JoinsFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	boom := errors.New("store down")
	repo := &recordingRepo{fail: map[domain.Category]error{domain.CategoryTask: boom}}
	w := NewWarmer(0, repo, zerolog.Nop())
	w.Start(ctx)

	err := w.Warm(ctx, domain.Categories)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped store error", err)
	}
}

func TestWarm_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWarmer(1, &recordingRepo{}, zerolog.Nop())
	if err := w.Warm(ctx, domain.Categories); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestShardIndex_Stable(t *testing.T) {
	w := NewWarmer(3, &recordingRepo{}, zerolog.Nop())
	for _, c := range domain.Categories {
		if w.shardIndex(c) != w.shardIndex(c) || w.shardIndex(c) >= 3 {
			t.Errorf("shard of %s unstable or out of range", c)
		}
	}
}
