package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/backend-server/accounts-api/internal/core/domain"
)

type recordingAuditService struct {
	mu      sync.Mutex
	entries []domain.RegistrationEntry
	err     error
	done    chan struct{}
}

func (s *recordingAuditService) Process(_ context.Context, entry domain.RegistrationEntry) error {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	if s.done != nil {
		s.done <- struct{}{}
	}
	return s.err
}

func (s *recordingAuditService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func TestDispatcher_DeliversEntries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &recordingAuditService{done: make(chan struct{}, 4)}
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start(ctx)

	for _, id := range []string{"user-1", "user-2", "user-3"} {
		d.Submit(domain.RegistrationEntry{UserID: id, Email: id + "@example.com"})
	}

	for i := 0; i < 3; i++ {
		select {
		case <-svc.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("entry %d not processed in time", i)
		}
	}
	if svc.count() != 3 {
		t.Fatalf("expected 3 entries, got %d", svc.count())
	}
}

func TestDispatcher_SubmitSurvivesSinkFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &recordingAuditService{err: errors.New("sink down"), done: make(chan struct{}, 1)}
	d := NewDispatcher(1, svc, zerolog.Nop())
	d.Start(ctx)

	// Submit must return immediately and must not propagate the failure.
	d.Submit(domain.RegistrationEntry{UserID: "user-1"})

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("entry not processed")
	}
}

func TestDispatcher_ShardIsStablePerUser(t *testing.T) {
	d := NewDispatcher(4, &recordingAuditService{}, zerolog.Nop())

	first := d.shardIndex("user-42")
	for i := 0; i < 10; i++ {
		if d.shardIndex("user-42") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingAuditService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
