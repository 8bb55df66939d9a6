package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/backend-server/accounts-api/internal/core/domain"
)

type recordingSink struct {
	entries []domain.RegistrationEntry
	err     error
}

func (s *recordingSink) Append(_ context.Context, entry domain.RegistrationEntry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func TestAuditService_Process(t *testing.T) {
	sink := &recordingSink{}
	svc := NewAuditService(sink, zerolog.Nop())

	entry := domain.RegistrationEntry{
		UserID:    "user-1",
		UserName:  "Ada",
		Email:     "ada@example.com",
		Timestamp: time.Now().UTC(),
		IP:        "10.0.0.7",
	}
	if err := svc.Process(context.Background(), entry); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(sink.entries) != 1 || sink.entries[0].UserID != "user-1" {
		t.Fatalf("entry not appended: %+v", sink.entries)
	}
}

func TestAuditService_Process_SinkFailure(t *testing.T) {
	sinkErr := errors.New("collection gone")
	svc := NewAuditService(&recordingSink{err: sinkErr}, zerolog.Nop())

	err := svc.Process(context.Background(), domain.RegistrationEntry{UserID: "user-1"})
	if err == nil {
		t.Fatalf("expected error from failing sink")
	}
	if !errors.Is(err, sinkErr) {
		t.Fatalf("expected wrapped sink error, got %v", err)
	}
}
