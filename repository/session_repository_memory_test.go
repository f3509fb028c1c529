package repository

import (
	"context"
	"testing"
	"time"

	"compound-interest/domain"
)

func TestSessionRepositoryMemory_SaveGet(t *testing.T) {

	repo := NewSessionRepositoryMemory(time.Hour)
	defer repo.Stop()
	ctx := context.Background()

	session := domain.Session{ID: "abc", View: domain.ViewMonthly, SelectedYear: 3}
	if err := repo.Save(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := repo.Get(ctx, "abc")
	if err != nil || !ok {
		t.Fatalf("expected stored session, ok=%v err=%v", ok, err)
	}
	if got.View != domain.ViewMonthly || got.SelectedYear != 3 {
		t.Errorf("unexpected session %+v", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Errorf("expected UpdatedAt to be stamped")
	}
}

func TestSessionRepositoryMemory_Expiry(t *testing.T) {

	repo := NewSessionRepositoryMemory(time.Minute)
	defer repo.Stop()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	_ = repo.Save(ctx, domain.Session{ID: "old"})

	now = now.Add(2 * time.Minute)
	if _, ok, _ := repo.Get(ctx, "old"); ok {
		t.Errorf("expected expired session to be hidden")
	}

	repo.cleanup()
	if len(repo.sessions) != 0 {
		t.Errorf("expected cleanup to evict, have %d", len(repo.sessions))
	}
}

func TestSessionRepositoryMemory_StopTwice(t *testing.T) {
	repo := NewSessionRepositoryMemory(time.Minute)
	repo.Stop()
	repo.Stop()
}
