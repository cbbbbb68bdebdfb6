package entities

import (
	"testing"
	"time"
)

func TestSeedStatusHistory(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	var r DeliveryRequest
	r.SeedStatusHistory(StatusApprovalPending, now)

	if r.Status != StatusApprovalPending {
		t.Fatalf("expected status approval_pending, got %q", r.Status)
	}
	if len(r.StatusHistory) != 2 {
		t.Fatalf("expected 2 seeded entries, got %d", len(r.StatusHistory))
	}
	if r.StatusHistory[0].Status != StatusSubmitted {
		t.Fatalf("expected first entry submitted, got %q", r.StatusHistory[0].Status)
	}
	if r.StatusHistory[1].Status != StatusApprovalPending {
		t.Fatalf("expected second entry approval_pending, got %q", r.StatusHistory[1].Status)
	}
	if !r.StatusHistory[0].Timestamp.Equal(now) || !r.StatusHistory[1].Timestamp.Equal(now) {
		t.Fatalf("expected both entries at creation instant")
	}
}

func TestApplyStatus(t *testing.T) {
	t.Run("appends and advances", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		var r DeliveryRequest
		r.SeedStatusHistory(StatusApprovalPending, now)

		later := now.Add(time.Hour)
		if !r.ApplyStatus(StatusApproved, "looks good", later) {
			t.Fatalf("expected transition to apply")
		}
		if r.Status != StatusApproved {
			t.Fatalf("expected status approved, got %q", r.Status)
		}
		if len(r.StatusHistory) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(r.StatusHistory))
		}
		tail := r.StatusHistory[len(r.StatusHistory)-1]
		if tail.Status != StatusApproved || tail.Notes != "looks good" || !tail.Timestamp.Equal(later) {
			t.Fatalf("unexpected tail entry: %+v", tail)
		}
		if !r.UpdatedAt.Equal(later) {
			t.Fatalf("expected updatedAt refreshed")
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		var r DeliveryRequest
		r.SeedStatusHistory(StatusApprovalPending, now)

		if r.ApplyStatus(StatusApprovalPending, "dup click", now.Add(time.Minute)) {
			t.Fatalf("expected no-op for current status")
		}
		if len(r.StatusHistory) != 2 {
			t.Fatalf("expected history untouched, got %d entries", len(r.StatusHistory))
		}
	})

	t.Run("tail always matches status", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		var r DeliveryRequest
		r.SeedStatusHistory(StatusApprovalPending, now)

		for i, s := range []Status{StatusApproved, StatusParcelArrived, StatusInStorage, StatusDelivered} {
			r.ApplyStatus(s, "", now.Add(time.Duration(i+1)*time.Hour))
			if r.HistoryTail() != r.Status {
				t.Fatalf("tail %q diverged from status %q", r.HistoryTail(), r.Status)
			}
		}
	})
}

func TestHistoryConsistent(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("valid log", func(t *testing.T) {
		history := []StatusHistoryEntry{
			{Status: StatusSubmitted, Timestamp: now},
			{Status: StatusApprovalPending, Timestamp: now},
			{Status: StatusApproved, Timestamp: now.Add(time.Hour)},
		}
		if !HistoryConsistent(history, StatusApproved) {
			t.Fatalf("expected consistent history")
		}
	})

	t.Run("empty log", func(t *testing.T) {
		if HistoryConsistent(nil, StatusApproved) {
			t.Fatalf("expected empty history to be rejected")
		}
	})

	t.Run("tail mismatch", func(t *testing.T) {
		history := []StatusHistoryEntry{
			{Status: StatusSubmitted, Timestamp: now},
			{Status: StatusApproved, Timestamp: now.Add(time.Hour)},
		}
		if HistoryConsistent(history, StatusDelivered) {
			t.Fatalf("expected tail mismatch to be rejected")
		}
	})

	t.Run("decreasing timestamps", func(t *testing.T) {
		history := []StatusHistoryEntry{
			{Status: StatusSubmitted, Timestamp: now.Add(time.Hour)},
			{Status: StatusApproved, Timestamp: now},
		}
		if HistoryConsistent(history, StatusApproved) {
			t.Fatalf("expected decreasing timestamps to be rejected")
		}
	})
}
