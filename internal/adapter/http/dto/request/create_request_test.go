package request

import (
	"errors"
	"testing"
	"time"

	"burrow/internal/domain/entities"
)

func completeBody() CreateRequestBody {
	return CreateRequestBody{
		OwnerID:               "user-1",
		OrderNumber:           "AMZ-1001",
		Platform:              "amazon",
		ProductDescription:    "mechanical keyboard",
		WarehouseID:           "1",
		OriginalETA:           "2025-06-05",
		ScheduledDeliveryDate: "2025-06-10",
		DeliveryTimeSlot:      "10:00 AM - 12:00 PM",
		DestinationAddress: &AddressBody{
			Line1:   "221B Baker Street",
			City:    "Delhi",
			State:   "Delhi",
			Pincode: "110001",
		},
	}
}

func TestFirstMissingField(t *testing.T) {
	t.Run("complete payload", func(t *testing.T) {
		if missing := completeBody().FirstMissingField(); missing != "" {
			t.Fatalf("expected complete, got %q", missing)
		}
	})

	t.Run("reports fields in documented order", func(t *testing.T) {
		b := completeBody()
		b.OrderNumber = ""
		b.Platform = ""
		if missing := b.FirstMissingField(); missing != "orderNumber" {
			t.Fatalf("expected orderNumber first, got %q", missing)
		}
	})

	t.Run("whitespace only counts as missing", func(t *testing.T) {
		b := completeBody()
		b.DeliveryTimeSlot = "   "
		if missing := b.FirstMissingField(); missing != "deliveryTimeSlot" {
			t.Fatalf("expected deliveryTimeSlot, got %q", missing)
		}
	})

	t.Run("absent address object", func(t *testing.T) {
		b := completeBody()
		b.DestinationAddress = nil
		if missing := b.FirstMissingField(); missing != "destinationAddress" {
			t.Fatalf("expected destinationAddress, got %q", missing)
		}
	})

	t.Run("missing address member", func(t *testing.T) {
		b := completeBody()
		b.DestinationAddress.City = ""
		if missing := b.FirstMissingField(); missing != "destinationAddress.city" {
			t.Fatalf("expected destinationAddress.city, got %q", missing)
		}
	})

	t.Run("owner checked last", func(t *testing.T) {
		b := completeBody()
		b.OwnerID = ""
		if missing := b.FirstMissingField(); missing != "ownerId" {
			t.Fatalf("expected ownerId, got %q", missing)
		}
	})
}

func TestResolveDates(t *testing.T) {
	t.Run("bare calendar date", func(t *testing.T) {
		b := completeBody()
		got, err := b.ResolveOriginalETA()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("rfc3339 timestamp", func(t *testing.T) {
		b := completeBody()
		b.ScheduledDeliveryDate = "2025-06-10T14:30:00Z"
		got, err := b.ResolveScheduledDeliveryDate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Hour() != 14 || got.Minute() != 30 {
			t.Fatalf("unexpected time: %v", got)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		b := completeBody()
		b.OriginalETA = "soon"
		if _, err := b.ResolveOriginalETA(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestResolveHistory(t *testing.T) {
	t.Run("empty stays nil", func(t *testing.T) {
		b := completeBody()
		got, err := b.ResolveHistory()
		if err != nil || got != nil {
			t.Fatalf("expected nil history, got %v / %v", got, err)
		}
	})

	t.Run("entries converted", func(t *testing.T) {
		b := completeBody()
		b.StatusHistory = []StatusHistoryEntryBody{
			{Status: "submitted", Timestamp: "2025-06-01T10:00:00Z"},
			{Status: "approval_pending", Timestamp: "2025-06-01T10:00:00Z", Notes: "auto"},
		}
		got, err := b.ResolveHistory()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].Status != entities.StatusSubmitted || got[1].Notes != "auto" {
			t.Fatalf("unexpected history: %+v", got)
		}
	})

	t.Run("bad timestamp", func(t *testing.T) {
		b := completeBody()
		b.StatusHistory = []StatusHistoryEntryBody{{Status: "submitted", Timestamp: "yesterday"}}
		if _, err := b.ResolveHistory(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}
