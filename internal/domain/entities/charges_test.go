package entities

import "testing"

func TestCalculateCharges(t *testing.T) {
	got := CalculateCharges()

	if got.BaseHandlingFee != 49 || got.StorageFee != 20 || got.DeliveryCharge != 60 {
		t.Fatalf("unexpected fee components: %+v", got)
	}
	if got.GST != 23.22 {
		t.Fatalf("expected gst 23.22, got %v", got.GST)
	}
	if got.TotalAmount != 152.22 {
		t.Fatalf("expected total 152.22, got %v", got.TotalAmount)
	}
	if got.PaymentMethod != "online" {
		t.Fatalf("expected method online, got %q", got.PaymentMethod)
	}
	if got.PaymentStatus != PaymentStatusPending {
		t.Fatalf("expected pending payment status, got %q", got.PaymentStatus)
	}
}

func TestCalculateChargesIsPure(t *testing.T) {
	a := CalculateCharges()
	b := CalculateCharges()
	if a != b {
		t.Fatalf("expected identical snapshots, got %+v and %+v", a, b)
	}
}
