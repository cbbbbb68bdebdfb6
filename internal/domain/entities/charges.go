package entities

import "math"

// Service-fee policy. Flat for every request today; revisit if pricing ever
// depends on distance or storage duration.
const (
	BaseHandlingFee = 49
	StorageFee      = 20
	DeliveryCharge  = 60
	gstRate         = 0.18
)

// CalculateCharges computes the fee snapshot embedded in a new request:
// handling + storage + delivery, plus 18% GST, both currency values rounded
// to two decimals. Pure; identical output on every call.
func CalculateCharges() PaymentDetails {
	subtotal := float64(BaseHandlingFee + StorageFee + DeliveryCharge)
	gst := round2(subtotal * gstRate)
	return PaymentDetails{
		BaseHandlingFee: BaseHandlingFee,
		StorageFee:      StorageFee,
		DeliveryCharge:  DeliveryCharge,
		GST:             gst,
		TotalAmount:     round2(subtotal + gst),
		PaymentMethod:   "online",
		PaymentStatus:   PaymentStatusPending,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
