package request

import (
	"time"

	"burrow/internal/domain/entities"
)

// UpdateStatusBody is the lifecycle-transition payload. StatusHistory, when
// present, replaces the whole log (administrative flows) and is validated
// downstream against the target status.
type UpdateStatusBody struct {
	Status        string                   `json:"status"`
	Notes         string                   `json:"notes"`
	StatusHistory []StatusHistoryEntryBody `json:"statusHistory"`
}

func (b UpdateStatusBody) ResolveHistory() ([]entities.StatusHistoryEntry, error) {
	return resolveHistory(b.StatusHistory)
}

// UpdateRequestBody is the partial-update payload for the mutable
// non-lifecycle fields. Absent fields (nil) keep their stored values.
type UpdateRequestBody struct {
	ScheduledDeliveryDate *string      `json:"scheduledDeliveryDate"`
	DeliveryTimeSlot      *string      `json:"deliveryTimeSlot"`
	DestinationAddress    *AddressBody `json:"destinationAddress"`
	Notes                 *string      `json:"notes"`
	ReceiptURL            *string      `json:"receiptUrl"`
	PaymentStatus         *string      `json:"paymentStatus"`
	PaymentMethod         *string      `json:"paymentMethod"`
}

func (b UpdateRequestBody) ResolveScheduledDeliveryDate() (*time.Time, error) {
	if b.ScheduledDeliveryDate == nil {
		return nil, nil
	}
	t, err := parseDate(*b.ScheduledDeliveryDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (b UpdateRequestBody) ResolveAddress() *entities.Address {
	if b.DestinationAddress == nil {
		return nil
	}
	addr := entities.Address{
		Line1:         b.DestinationAddress.Line1,
		Line2:         b.DestinationAddress.Line2,
		City:          b.DestinationAddress.City,
		State:         b.DestinationAddress.State,
		Pincode:       b.DestinationAddress.Pincode,
		Landmark:      b.DestinationAddress.Landmark,
		ContactNumber: b.DestinationAddress.ContactNumber,
	}
	return &addr
}

// ConfirmPaymentBody optionally overrides the payment method recorded at
// creation time.
type ConfirmPaymentBody struct {
	PaymentMethod string `json:"paymentMethod"`
}
