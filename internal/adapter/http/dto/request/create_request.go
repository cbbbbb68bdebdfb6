package request

import (
	"errors"
	"strings"
	"time"

	"burrow/internal/domain/entities"
)

var ErrInvalidDate = errors.New("invalid date value")

// dateLayouts accepted for the two delivery dates. The dashboards send full
// RFC 3339 timestamps; date pickers may send a bare calendar date.
var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

type AddressBody struct {
	Line1         string `json:"line1"`
	Line2         string `json:"line2"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	Landmark      string `json:"landmark"`
	ContactNumber string `json:"contactNumber"`
}

type StatusHistoryEntryBody struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Notes     string `json:"notes"`
}

// CreateRequestBody is the creation payload posted by both dashboards.
// Validation happens once, here, so handlers and use cases receive a fully
// populated command instead of re-checking fields ad hoc.
type CreateRequestBody struct {
	ID                    string                   `json:"id"`
	OwnerID               string                   `json:"ownerId"`
	OrderNumber           string                   `json:"orderNumber"`
	Platform              string                   `json:"platform"`
	ProductDescription    string                   `json:"productDescription"`
	WarehouseID           string                   `json:"warehouseId"`
	OriginalETA           string                   `json:"originalETA"`
	ScheduledDeliveryDate string                   `json:"scheduledDeliveryDate"`
	DeliveryTimeSlot      string                   `json:"deliveryTimeSlot"`
	DestinationAddress    *AddressBody             `json:"destinationAddress"`
	Notes                 string                   `json:"notes"`
	ReceiptURL            string                   `json:"receiptUrl"`
	Status                string                   `json:"status"`
	StatusHistory         []StatusHistoryEntryBody `json:"statusHistory"`
	PaymentMethod         string                   `json:"paymentMethod"`
}

// FirstMissingField returns the name of the first absent required field, in
// the documented order, or "" when the payload is complete.
func (b CreateRequestBody) FirstMissingField() string {
	checks := []struct {
		name  string
		value string
	}{
		{"orderNumber", b.OrderNumber},
		{"platform", b.Platform},
		{"productDescription", b.ProductDescription},
		{"warehouseId", b.WarehouseID},
		{"originalETA", b.OriginalETA},
		{"scheduledDeliveryDate", b.ScheduledDeliveryDate},
		{"deliveryTimeSlot", b.DeliveryTimeSlot},
	}
	for _, c := range checks {
		if strings.TrimSpace(c.value) == "" {
			return c.name
		}
	}

	if b.DestinationAddress == nil {
		return "destinationAddress"
	}
	addrChecks := []struct {
		name  string
		value string
	}{
		{"destinationAddress.line1", b.DestinationAddress.Line1},
		{"destinationAddress.city", b.DestinationAddress.City},
		{"destinationAddress.state", b.DestinationAddress.State},
		{"destinationAddress.pincode", b.DestinationAddress.Pincode},
	}
	for _, c := range addrChecks {
		if strings.TrimSpace(c.value) == "" {
			return c.name
		}
	}

	if strings.TrimSpace(b.OwnerID) == "" {
		return "ownerId"
	}
	return ""
}

func (b CreateRequestBody) ResolveOriginalETA() (time.Time, error) {
	return parseDate(b.OriginalETA)
}

func (b CreateRequestBody) ResolveScheduledDeliveryDate() (time.Time, error) {
	return parseDate(b.ScheduledDeliveryDate)
}

func (b CreateRequestBody) ResolveAddress() entities.Address {
	if b.DestinationAddress == nil {
		return entities.Address{}
	}
	return entities.Address{
		Line1:         strings.TrimSpace(b.DestinationAddress.Line1),
		Line2:         strings.TrimSpace(b.DestinationAddress.Line2),
		City:          strings.TrimSpace(b.DestinationAddress.City),
		State:         strings.TrimSpace(b.DestinationAddress.State),
		Pincode:       strings.TrimSpace(b.DestinationAddress.Pincode),
		Landmark:      strings.TrimSpace(b.DestinationAddress.Landmark),
		ContactNumber: strings.TrimSpace(b.DestinationAddress.ContactNumber),
	}
}

func (b CreateRequestBody) ResolveHistory() ([]entities.StatusHistoryEntry, error) {
	return resolveHistory(b.StatusHistory)
}

func resolveHistory(body []StatusHistoryEntryBody) ([]entities.StatusHistoryEntry, error) {
	if len(body) == 0 {
		return nil, nil
	}
	out := make([]entities.StatusHistoryEntry, 0, len(body))
	for _, e := range body {
		ts, err := parseDate(e.Timestamp)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.StatusHistoryEntry{
			Status:    entities.Status(e.Status),
			Timestamp: ts,
			Notes:     e.Notes,
		})
	}
	return out, nil
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
