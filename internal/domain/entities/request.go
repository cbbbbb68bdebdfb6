package entities

import "time"

// Address is the structured final-delivery destination embedded in a request.
type Address struct {
	Line1         string `json:"line1"`
	Line2         string `json:"line2,omitempty"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	Landmark      string `json:"landmark,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

// StatusHistoryEntry is one element of the append-only transition log.
// Insertion order is chronological order.
type StatusHistoryEntry struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

// PaymentDetails is the fee snapshot computed once at creation. Only the
// payment status and method change afterwards.
type PaymentDetails struct {
	BaseHandlingFee float64 `json:"baseHandlingFee"`
	StorageFee      float64 `json:"storageFee"`
	DeliveryCharge  float64 `json:"deliveryCharge"`
	GST             float64 `json:"gst"`
	TotalAmount     float64 `json:"totalAmount"`
	PaymentMethod   string  `json:"paymentMethod"`
	PaymentStatus   string  `json:"paymentStatus"`
}

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// DeliveryRequest is the aggregate root: a consumer's redirected delivery,
// owned by one user and bound to one warehouse.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI expectation (read scale): owner_id-index
//
// Invariants:
//   - StatusHistory is non-empty after creation; its first entry is always
//     StatusSubmitted and its last entry's status equals Status.
//   - Revision counts successful writes; conditional saves compare it so the
//     status field and the history tail cannot diverge under racing writers.
type DeliveryRequest struct {
	ID                    string               `json:"id"`
	OwnerID               string               `json:"ownerId"`
	OrderNumber           string               `json:"orderNumber"`
	Platform              string               `json:"platform"`
	ProductDescription    string               `json:"productDescription"`
	WarehouseID           string               `json:"warehouseId"`
	OriginalETA           time.Time            `json:"originalETA"`
	ScheduledDeliveryDate time.Time            `json:"scheduledDeliveryDate"`
	DeliveryTimeSlot      string               `json:"deliveryTimeSlot"`
	DestinationAddress    Address              `json:"destinationAddress"`
	Notes                 string               `json:"notes,omitempty"`
	ReceiptURL            string               `json:"receiptUrl,omitempty"`
	Status                Status               `json:"status"`
	StatusHistory         []StatusHistoryEntry `json:"statusHistory"`
	PaymentDetails        PaymentDetails       `json:"paymentDetails"`
	Revision              int64                `json:"revision"`
	CreatedAt             time.Time            `json:"createdAt"`
	UpdatedAt             time.Time            `json:"updatedAt"`
}

// SeedStatusHistory initializes the log for a newly created request: a
// submitted entry followed by the initial workflow status, both at the
// creation instant.
func (r *DeliveryRequest) SeedStatusHistory(initial Status, now time.Time) {
	r.Status = initial
	r.StatusHistory = []StatusHistoryEntry{
		{Status: StatusSubmitted, Timestamp: now},
		{Status: initial, Timestamp: now},
	}
}

// ApplyStatus moves the request to status, appending one history entry.
// Reapplying the current status is a no-op and returns false: the guard that
// keeps duplicate operator clicks from inflating the log.
func (r *DeliveryRequest) ApplyStatus(status Status, notes string, now time.Time) bool {
	if status == r.Status {
		return false
	}
	r.Status = status
	r.StatusHistory = append(r.StatusHistory, StatusHistoryEntry{
		Status:    status,
		Timestamp: now,
		Notes:     notes,
	})
	r.UpdatedAt = now
	return true
}

// HistoryTail returns the status of the most recent history entry, or the
// empty status for an empty log.
func (r *DeliveryRequest) HistoryTail() Status {
	if len(r.StatusHistory) == 0 {
		return ""
	}
	return r.StatusHistory[len(r.StatusHistory)-1].Status
}

// HistoryConsistent reports whether a full replacement log is acceptable for
// the given target status: non-empty, tail matching the target, timestamps
// non-decreasing.
func HistoryConsistent(history []StatusHistoryEntry, target Status) bool {
	if len(history) == 0 {
		return false
	}
	if history[len(history)-1].Status != target {
		return false
	}
	for i := 1; i < len(history); i++ {
		if history[i].Timestamp.Before(history[i-1].Timestamp) {
			return false
		}
	}
	return true
}
