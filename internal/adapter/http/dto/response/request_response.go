package response

import (
	"time"

	"burrow/internal/domain/entities"
)

type AddressResponse struct {
	Line1         string `json:"line1"`
	Line2         string `json:"line2,omitempty"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	Landmark      string `json:"landmark,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

type StatusHistoryEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

type PaymentDetailsResponse struct {
	BaseHandlingFee float64 `json:"baseHandlingFee"`
	StorageFee      float64 `json:"storageFee"`
	DeliveryCharge  float64 `json:"deliveryCharge"`
	GST             float64 `json:"gst"`
	TotalAmount     float64 `json:"totalAmount"`
	PaymentMethod   string  `json:"paymentMethod"`
	PaymentStatus   string  `json:"paymentStatus"`
}

// RequestResponse is the full post-mutation entity every write echoes back,
// so client caches can replace their copy atomically. Stage carries the
// badge category so dashboards never reimplement the classification.
type RequestResponse struct {
	ID                    string                       `json:"id"`
	OwnerID               string                       `json:"ownerId"`
	OrderNumber           string                       `json:"orderNumber"`
	Platform              string                       `json:"platform"`
	ProductDescription    string                       `json:"productDescription"`
	WarehouseID           string                       `json:"warehouseId"`
	OriginalETA           time.Time                    `json:"originalETA"`
	ScheduledDeliveryDate time.Time                    `json:"scheduledDeliveryDate"`
	DeliveryTimeSlot      string                       `json:"deliveryTimeSlot"`
	DestinationAddress    AddressResponse              `json:"destinationAddress"`
	Notes                 string                       `json:"notes,omitempty"`
	ReceiptURL            string                       `json:"receiptUrl,omitempty"`
	Status                string                       `json:"status"`
	Stage                 string                       `json:"stage"`
	StatusHistory         []StatusHistoryEntryResponse `json:"statusHistory"`
	PaymentDetails        PaymentDetailsResponse       `json:"paymentDetails"`
	CreatedAt             time.Time                    `json:"createdAt"`
	UpdatedAt             time.Time                    `json:"updatedAt"`
}

func FromRequest(r entities.DeliveryRequest) RequestResponse {
	history := make([]StatusHistoryEntryResponse, 0, len(r.StatusHistory))
	for _, h := range r.StatusHistory {
		history = append(history, StatusHistoryEntryResponse{
			Status:    string(h.Status),
			Timestamp: h.Timestamp,
			Notes:     h.Notes,
		})
	}

	return RequestResponse{
		ID:                    r.ID,
		OwnerID:               r.OwnerID,
		OrderNumber:           r.OrderNumber,
		Platform:              r.Platform,
		ProductDescription:    r.ProductDescription,
		WarehouseID:           r.WarehouseID,
		OriginalETA:           r.OriginalETA,
		ScheduledDeliveryDate: r.ScheduledDeliveryDate,
		DeliveryTimeSlot:      r.DeliveryTimeSlot,
		DestinationAddress: AddressResponse{
			Line1:         r.DestinationAddress.Line1,
			Line2:         r.DestinationAddress.Line2,
			City:          r.DestinationAddress.City,
			State:         r.DestinationAddress.State,
			Pincode:       r.DestinationAddress.Pincode,
			Landmark:      r.DestinationAddress.Landmark,
			ContactNumber: r.DestinationAddress.ContactNumber,
		},
		Notes:         r.Notes,
		ReceiptURL:    r.ReceiptURL,
		Status:        string(r.Status),
		Stage:         string(r.Status.Stage()),
		StatusHistory: history,
		PaymentDetails: PaymentDetailsResponse{
			BaseHandlingFee: r.PaymentDetails.BaseHandlingFee,
			StorageFee:      r.PaymentDetails.StorageFee,
			DeliveryCharge:  r.PaymentDetails.DeliveryCharge,
			GST:             r.PaymentDetails.GST,
			TotalAmount:     r.PaymentDetails.TotalAmount,
			PaymentMethod:   r.PaymentDetails.PaymentMethod,
			PaymentStatus:   r.PaymentDetails.PaymentStatus,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromRequests(items []entities.DeliveryRequest) []RequestResponse {
	out := make([]RequestResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromRequest(r))
	}
	return out
}
