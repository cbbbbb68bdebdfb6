package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"burrow/internal/domain/entities"
	"burrow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound      = errors.New("request not found")
	ErrRequestAlreadyExists = errors.New("request already exists")
	ErrInvalidRequestID     = errors.New("invalid request id")
	ErrInvalidWarehouse     = errors.New("invalid warehouse selected")
	ErrMissingStatus        = errors.New("status is required")
	ErrInconsistentHistory  = errors.New("status history tail does not match status or timestamps decrease")
	ErrPaymentNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentDeclined      = errors.New("payment was declined by the provider")
)

// Conditional saves retry this many times before giving up. Contention on a
// single request is operator-click level, so two retries already cover it.
const saveRetries = 3

// CreateRequestInput is the fully-validated command for creating a request.
// DTO validation has already guaranteed the required fields are present.
type CreateRequestInput struct {
	ID                    string
	OwnerID               string
	OrderNumber           string
	Platform              string
	ProductDescription    string
	WarehouseID           string
	OriginalETA           time.Time
	ScheduledDeliveryDate time.Time
	DeliveryTimeSlot      string
	DestinationAddress    entities.Address
	Notes                 string
	ReceiptURL            string
	InitialStatus         entities.Status
	StatusHistory         []entities.StatusHistoryEntry
	PaymentMethod         string
}

// UpdateStatusInput carries one lifecycle transition. HistoryOverride, when
// set, replaces the whole log instead of appending; it is validated against
// the target status before being trusted.
type UpdateStatusInput struct {
	Status          entities.Status
	Notes           string
	HistoryOverride []entities.StatusHistoryEntry
}

// UpdateRequestInput is a partial update of the mutable non-lifecycle
// fields. Nil pointers leave the stored value untouched.
type UpdateRequestInput struct {
	ScheduledDeliveryDate *time.Time
	DeliveryTimeSlot      *string
	DestinationAddress    *entities.Address
	Notes                 *string
	ReceiptURL            *string
	PaymentStatus         *string
	PaymentMethod         *string
}

// IRequestUseCase exposes the delivery-request lifecycle operations consumed
// by the dashboards.
type IRequestUseCase interface {
	CreateRequest(ctx context.Context, in CreateRequestInput) (entities.DeliveryRequest, error)
	GetByID(ctx context.Context, id string) (entities.DeliveryRequest, error)
	List(ctx context.Context, filter interfaces.RequestFilter) ([]entities.DeliveryRequest, error)
	UpdateStatus(ctx context.Context, id string, in UpdateStatusInput) (entities.DeliveryRequest, error)
	UpdateRequest(ctx context.Context, id string, in UpdateRequestInput) (entities.DeliveryRequest, error)
	ConfirmPayment(ctx context.Context, id string, method string) (entities.DeliveryRequest, error)
	DeleteRequest(ctx context.Context, id string) error
}

type RequestUseCase struct {
	requests   interfaces.IRequestRepository
	warehouses interfaces.IWarehouseRepository
	gateway    interfaces.IPaymentGateway
	now        func() time.Time
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(requests interfaces.IRequestRepository, warehouses interfaces.IWarehouseRepository, gateway interfaces.IPaymentGateway) *RequestUseCase {
	return &RequestUseCase{
		requests:   requests,
		warehouses: warehouses,
		gateway:    gateway,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreateRequest persists a new delivery request with its charge snapshot and
// seeded status history. The referenced warehouse must exist.
func (u *RequestUseCase) CreateRequest(ctx context.Context, in CreateRequestInput) (entities.DeliveryRequest, error) {
	warehouse, err := u.warehouses.GetByID(ctx, strings.TrimSpace(in.WarehouseID))
	if err != nil {
		return entities.DeliveryRequest{}, err
	}
	if warehouse.ID == "" {
		return entities.DeliveryRequest{}, ErrInvalidWarehouse
	}

	now := u.now()
	charges := entities.CalculateCharges()
	if in.PaymentMethod != "" {
		charges.PaymentMethod = in.PaymentMethod
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}

	initial := in.InitialStatus
	if initial == "" {
		initial = entities.StatusApprovalPending
	}

	r := entities.DeliveryRequest{
		ID:                    id,
		OwnerID:               in.OwnerID,
		OrderNumber:           in.OrderNumber,
		Platform:              in.Platform,
		ProductDescription:    in.ProductDescription,
		WarehouseID:           warehouse.ID,
		OriginalETA:           in.OriginalETA,
		ScheduledDeliveryDate: in.ScheduledDeliveryDate,
		DeliveryTimeSlot:      in.DeliveryTimeSlot,
		DestinationAddress:    in.DestinationAddress,
		Notes:                 in.Notes,
		ReceiptURL:            in.ReceiptURL,
		PaymentDetails:        charges,
		Revision:              1,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if len(in.StatusHistory) > 0 {
		if !entities.HistoryConsistent(in.StatusHistory, initial) {
			return entities.DeliveryRequest{}, ErrInconsistentHistory
		}
		r.Status = initial
		r.StatusHistory = in.StatusHistory
	} else {
		r.SeedStatusHistory(initial, now)
	}

	created, err := u.requests.Create(ctx, r)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateID) {
			return entities.DeliveryRequest{}, ErrRequestAlreadyExists
		}
		return entities.DeliveryRequest{}, err
	}
	return created, nil
}

func (u *RequestUseCase) GetByID(ctx context.Context, id string) (entities.DeliveryRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DeliveryRequest{}, ErrInvalidRequestID
	}

	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.DeliveryRequest{}, err
	}
	if r.ID == "" {
		return entities.DeliveryRequest{}, ErrRequestNotFound
	}
	return r, nil
}

// List returns requests matching the filter, most recent first. The result
// is never nil: an empty match is a valid empty slice.
func (u *RequestUseCase) List(ctx context.Context, filter interfaces.RequestFilter) ([]entities.DeliveryRequest, error) {
	items, err := u.requests.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if items == nil {
		items = []entities.DeliveryRequest{}
	}
	return items, nil
}

// UpdateStatus applies one lifecycle transition under the revision guard.
// Setting the current status again appends nothing and writes nothing.
func (u *RequestUseCase) UpdateStatus(ctx context.Context, id string, in UpdateStatusInput) (entities.DeliveryRequest, error) {
	if strings.TrimSpace(string(in.Status)) == "" {
		return entities.DeliveryRequest{}, ErrMissingStatus
	}

	return u.saveWithRetry(ctx, id, func(r *entities.DeliveryRequest, now time.Time) (bool, error) {
		if len(in.HistoryOverride) > 0 {
			if !entities.HistoryConsistent(in.HistoryOverride, in.Status) {
				return false, ErrInconsistentHistory
			}
			r.Status = in.Status
			r.StatusHistory = in.HistoryOverride
			r.UpdatedAt = now
			return true, nil
		}
		return r.ApplyStatus(in.Status, in.Notes, now), nil
	})
}

// UpdateRequest merges the supplied fields and refreshes updatedAt. Status
// and history are deliberately not reachable from here; they only move
// through UpdateStatus.
func (u *RequestUseCase) UpdateRequest(ctx context.Context, id string, in UpdateRequestInput) (entities.DeliveryRequest, error) {
	return u.saveWithRetry(ctx, id, func(r *entities.DeliveryRequest, now time.Time) (bool, error) {
		if in.ScheduledDeliveryDate != nil {
			r.ScheduledDeliveryDate = *in.ScheduledDeliveryDate
		}
		if in.DeliveryTimeSlot != nil {
			r.DeliveryTimeSlot = *in.DeliveryTimeSlot
		}
		if in.DestinationAddress != nil {
			r.DestinationAddress = *in.DestinationAddress
		}
		if in.Notes != nil {
			r.Notes = *in.Notes
		}
		if in.ReceiptURL != nil {
			r.ReceiptURL = *in.ReceiptURL
		}
		if in.PaymentStatus != nil {
			r.PaymentDetails.PaymentStatus = *in.PaymentStatus
		}
		if in.PaymentMethod != nil {
			r.PaymentDetails.PaymentMethod = *in.PaymentMethod
		}
		r.UpdatedAt = now
		return true, nil
	})
}

// ConfirmPayment charges the request's total through the payment gateway,
// marks the snapshot completed and, when the request was waiting on payment,
// advances it to approval.
func (u *RequestUseCase) ConfirmPayment(ctx context.Context, id string, method string) (entities.DeliveryRequest, error) {
	if u.gateway == nil {
		return entities.DeliveryRequest{}, ErrPaymentNotConfigured
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.DeliveryRequest{}, err
	}

	if method == "" {
		method = current.PaymentDetails.PaymentMethod
	}

	providerID, providerStatus, err := u.gateway.ChargePayment(ctx, current.ID, current.PaymentDetails.TotalAmount, method)
	if err != nil {
		return entities.DeliveryRequest{}, fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
	}

	return u.saveWithRetry(ctx, id, func(r *entities.DeliveryRequest, now time.Time) (bool, error) {
		r.PaymentDetails.PaymentStatus = entities.PaymentStatusCompleted
		r.PaymentDetails.PaymentMethod = method
		if r.Status == entities.StatusPaymentPending {
			notes := fmt.Sprintf("payment %s via %s (%s)", providerStatus, method, providerID)
			r.ApplyStatus(entities.StatusApprovalPending, notes, now)
		}
		r.UpdatedAt = now
		return true, nil
	})
}

func (u *RequestUseCase) DeleteRequest(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRequestID
	}

	found, err := u.requests.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrRequestNotFound
	}
	return nil
}

// saveWithRetry runs the read-mutate-save cycle under the revision guard.
// mutate returns false to skip the write (the entity is returned as read).
// A lost race reloads and reapplies, so a concurrent append can never be
// overwritten and status can never diverge from the history tail.
func (u *RequestUseCase) saveWithRetry(ctx context.Context, id string, mutate func(r *entities.DeliveryRequest, now time.Time) (bool, error)) (entities.DeliveryRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DeliveryRequest{}, ErrInvalidRequestID
	}

	var lastErr error
	for attempt := 0; attempt < saveRetries; attempt++ {
		r, err := u.requests.GetByID(ctx, id)
		if err != nil {
			return entities.DeliveryRequest{}, err
		}
		if r.ID == "" {
			return entities.DeliveryRequest{}, ErrRequestNotFound
		}

		changed, err := mutate(&r, u.now())
		if err != nil {
			return entities.DeliveryRequest{}, err
		}
		if !changed {
			return r, nil
		}

		saved, err := u.requests.Save(ctx, r)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, interfaces.ErrRevisionConflict) {
			return entities.DeliveryRequest{}, err
		}
		lastErr = err
	}
	return entities.DeliveryRequest{}, lastErr
}
