package interfaces

import (
	"context"

	"burrow/internal/domain/entities"
)

// RequestFilter narrows List results. Zero-value fields are unconstrained;
// set fields combine with AND.
type RequestFilter struct {
	OwnerID string
	Status  string
}

// IRequestRepository abstracts DynamoDB persistence for DeliveryRequest.
//
// Not-found reads return a zero-value entity and a nil error. Save is a
// compare-and-swap on the revision counter: the write applies only when the
// stored revision equals the revision carried by the entity, and the
// persisted copy comes back with the counter bumped.
type IRequestRepository interface {
	Create(ctx context.Context, r entities.DeliveryRequest) (entities.DeliveryRequest, error)
	GetByID(ctx context.Context, id string) (entities.DeliveryRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]entities.DeliveryRequest, error)
	Save(ctx context.Context, r entities.DeliveryRequest) (entities.DeliveryRequest, error)
	Delete(ctx context.Context, id string) (bool, error)
}
