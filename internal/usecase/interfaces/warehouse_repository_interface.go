package interfaces

import (
	"context"

	"burrow/internal/domain/entities"
)

// IWarehouseRepository abstracts DynamoDB persistence for Warehouse. The
// core reads warehouses; Create and Count exist only for the startup seed.
type IWarehouseRepository interface {
	Create(ctx context.Context, w entities.Warehouse) (entities.Warehouse, error)
	GetByID(ctx context.Context, id string) (entities.Warehouse, error)
	ListActive(ctx context.Context) ([]entities.Warehouse, error)
	Count(ctx context.Context) (int, error)
}
