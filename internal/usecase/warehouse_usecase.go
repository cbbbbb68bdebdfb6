package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"burrow/internal/domain/entities"
	"burrow/internal/usecase/interfaces"
)

var (
	ErrWarehouseNotFound  = errors.New("warehouse not found")
	ErrInvalidWarehouseID = errors.New("invalid warehouse id")
)

// IWarehouseUseCase exposes the read-only warehouse operations the
// dashboards use to pick a redirect destination.
type IWarehouseUseCase interface {
	ListActive(ctx context.Context) ([]entities.Warehouse, error)
	GetByID(ctx context.Context, id string) (entities.Warehouse, error)
	SeedDefaults(ctx context.Context) (int, error)
}

type WarehouseUseCase struct {
	repo interfaces.IWarehouseRepository
}

var _ IWarehouseUseCase = (*WarehouseUseCase)(nil)

func NewWarehouseUseCase(repo interfaces.IWarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// ListActive returns the active warehouses sorted by name. Never nil.
func (u *WarehouseUseCase) ListActive(ctx context.Context) ([]entities.Warehouse, error) {
	items, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	if items == nil {
		items = []entities.Warehouse{}
	}
	return items, nil
}

func (u *WarehouseUseCase) GetByID(ctx context.Context, id string) (entities.Warehouse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Warehouse{}, ErrInvalidWarehouseID
	}

	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Warehouse{}, err
	}
	if w.ID == "" {
		return entities.Warehouse{}, ErrWarehouseNotFound
	}
	return w, nil
}

// SeedDefaults inserts the default hub list when the table is empty, so a
// fresh environment can serve request creation right away. Returns how many
// warehouses were inserted.
func (u *WarehouseUseCase) SeedDefaults(ctx context.Context) (int, error) {
	count, err := u.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, w := range DefaultWarehouses() {
		if _, err := u.repo.Create(ctx, w); err != nil {
			if errors.Is(err, interfaces.ErrDuplicateID) {
				continue
			}
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
