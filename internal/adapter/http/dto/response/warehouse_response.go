package response

import (
	"time"

	"burrow/internal/domain/entities"
)

type WarehouseResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	Coordinates    [2]float64 `json:"coordinates"`
	Capacity       int        `json:"capacity"`
	OperatingHours string     `json:"operatingHours"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func FromWarehouse(w entities.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:             w.ID,
		Name:           w.Name,
		Address:        w.Address,
		Coordinates:    [2]float64(w.Coordinates),
		Capacity:       w.Capacity,
		OperatingHours: w.OperatingHours,
		IsActive:       w.IsActive,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func FromWarehouses(items []entities.Warehouse) []WarehouseResponse {
	out := make([]WarehouseResponse, 0, len(items))
	for _, w := range items {
		out = append(out, FromWarehouse(w))
	}
	return out
}
