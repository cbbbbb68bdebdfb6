package entities

import "time"

// Coordinates is a [latitude, longitude] pair, kept in the wire order the
// dashboards' map layer expects.
type Coordinates [2]float64

// Warehouse is an intermediate storage hub parcels are redirected to. The
// core consumes it read-only: requests reference a warehouse id at creation
// and dashboards display its name and address.
type Warehouse struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Address        string      `json:"address"`
	Coordinates    Coordinates `json:"coordinates"`
	Capacity       int         `json:"capacity"`
	OperatingHours string      `json:"operatingHours"`
	IsActive       bool        `json:"isActive"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}
