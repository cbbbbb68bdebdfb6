package usecase

import (
	"time"

	"burrow/internal/domain/entities"
)

// DefaultWarehouses returns the six Burrow hubs a fresh deployment starts
// with. Ids are stable so re-seeding an existing environment is a no-op.
func DefaultWarehouses() []entities.Warehouse {
	now := time.Now().UTC()
	const hours = "9:00 AM - 7:00 PM"

	hubs := []entities.Warehouse{
		{ID: "1", Name: "Burrow Delhi Hub", Address: "Sector 18, Noida, Uttar Pradesh 201301", Coordinates: entities.Coordinates{28.5355, 77.3910}, Capacity: 1000},
		{ID: "2", Name: "Burrow Mumbai Central", Address: "Andheri East, Mumbai, Maharashtra 400069", Coordinates: entities.Coordinates{19.1136, 72.8697}, Capacity: 1200},
		{ID: "3", Name: "Burrow Bangalore Tech", Address: "Whitefield, Bangalore, Karnataka 560066", Coordinates: entities.Coordinates{12.9698, 77.7500}, Capacity: 800},
		{ID: "4", Name: "Burrow Chennai Port", Address: "OMR, Chennai, Tamil Nadu 600119", Coordinates: entities.Coordinates{12.8406, 80.1534}, Capacity: 900},
		{ID: "5", Name: "Burrow Kolkata East", Address: "Salt Lake, Kolkata, West Bengal 700091", Coordinates: entities.Coordinates{22.5726, 88.3639}, Capacity: 700},
		{ID: "6", Name: "Burrow Pune Hub", Address: "Hinjewadi, Pune, Maharashtra 411057", Coordinates: entities.Coordinates{18.5879, 73.7386}, Capacity: 600},
	}

	for i := range hubs {
		hubs[i].OperatingHours = hours
		hubs[i].IsActive = true
		hubs[i].CreatedAt = now
		hubs[i].UpdatedAt = now
	}
	return hubs
}
