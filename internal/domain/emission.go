package domain

import "time"

// A single persisted emission calculation for a point-to-point shipment.
// Records are created once per calculation request and never mutated;
// Source and Destination hold "City, Country" labels.
type Emission struct {
	ID            string
	Source        string
	Destination   string
	TransportMode TransportMode
	DistanceKm    float64
	Co2Kg         float64
	WeightTons    float64
	CreatedAt     time.Time
}
