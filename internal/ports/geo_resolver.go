package ports

import "freight-carbon-service/internal/domain"

// Port: a boundary for resolving a Location to a coordinate.
type GeoResolver interface {
	// Resolve returns the coordinate for a location, or false when the
	// location is unknown. Unresolved is an expected outcome, not an
	// error; the distance calculator handles it with a documented
	// fallback.
	Resolve(loc domain.Location) (domain.Coordinate, bool)
}
