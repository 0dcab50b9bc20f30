package domain

import "fmt"

// Immutable geographic coordinate in decimal degrees (WGS84).
// The zero value (0, 0) is reserved as the sentinel for an unresolved
// location and never represents a real shipment endpoint.
type Coordinate struct {
	Lat float64
	Lon float64
}

// IsZero reports whether the coordinate is the unresolved sentinel.
func (c Coordinate) IsZero() bool { return c.Lat == 0 && c.Lon == 0 }

// Validate checks the coordinate against the WGS84 value ranges.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("validate coordinate: latitude %v out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("validate coordinate: longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}
