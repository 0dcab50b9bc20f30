package domain

import "strings"

// A (country, city) pair identifying a shipment endpoint.
// Locations either resolve to a known Coordinate through a GeoResolver or
// are treated as unresolved; they carry no coordinate data themselves.
type Location struct {
	Country string
	City    string
}

// Label renders the location in the "City, Country" form used for
// persisted records and reports.
func (l Location) Label() string {
	return l.City + ", " + l.Country
}

// ParseLocationLabel parses a "City, Country" label back into a Location.
// Returns false when the label does not contain the separator.
func ParseLocationLabel(s string) (Location, bool) {
	city, country, ok := strings.Cut(s, ", ")
	if !ok {
		return Location{}, false
	}
	return Location{Country: country, City: city}, true
}
