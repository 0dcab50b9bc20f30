package refdata

import (
	"sort"

	"freight-carbon-service/internal/domain"
)

// Locations maps country -> city -> coordinate.
// Built once at startup and treated as immutable for the process lifetime.
type Locations map[string]map[string]domain.Coordinate

// DefaultLocations returns the built-in city coordinate table.
func DefaultLocations() Locations {
	return Locations{
		"United Kingdom": {
			"London": {Lat: 51.5074, Lon: -0.1278},
		},
		"France": {
			"Paris": {Lat: 48.8566, Lon: 2.3522},
		},
		"USA": {
			"New York": {Lat: 40.7128, Lon: -74.0060},
		},
		"China": {
			"Shanghai": {Lat: 31.2304, Lon: 121.4737},
		},
		"Japan": {
			"Tokyo": {Lat: 35.6762, Lon: 139.6503},
		},
		"Australia": {
			"Sydney": {Lat: -33.8688, Lon: 151.2093},
		},
	}
}

// Coordinate looks up a (country, city) pair. The second return value is
// false for unknown pairs; callers treat that as an unresolved location,
// not a failure.
func (l Locations) Coordinate(loc domain.Location) (domain.Coordinate, bool) {
	cities, ok := l[loc.Country]
	if !ok {
		return domain.Coordinate{}, false
	}
	coord, ok := cities[loc.City]
	return coord, ok
}

// FirstCity returns the lexicographically first city of a country.
// Sorting keeps the choice deterministic regardless of map iteration order.
func (l Locations) FirstCity(country string) (string, bool) {
	cities, ok := l[country]
	if !ok || len(cities) == 0 {
		return "", false
	}
	names := make([]string, 0, len(cities))
	for name := range cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names[0], true
}

// Countries returns the known country names in sorted order.
func (l Locations) Countries() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
