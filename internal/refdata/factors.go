package refdata

import "freight-carbon-service/internal/domain"

// EmissionFactors maps a transport mode to its emission factor in
// kg CO₂ per km per ton. Immutable reference data.
type EmissionFactors map[domain.TransportMode]float64

// DefaultEmissionFactors returns the DEFRA-based factor table.
func DefaultEmissionFactors() EmissionFactors {
	return EmissionFactors{
		domain.ModeTruck: 0.096, // HGV, diesel
		domain.ModeTrain: 0.028, // freight train
		domain.ModeShip:  0.016, // container ship
		domain.ModePlane: 0.602, // cargo plane
	}
}

// Factor returns the emission factor for a mode. Unknown modes return
// false; there is no silent default factor.
func (f EmissionFactors) Factor(mode domain.TransportMode) (float64, bool) {
	factor, ok := f[mode]
	return factor, ok
}
