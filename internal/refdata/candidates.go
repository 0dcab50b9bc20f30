package refdata

import "freight-carbon-service/internal/domain"

// RouteScope classifies a shipment by whether it crosses a country border.
type RouteScope string

const (
	ScopeIntercontinental RouteScope = "intercontinental"
	ScopeDomestic         RouteScope = "domestic"
)

// DistanceBand classifies a shipment distance. Domestic routes only use
// the short/long split; intercontinental routes use all three bands.
type DistanceBand string

const (
	BandShort  DistanceBand = "short"  // < 1000 km
	BandMedium DistanceBand = "medium" // 1000-4999 km
	BandLong   DistanceBand = "long"   // >= 5000 km
)

// One leg of a candidate strategy: a mode and its share of the total
// distance. Shares of a candidate always sum to 1.0.
type CandidateSegment struct {
	Mode  domain.TransportMode
	Share float64
}

// A hand-curated 1-or-2-segment mode split considered by the optimizer.
type Candidate struct {
	Segments []CandidateSegment
}

// CandidateTable holds the ordered candidate strategies per scope and
// band. Slice order is the tie-break order: on an exact CO₂ tie the
// first-enumerated candidate wins, so results stay reproducible.
// The table is policy reference data; changing it is a policy change,
// not a bug fix.
type CandidateTable map[RouteScope]map[DistanceBand][]Candidate

// DefaultCandidateTable returns the built-in mode-mix heuristics:
// long intercontinental hauls favor ship with a rail or road tail,
// short domestic hauls favor rail and road.
func DefaultCandidateTable() CandidateTable {
	return CandidateTable{
		ScopeIntercontinental: {
			BandLong: {
				{Segments: []CandidateSegment{{domain.ModeShip, 0.9}, {domain.ModeTrain, 0.1}}},
				{Segments: []CandidateSegment{{domain.ModeShip, 0.8}, {domain.ModeTruck, 0.2}}},
				{Segments: []CandidateSegment{{domain.ModePlane, 0.5}, {domain.ModeShip, 0.5}}},
			},
			BandMedium: {
				{Segments: []CandidateSegment{{domain.ModeShip, 0.7}, {domain.ModeTrain, 0.3}}},
				{Segments: []CandidateSegment{{domain.ModePlane, 0.4}, {domain.ModeTruck, 0.6}}},
				{Segments: []CandidateSegment{{domain.ModeShip, 0.6}, {domain.ModePlane, 0.4}}},
			},
			BandShort: {
				{Segments: []CandidateSegment{{domain.ModeTrain, 0.8}, {domain.ModeTruck, 0.2}}},
				{Segments: []CandidateSegment{{domain.ModeShip, 0.5}, {domain.ModeTruck, 0.5}}},
				{Segments: []CandidateSegment{{domain.ModePlane, 0.3}, {domain.ModeTruck, 0.7}}},
			},
		},
		ScopeDomestic: {
			BandShort: {
				{Segments: []CandidateSegment{{domain.ModeTrain, 0.9}, {domain.ModeTruck, 0.1}}},
				{Segments: []CandidateSegment{{domain.ModeTruck, 1.0}}},
				{Segments: []CandidateSegment{{domain.ModeTrain, 1.0}}},
			},
			BandLong: {
				{Segments: []CandidateSegment{{domain.ModeTrain, 0.7}, {domain.ModeTruck, 0.3}}},
				{Segments: []CandidateSegment{{domain.ModeTruck, 0.6}, {domain.ModeTrain, 0.4}}},
				{Segments: []CandidateSegment{{domain.ModePlane, 0.3}, {domain.ModeTruck, 0.7}}},
			},
		},
	}
}

// Candidates returns the ordered candidate list for a scope and band.
func (t CandidateTable) Candidates(scope RouteScope, band DistanceBand) []Candidate {
	bands, ok := t[scope]
	if !ok {
		return nil
	}
	return bands[band]
}
