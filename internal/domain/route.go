package domain

// One leg of a multi-modal route strategy: a transport mode carrying the
// shipment for a share of the total distance.
type RouteSegment struct {
	Mode       TransportMode
	DistanceKm float64
	Co2Kg      float64
}

// A candidate routing for a shipment: one or two segments whose distances
// sum to the shipment distance. TotalCo2Kg is the sum of segment CO₂,
// rounded to two decimals; segment values are kept unrounded.
type RouteStrategy struct {
	Segments   []RouteSegment
	TotalCo2Kg float64
}

// Output of the route optimizer paired with the caller-supplied baseline.
// SavingsKg = BaselineCo2Kg - BestStrategy.TotalCo2Kg; it may be negative
// when the declared baseline mode is cheaper than every enumerated split.
type OptimizationResult struct {
	BestStrategy  RouteStrategy
	BaselineCo2Kg float64
	SavingsKg     float64
}
