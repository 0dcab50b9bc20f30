package domain

// TransportMode enumerates the supported freight transport modes.
// Each mode is bound to a fixed emission factor in the reference data.
type TransportMode string

const (
	ModeTruck TransportMode = "Truck"
	ModeTrain TransportMode = "Train"
	ModeShip  TransportMode = "Ship"
	ModePlane TransportMode = "Plane"
)

// TransportModes lists every supported mode in declaration order.
func TransportModes() []TransportMode {
	return []TransportMode{ModeTruck, ModeTrain, ModeShip, ModePlane}
}

// ParseTransportMode validates mode membership. Unknown strings are
// rejected here rather than silently coerced to a default factor.
func ParseTransportMode(s string) (TransportMode, bool) {
	switch TransportMode(s) {
	case ModeTruck, ModeTrain, ModeShip, ModePlane:
		return TransportMode(s), true
	}
	return "", false
}
