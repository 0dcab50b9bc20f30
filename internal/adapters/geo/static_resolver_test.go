package geo

import (
	"testing"

	"freight-carbon-service/internal/domain"
	"freight-carbon-service/internal/refdata"
)

func TestStaticResolverKnownCity(t *testing.T) {
	resolver := NewStaticResolver(refdata.DefaultLocations())

	coord, ok := resolver.Resolve(domain.Location{Country: "Japan", City: "Tokyo"})
	if !ok {
		t.Fatal("Tokyo did not resolve")
	}
	if coord.Lat != 35.6762 || coord.Lon != 139.6503 {
		t.Fatalf("coordinate = %v, want (35.6762, 139.6503)", coord)
	}
}

func TestStaticResolverUnknownCity(t *testing.T) {
	resolver := NewStaticResolver(refdata.DefaultLocations())

	coord, ok := resolver.Resolve(domain.Location{Country: "Japan", City: "Osaka"})
	if ok {
		t.Fatal("Osaka resolved unexpectedly")
	}
	if !coord.IsZero() {
		t.Fatalf("unresolved coordinate = %v, want zero sentinel", coord)
	}
}
