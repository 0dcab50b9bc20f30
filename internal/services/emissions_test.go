package services

import (
	"errors"
	"testing"

	"freight-carbon-service/internal/domain"
	"freight-carbon-service/internal/refdata"
)

func TestCO2LondonParisTruck(t *testing.T) {
	factors := refdata.DefaultEmissionFactors()

	// 343.56 km * 1 t * 0.096 kg/km/t = 32.98176 -> 32.98
	got, err := CO2(343.56, 1, domain.ModeTruck, factors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 32.98 {
		t.Fatalf("co2 = %v kg, want 32.98", got)
	}
}

func TestCO2UnknownMode(t *testing.T) {
	factors := refdata.DefaultEmissionFactors()

	_, err := CO2(100, 1, domain.TransportMode("Hyperloop"), factors)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCO2RejectsBadInputs(t *testing.T) {
	factors := refdata.DefaultEmissionFactors()

	if _, err := CO2(-1, 1, domain.ModeTruck, factors); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative distance: err = %v, want ErrInvalidInput", err)
	}
	if _, err := CO2(100, 0, domain.ModeTruck, factors); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero weight: err = %v, want ErrInvalidInput", err)
	}
	if _, err := CO2(100, -2, domain.ModeTruck, factors); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative weight: err = %v, want ErrInvalidInput", err)
	}
}

func TestCO2MonotonicInDistance(t *testing.T) {
	factors := refdata.DefaultEmissionFactors()

	prev := -1.0
	for _, km := range []float64{100, 500, 1000, 5000, 12000} {
		got, err := CO2(km, 3, domain.ModeTrain, factors)
		if err != nil {
			t.Fatalf("unexpected error at %v km: %v", km, err)
		}
		if got <= prev {
			t.Fatalf("co2(%v km) = %v, want > %v", km, got, prev)
		}
		prev = got
	}
}

func TestCO2MonotonicInWeight(t *testing.T) {
	factors := refdata.DefaultEmissionFactors()

	prev := -1.0
	for _, tons := range []float64{0.5, 1, 2, 10, 50} {
		got, err := CO2(800, tons, domain.ModeShip, factors)
		if err != nil {
			t.Fatalf("unexpected error at %v t: %v", tons, err)
		}
		if got <= prev {
			t.Fatalf("co2(%v t) = %v, want > %v", tons, got, prev)
		}
		prev = got
	}
}

func TestCO2AllModes(t *testing.T) {
	factors := refdata.DefaultEmissionFactors()

	want := map[domain.TransportMode]float64{
		domain.ModeTruck: 96.0,  // 1000 * 1 * 0.096
		domain.ModeTrain: 28.0,  // 1000 * 1 * 0.028
		domain.ModeShip:  16.0,  // 1000 * 1 * 0.016
		domain.ModePlane: 602.0, // 1000 * 1 * 0.602
	}

	for mode, expect := range want {
		got, err := CO2(1000, 1, mode, factors)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", mode, err)
		}
		if got != expect {
			t.Errorf("%s: co2 = %v kg, want %v", mode, got, expect)
		}
	}
}
