package dto

import "time"

type LocationRequest struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

type CalculateEmissionRequest struct {
	Source        LocationRequest `json:"source"`
	Destination   LocationRequest `json:"destination"`
	TransportMode string          `json:"transport_mode"`
	WeightTons    float64         `json:"weight_tons"`
}

type CalculateEmissionResponse struct {
	ID               string    `json:"id"`
	Source           string    `json:"source"`
	Destination      string    `json:"destination"`
	TransportMode    string    `json:"transport_mode"`
	DistanceKm       float64   `json:"distance_km"`
	DistanceFallback bool      `json:"distance_fallback"`
	Co2Kg            float64   `json:"co2_kg"`
	WeightTons       float64   `json:"weight_tons"`
	CreatedAt        time.Time `json:"created_at"`
}

type EmissionRecordResponse struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	Destination   string    `json:"destination"`
	TransportMode string    `json:"transport_mode"`
	DistanceKm    float64   `json:"distance_km"`
	Co2Kg         float64   `json:"co2_kg"`
	WeightTons    float64   `json:"weight_tons"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListEmissionsResponse struct {
	Emissions []EmissionRecordResponse `json:"emissions"`
}
