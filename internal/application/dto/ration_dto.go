package dto

import "time"

// CreateRationRequest cuerpo del alta de una ración. El valor en raciones lo
// calcula el servidor; no se acepta del cliente.
type CreateRationRequest struct {
	Name                string   `json:"name"`
	Type                string   `json:"type"`
	GramsToCarbohydrate float64  `json:"gramsToCarbohydrate"`
	BloodGlucoseIndex   *float64 `json:"bloodGlucoseIndex,omitempty"`
	Weight              float64  `json:"weight"`
}

// RationResponse representación HTTP de una ración.
type RationResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Type                string    `json:"type"`
	GramsToCarbohydrate float64   `json:"gramsToCarbohydrate"`
	BloodGlucoseIndex   *float64  `json:"bloodGlucoseIndex,omitempty"`
	Weight              float64   `json:"weight"`
	Rations             float64   `json:"rations"`
	CreatedAt           time.Time `json:"createdAt"`
}

// RationListResponse lista de raciones, más recientes primero.
type RationListResponse struct {
	Items []RationResponse `json:"items"`
	Total int              `json:"total"`
}
