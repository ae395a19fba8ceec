package entity

import "time"

// Ration entrada de consumo creada por el usuario: un alimento con un peso
// concreto y su valor en raciones ya calculado.
type Ration struct {
	ID                  string      `json:"id"`
	Type                AlimentType `json:"type"`
	Name                string      `json:"name"`
	GramsToCarbohydrate float64     `json:"gramsToCarbohydrate"`
	BloodGlucoseIndex   *float64    `json:"bloodGlucoseIndex,omitempty"`
	// Weight peso de la porción en gramos (> 0).
	Weight float64 `json:"weight"`
	// Rations valor calculado: (weight / gramsToCarbohydrate) * 10.
	Rations   float64   `json:"rations"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateRation DTO de creación de una ración. Omite id y createdAt,
// que añade el repositorio.
type CreateRation struct {
	Type                AlimentType
	Name                string
	GramsToCarbohydrate float64
	BloodGlucoseIndex   *float64
	Weight              float64
}

// CalculateRations fórmula de raciones: 10g de HC equivalen a una ración.
func CalculateRations(weight, gramsToCarbohydrate float64) float64 {
	return weight / gramsToCarbohydrate * 10
}
