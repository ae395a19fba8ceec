package dto

import "time"

// CreateCustomAlimentRequest cuerpo del alta de un alimento personalizado.
type CreateCustomAlimentRequest struct {
	Name                string   `json:"name"`
	Type                string   `json:"type"`
	GramsToCarbohydrate float64  `json:"gramsToCarbohydrate"`
	BloodGlucoseIndex   *float64 `json:"bloodGlucoseIndex,omitempty"`
}

// UpdateCustomAlimentRequest cuerpo de la actualización parcial; los campos
// ausentes (nil) no se tocan.
type UpdateCustomAlimentRequest struct {
	Name                *string  `json:"name,omitempty"`
	Type                *string  `json:"type,omitempty"`
	GramsToCarbohydrate *float64 `json:"gramsToCarbohydrate,omitempty"`
	BloodGlucoseIndex   *float64 `json:"bloodGlucoseIndex,omitempty"`
}

// CustomAlimentResponse representación HTTP de un alimento personalizado.
type CustomAlimentResponse struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	GramsToCarbohydrate float64    `json:"gramsToCarbohydrate"`
	BloodGlucoseIndex   *float64   `json:"bloodGlucoseIndex,omitempty"`
	IsCustom            bool       `json:"isCustom"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
}

// AlimentResponse representación unificada catálogo/personalizado de la vista
// compuesta. Las entradas de catálogo no llevan id ni timestamps.
type AlimentResponse struct {
	ID                  string     `json:"id,omitempty"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	GramsToCarbohydrate float64    `json:"gramsToCarbohydrate"`
	BloodGlucoseIndex   *float64   `json:"bloodGlucoseIndex,omitempty"`
	IsCustom            bool       `json:"isCustom"`
	CreatedAt           *time.Time `json:"createdAt,omitempty"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
}

// AlimentListResponse lista unificada de alimentos.
type AlimentListResponse struct {
	Items []AlimentResponse `json:"items"`
	Total int               `json:"total"`
}
