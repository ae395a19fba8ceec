package entity

import (
	"strings"
	"time"
)

// AlimentType categoría cerrada de alimentos (7 valores, etiquetas en español).
// Cada categoría mapea a un color del sistema de diseño en la capa de presentación.
type AlimentType string

const (
	TypeLacteal  AlimentType = "lácteos"
	TypeCereals  AlimentType = "cereales, harinas, legumbres y tuberculos"
	TypeFruits   AlimentType = "frutas"
	TypeVegetal  AlimentType = "hortalizas"
	TypeOilyFrut AlimentType = "frutas secas y grasa"
	TypeDrinks   AlimentType = "bebidas"
	TypeOthers   AlimentType = "otros"
)

// AlimentTypes lista todas las categorías válidas, en orden estable.
func AlimentTypes() []AlimentType {
	return []AlimentType{
		TypeLacteal, TypeCereals, TypeFruits, TypeVegetal,
		TypeOilyFrut, TypeDrinks, TypeOthers,
	}
}

// Valid indica si el valor pertenece a la enumeración.
func (t AlimentType) Valid() bool {
	switch t {
	case TypeLacteal, TypeCereals, TypeFruits, TypeVegetal, TypeOilyFrut, TypeDrinks, TypeOthers:
		return true
	}
	return false
}

// ParseAlimentType valida una categoría recibida en el borde HTTP.
// La enumeración es cerrada: dentro del dominio nunca circula un tipo inválido.
func ParseAlimentType(s string) (AlimentType, bool) {
	t := AlimentType(strings.TrimSpace(s))
	if !t.Valid() {
		return "", false
	}
	return t, true
}

// Aliment es la unión etiquetada catálogo/personalizado. Interfaz sellada:
// solo CatalogAliment y CustomAliment la implementan, de modo que un
// type switch sobre ambas es exhaustivo.
type Aliment interface {
	sealedAliment()
	// AlimentName nombre visible del alimento (clave de identidad en el catálogo).
	AlimentName() string
}

// CatalogAliment entrada de solo lectura del catálogo estático.
// No tiene ID: su identidad es el nombre exacto dentro del catálogo.
type CatalogAliment struct {
	Name string `json:"name"`
	// GramsToCarbohydrate gramos de alimento que aportan 10g de hidratos de carbono.
	GramsToCarbohydrate float64 `json:"gramsToCarbohydrate"`
	// BloodGlucoseIndex índice glucémico opcional (0-100).
	BloodGlucoseIndex *float64    `json:"bloodGlucoseIndex,omitempty"`
	Type              AlimentType `json:"type"`
}

func (CatalogAliment) sealedAliment()        {}
func (a CatalogAliment) AlimentName() string { return a.Name }

// CustomAliment alimento creado por el usuario. Extiende los campos del
// catálogo con ID, timestamps y el discriminador de persistencia isCustom
// (siempre true en el formato de alambre; la variante del tipo ya lo implica).
type CustomAliment struct {
	CatalogAliment
	ID string `json:"id"`
	// CreatedAt se fija al crear y nunca se modifica.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt presente si y solo si el registro fue actualizado alguna vez.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	IsCustom  bool       `json:"isCustom"`
}

func (CustomAliment) sealedAliment() {}

// CreateCustomAliment DTO de creación. Omite los campos autogenerados
// (id, createdAt, isCustom, updatedAt), que añade el repositorio.
type CreateCustomAliment struct {
	Name                string
	Type                AlimentType
	GramsToCarbohydrate float64
	BloodGlucoseIndex   *float64
}

// UpdateCustomAliment DTO de actualización parcial. Todos los campos
// opcionales salvo el ID; nil significa "sin cambio".
type UpdateCustomAliment struct {
	ID                  string
	Name                *string
	Type                *AlimentType
	GramsToCarbohydrate *float64
	BloodGlucoseIndex   *float64
}

// IsCustomAliment discrimina la variante de la unión. El type switch es
// exhaustivo sobre la interfaz sellada.
func IsCustomAliment(a Aliment) bool {
	switch a.(type) {
	case CustomAliment:
		return true
	case CatalogAliment:
		return false
	}
	return false
}
