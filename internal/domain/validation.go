package domain

import (
	"strings"

	"github.com/jhoicas/rations-api/internal/domain/entity"
)

// Mensajes de validación (contrato con la capa de presentación).
const (
	MsgNameRequired   = "Name is required"
	MsgNameTooLong    = "Name must be 200 characters or less"
	MsgGramsPositive  = "Must be greater than 0"
	MsgGlucoseRange   = "Blood glucose index must be between 0-100"
	MsgUpdateNoFields = "At least one field must be provided for update"
	MsgWeightPositive = "Weight must be greater than 0"
)

const maxNameLength = 200

// ValidationResult resultado de una validación: errores por campo más el
// orden en que se detectaron, para que "el primer error" sea determinista
// (los mapas de Go no tienen orden de iteración).
type ValidationResult struct {
	Errors map[string]string
	order  []string
}

func newValidationResult() *ValidationResult {
	return &ValidationResult{Errors: map[string]string{}}
}

func (r *ValidationResult) add(field, message string) {
	if _, ok := r.Errors[field]; ok {
		return
	}
	r.Errors[field] = message
	r.order = append(r.order, field)
}

// Valid indica si no se detectó ningún error.
func (r *ValidationResult) Valid() bool { return len(r.Errors) == 0 }

// First devuelve el primer campo fallido y su mensaje.
func (r *ValidationResult) First() (field, message string) {
	if len(r.order) == 0 {
		return "", ""
	}
	return r.order[0], r.Errors[r.order[0]]
}

// Err convierte el resultado en *ValidationError con el primer error,
// o nil si la validación pasó. Funciones puras: ningún efecto secundario.
func (r *ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	field, message := r.First()
	return NewValidationError(field, message)
}

func validateName(r *ValidationResult, name string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		r.add("name", MsgNameRequired)
	} else if len([]rune(trimmed)) > maxNameLength {
		r.add("name", MsgNameTooLong)
	}
}

// ValidateCreateCustomAliment reglas de negocio del alta de un alimento
// personalizado. El tipo no se valida aquí: la enumeración es cerrada y se
// comprueba en el borde HTTP.
func ValidateCreateCustomAliment(dto entity.CreateCustomAliment) *ValidationResult {
	r := newValidationResult()
	validateName(r, dto.Name)
	if dto.GramsToCarbohydrate <= 0 {
		r.add("gramsToCarbohydrate", MsgGramsPositive)
	}
	if dto.BloodGlucoseIndex != nil {
		if *dto.BloodGlucoseIndex < 0 || *dto.BloodGlucoseIndex > 100 {
			r.add("bloodGlucoseIndex", MsgGlucoseRange)
		}
	}
	return r
}

// ValidateUpdateCustomAliment mismas reglas por campo, aplicadas solo a los
// campos presentes en la actualización parcial; exige al menos un campo.
func ValidateUpdateCustomAliment(dto entity.UpdateCustomAliment) *ValidationResult {
	r := newValidationResult()

	hasUpdates := dto.Name != nil || dto.Type != nil ||
		dto.GramsToCarbohydrate != nil || dto.BloodGlucoseIndex != nil
	if !hasUpdates {
		r.add("general", MsgUpdateNoFields)
	}

	if dto.Name != nil {
		validateName(r, *dto.Name)
	}
	if dto.GramsToCarbohydrate != nil && *dto.GramsToCarbohydrate <= 0 {
		r.add("gramsToCarbohydrate", MsgGramsPositive)
	}
	if dto.BloodGlucoseIndex != nil {
		if *dto.BloodGlucoseIndex < 0 || *dto.BloodGlucoseIndex > 100 {
			r.add("bloodGlucoseIndex", MsgGlucoseRange)
		}
	}
	return r
}

// ValidateCreateRation reglas del alta de una ración (nombre y gramos como en
// los alimentos, más el peso de la porción).
func ValidateCreateRation(dto entity.CreateRation) *ValidationResult {
	r := newValidationResult()
	validateName(r, dto.Name)
	if dto.GramsToCarbohydrate <= 0 {
		r.add("gramsToCarbohydrate", MsgGramsPositive)
	}
	if dto.BloodGlucoseIndex != nil {
		if *dto.BloodGlucoseIndex < 0 || *dto.BloodGlucoseIndex > 100 {
			r.add("bloodGlucoseIndex", MsgGlucoseRange)
		}
	}
	if dto.Weight <= 0 {
		r.add("weight", MsgWeightPositive)
	}
	return r
}
