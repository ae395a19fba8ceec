package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Los mensajes de validación están en inglés porque forman parte del contrato
// de la capa de presentación (se muestran tal cual en los formularios).
var (
	ErrCustomAlimentNotFound = errors.New("custom aliment not found")
	ErrRationNotFound        = errors.New("ration not found")
	ErrStorageFull           = errors.New("storage full or write failed")
	ErrStorageUnavailable    = errors.New("local storage is not available")
	ErrInvalidAlimentType    = errors.New("invalid aliment type")
)

// ValidationError señala la primera regla de validación violada en un
// create/update. Nunca se aplica parcialmente: si la validación falla,
// ningún registro se escribe.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError construye el error a partir del primer campo fallido
// de un ValidationResult.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
