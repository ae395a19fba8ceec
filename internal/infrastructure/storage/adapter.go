package storage

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// keyPrefix espacio de nombres fijo de todas las claves de la aplicación.
// Evita colisiones con datos ajenos que compartan el mismo medio.
const keyPrefix = "rations-calculator:"

// probeKey clave centinela usada por IsAvailable.
const probeKey = "__storage_test__"

// Adapter envoltorio seguro sobre un Store:
//   - sondeo de disponibilidad (medio deshabilitado, sin permisos, etc.)
//   - claves con espacio de nombres
//   - (de)serialización JSON tipada vía GetItem/SetItem
//   - detección de cuota agotada
//
// Nunca propaga pánicos ni errores hacia arriba: el fallo se señala con
// false/valor cero y queda registrado en el log.
type Adapter struct {
	store Store
	log   zerolog.Logger
}

// NewAdapter construye el adaptador sobre el medio dado. Usa el logger
// global de zerolog (redirigido por pkg/logger en el arranque).
func NewAdapter(store Store) *Adapter {
	return &Adapter{store: store, log: log.Logger}
}

// NewAdapterWithLogger variante con logger explícito (tests).
func NewAdapterWithLogger(store Store, logger zerolog.Logger) *Adapter {
	return &Adapter{store: store, log: logger}
}

// IsAvailable sondea el medio escribiendo y borrando una clave centinela.
// Devuelve false ante cualquier fallo, sin propagarlo.
func (a *Adapter) IsAvailable() bool {
	key := keyPrefix + probeKey
	if err := a.store.Set(key, probeKey); err != nil {
		return false
	}
	if err := a.store.Delete(key); err != nil {
		return false
	}
	return true
}

// RemoveItem borra la clave con el mejor esfuerzo; un fallo solo se registra.
func (a *Adapter) RemoveItem(key string) {
	if err := a.store.Delete(keyPrefix + key); err != nil {
		a.log.Error().Err(err).Str("key", key).Msg("storage removeItem falló")
	}
}

// GetItem lee y decodifica una clave. Devuelve (cero, false) si la clave no
// existe o el blob no decodifica; el error de decodificación se registra,
// nunca se propaga.
func GetItem[T any](a *Adapter, key string) (T, bool) {
	var zero T
	raw, err := a.store.Get(keyPrefix + key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			a.log.Error().Err(err).Str("key", key).Msg("storage getItem falló")
		}
		return zero, false
	}
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		a.log.Error().Err(err).Str("key", key).Msg("storage getItem: blob corrupto")
		return zero, false
	}
	return value, true
}

// SetItem codifica y escribe una clave. Devuelve false ante cualquier fallo,
// incluida la cuota agotada (que se registra con su propia traza).
func SetItem[T any](a *Adapter, key string, value T) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		a.log.Error().Err(err).Str("key", key).Msg("storage setItem: no serializable")
		return false
	}
	if err := a.store.Set(keyPrefix+key, string(raw)); err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			a.log.Error().Str("key", key).Msg("storage setItem: cuota agotada")
		} else {
			a.log.Error().Err(err).Str("key", key).Msg("storage setItem falló")
		}
		return false
	}
	return true
}
