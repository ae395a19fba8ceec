// Package storage implementa el medio de persistencia local de la aplicación:
// un almacén plano de blobs indexados por clave de texto, más un adaptador con
// espacio de nombres y (de)serialización JSON por encima.
//
// El Adapter es el único punto de contacto con el medio; las capas superiores
// tratan sus retornos booleanos/cero —no pánicos ni errores— como señal de fallo.
package storage

import "errors"

// Errores del medio de almacenamiento.
var (
	// ErrKeyNotFound la clave no existe en el almacén.
	ErrKeyNotFound = errors.New("storage: key not found")
	// ErrQuotaExceeded la escritura no cabe en el medio (disco lleno, cuota).
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
)

// Store almacén plano clave→blob. Es la pieza intercambiable del medio:
// memoria para tests, un directorio de ficheros o una tabla SQLite.
type Store interface {
	// Get devuelve el blob o ErrKeyNotFound.
	Get(key string) (string, error)
	// Set escribe el blob; ErrQuotaExceeded si el medio está lleno.
	Set(key, value string) error
	// Delete elimina la clave. Borrar una clave inexistente no es error.
	Delete(key string) error
	// Close libera recursos del medio.
	Close() error
}
