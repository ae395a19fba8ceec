package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

var _ Store = (*FileStore)(nil)

// FileStore almacén sobre un directorio local: un fichero por clave.
// Las escrituras son atómicas (fichero temporal + rename) para que un corte
// a mitad de escritura no corrompa el blob anterior. No es seguro con varios
// escritores sobre el mismo directorio; el despliegue previsto es un único
// proceso de usuario.
type FileStore struct {
	root string
}

// NewFileStore construye el almacén en root, creando el directorio si hace falta.
func NewFileStore(root string) (*FileStore, error) {
	if root == "" {
		root = "./data"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStore{root: root}, nil
}

// fileFor mapea la clave a un nombre de fichero seguro dentro de root.
// Las claves llevan el prefijo de espacio de nombres con ':' y nunca deben
// escapar del directorio.
func (s *FileStore) fileFor(key string) string {
	safe := strings.NewReplacer(":", "_", "/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.root, safe+".json")
}

// Get devuelve el blob o ErrKeyNotFound.
func (s *FileStore) Get(key string) (string, error) {
	data, err := os.ReadFile(s.fileFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("read %q: %w", key, err)
	}
	return string(data), nil
}

// Set escribe el blob de forma atómica. Un disco lleno se reporta como
// ErrQuotaExceeded para que el adaptador lo distinga del resto de fallos.
func (s *FileStore) Set(key, value string) error {
	path := s.fileFor(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		_ = os.Remove(tmp)
		if isQuotaErr(err) {
			return ErrQuotaExceeded
		}
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("commit %q: %w", key, err)
	}
	return nil
}

// Delete elimina la clave (idempotente).
func (s *FileStore) Delete(key string) error {
	if err := os.Remove(s.fileFor(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Close no mantiene descriptores abiertos; existe para cumplir Store.
func (s *FileStore) Close() error { return nil }

func isQuotaErr(err error) bool {
	return errors.Is(err, syscall.ENOSPC) || errors.Is(err, syscall.EDQUOT)
}
