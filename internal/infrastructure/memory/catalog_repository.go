// Package memory implementa el repositorio de catálogo sobre una lista
// inmutable en memoria, cargada una vez en el arranque.
package memory

import (
	"strings"

	"github.com/jhoicas/rations-api/internal/domain/entity"
	"github.com/jhoicas/rations-api/internal/domain/repository"
)

var _ repository.CatalogAlimentRepository = (*CatalogRepo)(nil)

// CatalogRepo acceso de solo lectura al catálogo estático. El estado se
// recibe por composición explícita en el constructor, nunca como global
// mutable; vive lo que vive el proceso y no tiene teardown.
type CatalogRepo struct {
	catalog []entity.CatalogAliment
}

// NewCatalogRepository construye el repositorio sobre la lista dada.
// El repositorio copia la lista para aislarse de mutaciones del llamador.
func NewCatalogRepository(catalog []entity.CatalogAliment) *CatalogRepo {
	own := make([]entity.CatalogAliment, len(catalog))
	copy(own, catalog)
	return &CatalogRepo{catalog: own}
}

// FindAll devuelve una copia defensiva del catálogo completo.
func (r *CatalogRepo) FindAll() []entity.CatalogAliment {
	out := make([]entity.CatalogAliment, len(r.catalog))
	copy(out, r.catalog)
	return out
}

// FindByType filtra por categoría preservando el orden original.
func (r *CatalogRepo) FindByType(t entity.AlimentType) []entity.CatalogAliment {
	out := make([]entity.CatalogAliment, 0)
	for _, a := range r.catalog {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

// Search subcadena en el nombre sin distinguir mayúsculas. La consulta en
// blanco se comporta como FindAll.
func (r *CatalogRepo) Search(query string) []entity.CatalogAliment {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.FindAll()
	}
	out := make([]entity.CatalogAliment, 0)
	for _, a := range r.catalog {
		if strings.Contains(strings.ToLower(a.Name), q) {
			out = append(out, a)
		}
	}
	return out
}

// FindByName primera coincidencia exacta, o nil (señal de ausencia, no error).
func (r *CatalogRepo) FindByName(name string) *entity.CatalogAliment {
	for _, a := range r.catalog {
		if a.Name == name {
			found := a
			return &found
		}
	}
	return nil
}

// Count número de entradas del catálogo.
func (r *CatalogRepo) Count() int {
	return len(r.catalog)
}
