package repository

import "github.com/jhoicas/rations-api/internal/domain/entity"

// CatalogAlimentRepository puerto de lectura sobre el catálogo estático de
// alimentos. No tiene modos de fallo: "no encontrado" se señala con nil,
// nunca con error.
type CatalogAlimentRepository interface {
	// FindAll devuelve una copia de todo el catálogo.
	FindAll() []entity.CatalogAliment
	// FindByType filtra por categoría preservando el orden original.
	FindByType(t entity.AlimentType) []entity.CatalogAliment
	// Search busca por subcadena en el nombre, sin distinguir mayúsculas.
	// Una consulta en blanco equivale a FindAll.
	Search(query string) []entity.CatalogAliment
	// FindByName primera coincidencia exacta por nombre, o nil si no existe.
	FindByName(name string) *entity.CatalogAliment
	// Count número de entradas del catálogo.
	Count() int
}
