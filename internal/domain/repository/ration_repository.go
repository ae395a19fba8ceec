package repository

import "github.com/jhoicas/rations-api/internal/domain/entity"

// RationRepository puerto de persistencia para raciones (entradas de consumo).
type RationRepository interface {
	// Save valida, genera ID y createdAt, calcula el valor en raciones y
	// persiste. domain.ErrStorageUnavailable si el medio no está disponible.
	Save(dto entity.CreateRation) (*entity.Ration, error)
	// FindAll todas las raciones, más recientes primero. Con el medio caído
	// degrada a lista vacía.
	FindAll() ([]entity.Ration, error)
	// FindByID devuelve la ración o nil si no existe.
	FindByID(id string) (*entity.Ration, error)
	// Delete elimina por ID; (false, nil) si no existía.
	Delete(id string) (bool, error)
}
