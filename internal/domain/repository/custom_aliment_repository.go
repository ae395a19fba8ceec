package repository

import "github.com/jhoicas/rations-api/internal/domain/entity"

// CustomAlimentRepository puerto de persistencia CRUD para alimentos creados
// por el usuario (DIP). El repositorio es dueño de la generación de IDs, los
// timestamps y el orden de los resultados.
type CustomAlimentRepository interface {
	// Save valida el DTO, genera ID y createdAt, y persiste la colección
	// completa. Devuelve *domain.ValidationError si una regla falla y
	// domain.ErrStorageFull si la escritura no se confirma (en ese caso
	// nada queda guardado).
	Save(dto entity.CreateCustomAliment) (*entity.CustomAliment, error)
	// FindAll devuelve la colección ordenada por createdAt descendente
	// (los empates conservan el orden de inserción en el almacén). Una
	// clave ausente o corrupta produce lista vacía, no error.
	FindAll() ([]entity.CustomAliment, error)
	// FindByID devuelve el registro o nil si no existe.
	FindByID(id string) (*entity.CustomAliment, error)
	// FindByType filtra por categoría exacta, orden preservado.
	FindByType(t entity.AlimentType) ([]entity.CustomAliment, error)
	// Search subcadena en el nombre sin distinguir mayúsculas; consulta en
	// blanco devuelve todo (mismo contrato que el catálogo).
	Search(query string) ([]entity.CustomAliment, error)
	// Update fusiona solo los campos presentes del DTO, fija updatedAt y
	// reescribe la colección. domain.ErrCustomAlimentNotFound si el ID no
	// existe; domain.ErrStorageFull si la escritura falla.
	Update(dto entity.UpdateCustomAliment) (*entity.CustomAliment, error)
	// Delete elimina por ID. (false, nil) si no existía; error de
	// almacenamiento si el filtrado se aplicó pero la escritura falló.
	Delete(id string) (bool, error)
	// Count longitud de la colección.
	Count() (int, error)
}
