// Package localstore implementa los repositorios de escritura sobre el
// almacén local de clave/valor, a través del storage.Adapter. Cada colección
// vive entera bajo una única clave como array JSON: toda mutación es un
// leer-modificar-escribir de la colección completa. O(n) por operación y sin
// seguridad frente a escritores concurrentes; el despliegue previsto es un
// único usuario local con volúmenes pequeños.
package localstore

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/rations-api/internal/domain"
	"github.com/jhoicas/rations-api/internal/domain/entity"
	"github.com/jhoicas/rations-api/internal/domain/repository"
	"github.com/jhoicas/rations-api/internal/infrastructure/storage"
)

const customAlimentsKey = "custom-aliments"

var _ repository.CustomAlimentRepository = (*CustomAlimentRepo)(nil)

// CustomAlimentRepo CRUD de alimentos personalizados sobre el Adapter.
type CustomAlimentRepo struct {
	adapter *storage.Adapter
}

// NewCustomAlimentRepository construye el repositorio sobre el adaptador dado.
func NewCustomAlimentRepository(adapter *storage.Adapter) *CustomAlimentRepo {
	return &CustomAlimentRepo{adapter: adapter}
}

// Save valida el DTO, genera ID y createdAt, y persiste la colección entera.
// Si la escritura no se confirma, el registro no queda guardado y el estado
// persistido previo no cambia.
func (r *CustomAlimentRepo) Save(dto entity.CreateCustomAliment) (*entity.CustomAliment, error) {
	if err := domain.ValidateCreateCustomAliment(dto).Err(); err != nil {
		return nil, err
	}

	aliment := entity.CustomAliment{
		CatalogAliment: entity.CatalogAliment{
			Name:                strings.TrimSpace(dto.Name),
			GramsToCarbohydrate: dto.GramsToCarbohydrate,
			BloodGlucoseIndex:   dto.BloodGlucoseIndex,
			Type:                dto.Type,
		},
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		IsCustom:  true,
	}

	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	all = append(all, aliment)

	if !storage.SetItem(r.adapter, customAlimentsKey, all) {
		return nil, domain.ErrStorageFull
	}
	return &aliment, nil
}

// FindAll lee la colección cruda (vacía si la clave no existe o el blob está
// corrupto), con los timestamps ya reconstruidos como time.Time por el
// decodificador JSON, y la devuelve ordenada por createdAt descendente.
// El orden es total y estable: los empates conservan el orden de inserción.
func (r *CustomAlimentRepo) FindAll() ([]entity.CustomAliment, error) {
	stored, ok := storage.GetItem[[]entity.CustomAliment](r.adapter, customAlimentsKey)
	if !ok || stored == nil {
		return []entity.CustomAliment{}, nil
	}
	sort.SliceStable(stored, func(i, j int) bool {
		return stored[i].CreatedAt.After(stored[j].CreatedAt)
	})
	return stored, nil
}

// FindByID barrido lineal sobre FindAll; nil si no existe.
func (r *CustomAlimentRepo) FindByID(id string) (*entity.CustomAliment, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

// FindByType filtra por igualdad exacta de categoría, orden preservado.
func (r *CustomAlimentRepo) FindByType(t entity.AlimentType) ([]entity.CustomAliment, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]entity.CustomAliment, 0)
	for _, a := range all {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out, nil
}

// Search subcadena en el nombre sin distinguir mayúsculas; la consulta en
// blanco devuelve todo (mismo contrato que el catálogo).
func (r *CustomAlimentRepo) Search(query string) ([]entity.CustomAliment, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}
	out := make([]entity.CustomAliment, 0)
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Name), q) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Update fusiona solo los campos presentes del DTO sobre una copia del
// registro, fija updatedAt y reescribe la colección completa. createdAt y el
// ID nunca cambian.
func (r *CustomAlimentRepo) Update(dto entity.UpdateCustomAliment) (*entity.CustomAliment, error) {
	if err := domain.ValidateUpdateCustomAliment(dto).Err(); err != nil {
		return nil, err
	}

	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	index := -1
	for i := range all {
		if all[i].ID == dto.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, domain.ErrCustomAlimentNotFound
	}

	updated := all[index]
	if dto.Name != nil {
		updated.Name = strings.TrimSpace(*dto.Name)
	}
	if dto.Type != nil {
		updated.Type = *dto.Type
	}
	if dto.GramsToCarbohydrate != nil {
		updated.GramsToCarbohydrate = *dto.GramsToCarbohydrate
	}
	if dto.BloodGlucoseIndex != nil {
		updated.BloodGlucoseIndex = dto.BloodGlucoseIndex
	}
	now := time.Now()
	updated.UpdatedAt = &now
	all[index] = updated

	if !storage.SetItem(r.adapter, customAlimentsKey, all) {
		return nil, domain.ErrStorageFull
	}
	return &updated, nil
}

// Delete filtra el registro por ID y reescribe la colección. Si nada se
// eliminó devuelve (false, nil), no un error; un fallo al persistir sí
// aflora como error para no fingir un borrado que no se confirmó.
func (r *CustomAlimentRepo) Delete(id string) (bool, error) {
	all, err := r.FindAll()
	if err != nil {
		return false, err
	}
	filtered := make([]entity.CustomAliment, 0, len(all))
	for _, a := range all {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) == len(all) {
		return false, nil
	}
	if !storage.SetItem(r.adapter, customAlimentsKey, filtered) {
		return false, domain.ErrStorageFull
	}
	return true, nil
}

// Count longitud de la colección.
func (r *CustomAlimentRepo) Count() (int, error) {
	all, err := r.FindAll()
	if err != nil {
		return 0, err
	}
	return len(all), nil
}
