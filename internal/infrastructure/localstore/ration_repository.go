package localstore

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/rations-api/internal/domain"
	"github.com/jhoicas/rations-api/internal/domain/entity"
	"github.com/jhoicas/rations-api/internal/domain/repository"
	"github.com/jhoicas/rations-api/internal/infrastructure/storage"
)

const rationsKey = "rations"

var _ repository.RationRepository = (*RationRepo)(nil)

// RationRepo CRUD de raciones sobre el Adapter, bajo la clave "rations".
// A diferencia del repositorio de alimentos, comprueba la disponibilidad del
// medio antes de escribir: una ración perdida es una entrada de consumo que
// el usuario cree registrada.
type RationRepo struct {
	adapter *storage.Adapter
}

// NewRationRepository construye el repositorio sobre el adaptador dado.
func NewRationRepository(adapter *storage.Adapter) *RationRepo {
	return &RationRepo{adapter: adapter}
}

// Save valida, genera ID y createdAt, calcula el valor en raciones y
// persiste la colección completa.
func (r *RationRepo) Save(dto entity.CreateRation) (*entity.Ration, error) {
	if !r.adapter.IsAvailable() {
		return nil, domain.ErrStorageUnavailable
	}
	if err := domain.ValidateCreateRation(dto).Err(); err != nil {
		return nil, err
	}

	ration := entity.Ration{
		ID:                  uuid.New().String(),
		Type:                dto.Type,
		Name:                strings.TrimSpace(dto.Name),
		GramsToCarbohydrate: dto.GramsToCarbohydrate,
		BloodGlucoseIndex:   dto.BloodGlucoseIndex,
		Weight:              dto.Weight,
		Rations:             entity.CalculateRations(dto.Weight, dto.GramsToCarbohydrate),
		CreatedAt:           time.Now(),
	}

	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	all = append(all, ration)

	if !storage.SetItem(r.adapter, rationsKey, all) {
		return nil, domain.ErrStorageFull
	}
	return &ration, nil
}

// FindAll raciones ordenadas por createdAt descendente. Con el medio caído
// degrada a lista vacía (se registra un aviso), nunca a error.
func (r *RationRepo) FindAll() ([]entity.Ration, error) {
	if !r.adapter.IsAvailable() {
		log.Warn().Msg("almacenamiento no disponible, devolviendo lista vacía de raciones")
		return []entity.Ration{}, nil
	}
	stored, ok := storage.GetItem[[]entity.Ration](r.adapter, rationsKey)
	if !ok || stored == nil {
		return []entity.Ration{}, nil
	}
	sort.SliceStable(stored, func(i, j int) bool {
		return stored[i].CreatedAt.After(stored[j].CreatedAt)
	})
	return stored, nil
}

// FindByID barrido lineal sobre FindAll; nil si no existe.
func (r *RationRepo) FindByID(id string) (*entity.Ration, error) {
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

// Delete filtra por ID y reescribe la colección; (false, nil) si no existía.
func (r *RationRepo) Delete(id string) (bool, error) {
	if !r.adapter.IsAvailable() {
		return false, domain.ErrStorageUnavailable
	}
	all, err := r.FindAll()
	if err != nil {
		return false, err
	}
	filtered := make([]entity.Ration, 0, len(all))
	for _, rt := range all {
		if rt.ID != id {
			filtered = append(filtered, rt)
		}
	}
	if len(filtered) == len(all) {
		return false, nil
	}
	if !storage.SetItem(r.adapter, rationsKey, filtered) {
		return false, domain.ErrStorageFull
	}
	return true, nil
}
