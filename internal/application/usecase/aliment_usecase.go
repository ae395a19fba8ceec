package usecase

import (
	"github.com/jhoicas/rations-api/internal/application/dto"
	"github.com/jhoicas/rations-api/internal/domain"
	"github.com/jhoicas/rations-api/internal/domain/entity"
	"github.com/jhoicas/rations-api/internal/domain/repository"
)

// AlimentUseCase casos de uso del navegador de alimentos: vista compuesta de
// lectura más el CRUD de alimentos personalizados.
type AlimentUseCase struct {
	composite *repository.CompositeAlimentRepository
	custom    repository.CustomAlimentRepository
}

// NewAlimentUseCase construye el caso de uso.
func NewAlimentUseCase(composite *repository.CompositeAlimentRepository, custom repository.CustomAlimentRepository) *AlimentUseCase {
	return &AlimentUseCase{composite: composite, custom: custom}
}

// List vista unificada: personalizados primero (más recientes arriba) y
// después el catálogo en orden alfabético.
func (uc *AlimentUseCase) List() (*dto.AlimentListResponse, error) {
	all, err := uc.composite.FindAll()
	if err != nil {
		return nil, err
	}
	return toAlimentListResponse(all), nil
}

// Search resultados personalizados seguidos de los del catálogo.
func (uc *AlimentUseCase) Search(query string) (*dto.AlimentListResponse, error) {
	all, err := uc.composite.Search(query)
	if err != nil {
		return nil, err
	}
	return toAlimentListResponse(all), nil
}

// ListByType filtra ambas fuentes por categoría. La categoría llega del borde
// HTTP, así que aquí sí se valida contra la enumeración.
func (uc *AlimentUseCase) ListByType(rawType string) (*dto.AlimentListResponse, error) {
	t, ok := entity.ParseAlimentType(rawType)
	if !ok {
		return nil, domain.ErrInvalidAlimentType
	}
	all, err := uc.composite.FindByType(t)
	if err != nil {
		return nil, err
	}
	return toAlimentListResponse(all), nil
}

// Get obtiene un alimento personalizado por ID; nil si no existe (las
// entradas del catálogo no tienen ID).
func (uc *AlimentUseCase) Get(id string) (*dto.CustomAlimentResponse, error) {
	aliment, err := uc.composite.FindByID(id)
	if err != nil {
		return nil, err
	}
	if aliment == nil {
		return nil, nil
	}
	return toCustomAlimentResponse(aliment), nil
}

// Count total combinado de ambas fuentes.
func (uc *AlimentUseCase) Count() (*dto.CountResponse, error) {
	n, err := uc.composite.Count()
	if err != nil {
		return nil, err
	}
	return &dto.CountResponse{Count: n}, nil
}

// Create da de alta un alimento personalizado.
func (uc *AlimentUseCase) Create(in dto.CreateCustomAlimentRequest) (*dto.CustomAlimentResponse, error) {
	t, ok := entity.ParseAlimentType(in.Type)
	if !ok {
		return nil, domain.ErrInvalidAlimentType
	}
	saved, err := uc.custom.Save(entity.CreateCustomAliment{
		Name:                in.Name,
		Type:                t,
		GramsToCarbohydrate: in.GramsToCarbohydrate,
		BloodGlucoseIndex:   in.BloodGlucoseIndex,
	})
	if err != nil {
		return nil, err
	}
	return toCustomAlimentResponse(saved), nil
}

// Update actualización parcial de un alimento personalizado.
func (uc *AlimentUseCase) Update(id string, in dto.UpdateCustomAlimentRequest) (*dto.CustomAlimentResponse, error) {
	upd := entity.UpdateCustomAliment{
		ID:                  id,
		Name:                in.Name,
		GramsToCarbohydrate: in.GramsToCarbohydrate,
		BloodGlucoseIndex:   in.BloodGlucoseIndex,
	}
	if in.Type != nil {
		t, ok := entity.ParseAlimentType(*in.Type)
		if !ok {
			return nil, domain.ErrInvalidAlimentType
		}
		upd.Type = &t
	}
	updated, err := uc.custom.Update(upd)
	if err != nil {
		return nil, err
	}
	return toCustomAlimentResponse(updated), nil
}

// Delete elimina un alimento personalizado; false si no existía.
func (uc *AlimentUseCase) Delete(id string) (bool, error) {
	return uc.custom.Delete(id)
}

func toCustomAlimentResponse(a *entity.CustomAliment) *dto.CustomAlimentResponse {
	if a == nil {
		return nil
	}
	return &dto.CustomAlimentResponse{
		ID:                  a.ID,
		Name:                a.Name,
		Type:                string(a.Type),
		GramsToCarbohydrate: a.GramsToCarbohydrate,
		BloodGlucoseIndex:   a.BloodGlucoseIndex,
		IsCustom:            true,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

// toAlimentListResponse aplana la unión catálogo/personalizado. El type
// switch es exhaustivo sobre la interfaz sellada entity.Aliment.
func toAlimentListResponse(list []entity.Aliment) *dto.AlimentListResponse {
	items := make([]dto.AlimentResponse, 0, len(list))
	for _, a := range list {
		switch v := a.(type) {
		case entity.CustomAliment:
			createdAt := v.CreatedAt
			items = append(items, dto.AlimentResponse{
				ID:                  v.ID,
				Name:                v.Name,
				Type:                string(v.Type),
				GramsToCarbohydrate: v.GramsToCarbohydrate,
				BloodGlucoseIndex:   v.BloodGlucoseIndex,
				IsCustom:            true,
				CreatedAt:           &createdAt,
				UpdatedAt:           v.UpdatedAt,
			})
		case entity.CatalogAliment:
			items = append(items, dto.AlimentResponse{
				Name:                v.Name,
				Type:                string(v.Type),
				GramsToCarbohydrate: v.GramsToCarbohydrate,
				BloodGlucoseIndex:   v.BloodGlucoseIndex,
				IsCustom:            false,
			})
		}
	}
	return &dto.AlimentListResponse{Items: items, Total: len(items)}
}
