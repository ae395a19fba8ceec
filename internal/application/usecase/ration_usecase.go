package usecase

import (
	"github.com/jhoicas/rations-api/internal/application/dto"
	"github.com/jhoicas/rations-api/internal/domain"
	"github.com/jhoicas/rations-api/internal/domain/entity"
	"github.com/jhoicas/rations-api/internal/domain/repository"
)

// RationUseCase casos de uso del registro de raciones consumidas.
type RationUseCase struct {
	repo repository.RationRepository
}

// NewRationUseCase construye el caso de uso.
func NewRationUseCase(repo repository.RationRepository) *RationUseCase {
	return &RationUseCase{repo: repo}
}

// List raciones registradas, más recientes primero.
func (uc *RationUseCase) List() (*dto.RationListResponse, error) {
	all, err := uc.repo.FindAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RationResponse, 0, len(all))
	for i := range all {
		items = append(items, *toRationResponse(&all[i]))
	}
	return &dto.RationListResponse{Items: items, Total: len(items)}, nil
}

// Get obtiene una ración por ID; nil si no existe.
func (uc *RationUseCase) Get(id string) (*dto.RationResponse, error) {
	ration, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if ration == nil {
		return nil, nil
	}
	return toRationResponse(ration), nil
}

// Create registra una ración nueva; el valor en raciones lo calcula el
// repositorio a partir del peso.
func (uc *RationUseCase) Create(in dto.CreateRationRequest) (*dto.RationResponse, error) {
	t, ok := entity.ParseAlimentType(in.Type)
	if !ok {
		return nil, domain.ErrInvalidAlimentType
	}
	saved, err := uc.repo.Save(entity.CreateRation{
		Type:                t,
		Name:                in.Name,
		GramsToCarbohydrate: in.GramsToCarbohydrate,
		BloodGlucoseIndex:   in.BloodGlucoseIndex,
		Weight:              in.Weight,
	})
	if err != nil {
		return nil, err
	}
	return toRationResponse(saved), nil
}

// Delete elimina una ración; false si no existía.
func (uc *RationUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

func toRationResponse(r *entity.Ration) *dto.RationResponse {
	if r == nil {
		return nil
	}
	return &dto.RationResponse{
		ID:                  r.ID,
		Name:                r.Name,
		Type:                string(r.Type),
		GramsToCarbohydrate: r.GramsToCarbohydrate,
		BloodGlucoseIndex:   r.BloodGlucoseIndex,
		Weight:              r.Weight,
		Rations:             r.Rations,
		CreatedAt:           r.CreatedAt,
	}
}
