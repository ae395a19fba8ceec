package localstore_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rations-api/internal/domain"
	"github.com/jhoicas/rations-api/internal/domain/entity"
	"github.com/jhoicas/rations-api/internal/infrastructure/localstore"
	"github.com/jhoicas/rations-api/internal/infrastructure/storage"
)

func newRationRepo(t *testing.T) *localstore.RationRepo {
	t.Helper()
	adapter := storage.NewAdapterWithLogger(storage.NewMemoryStore(), zerolog.Nop())
	return localstore.NewRationRepository(adapter)
}

func riceRation() entity.CreateRation {
	return entity.CreateRation{
		Type:                entity.TypeCereals,
		Name:                "Arroz blanco",
		GramsToCarbohydrate: 13,
		BloodGlucoseIndex:   f64(70),
		Weight:              65,
	}
}

func TestRationSave_CalculaRaciones(t *testing.T) {
	repo := newRationRepo(t)

	saved, err := repo.Save(riceRation())
	require.NoError(t, err)

	assert.Len(t, saved.ID, 36)
	assert.Equal(t, "Arroz blanco", saved.Name)
	assert.Equal(t, 65.0, saved.Weight)
	// (65 / 13) * 10 = 50.
	assert.InDelta(t, 50.0, saved.Rations, 1e-9)
	assert.False(t, saved.CreatedAt.IsZero())

	found, err := repo.FindByID(saved.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.InDelta(t, saved.Rations, found.Rations, 1e-9)
}

func TestRationSave_PesoInvalido(t *testing.T) {
	repo := newRationRepo(t)

	dto := riceRation()
	dto.Weight = 0
	_, err := repo.Save(dto)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "weight", vErr.Field)
	assert.Equal(t, domain.MsgWeightPositive, vErr.Message)
}

func TestRationFindAll_OrdenDescendente(t *testing.T) {
	repo := newRationRepo(t)
	for _, name := range []string{"Desayuno", "Comida", "Cena"} {
		dto := riceRation()
		dto.Name = name
		_, err := repo.Save(dto)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Cena", all[0].Name)
	assert.Equal(t, "Desayuno", all[2].Name)
}

func TestRationDelete(t *testing.T) {
	repo := newRationRepo(t)
	saved, err := repo.Save(riceRation())
	require.NoError(t, err)

	deleted, err := repo.Delete("missing")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.Delete(saved.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := repo.FindByID(saved.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

// Con el medio caído: las escrituras fallan con un error explícito y las
// lecturas degradan a lista vacía.
func TestRation_MedioNoDisponible(t *testing.T) {
	store := &flakyStore{Store: storage.NewMemoryStore(), failSets: true}
	repo := localstore.NewRationRepository(storage.NewAdapterWithLogger(store, zerolog.Nop()))

	_, err := repo.Save(riceRation())
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = repo.Delete("cualquiera")
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}
