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

func f64(v float64) *float64 { return &v }

func str(s string) *string { return &s }

// flakyStore envoltorio que permite hacer fallar las escrituras a voluntad,
// para ejercitar los caminos de "escritura no confirmada".
type flakyStore struct {
	storage.Store
	failSets bool
}

func (s *flakyStore) Set(key, value string) error {
	if s.failSets {
		return storage.ErrQuotaExceeded
	}
	return s.Store.Set(key, value)
}

func newRepo(t *testing.T) *localstore.CustomAlimentRepo {
	t.Helper()
	adapter := storage.NewAdapterWithLogger(storage.NewMemoryStore(), zerolog.Nop())
	return localstore.NewCustomAlimentRepository(adapter)
}

func pearDTO() entity.CreateCustomAliment {
	return entity.CreateCustomAliment{
		Name:                " Pear ",
		Type:                entity.TypeFruits,
		GramsToCarbohydrate: 110,
		BloodGlucoseIndex:   f64(38),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Save
// ──────────────────────────────────────────────────────────────────────────────

func TestSave_EscenarioPera(t *testing.T) {
	repo := newRepo(t)

	before, err := repo.Count()
	require.NoError(t, err)

	start := time.Now()
	saved, err := repo.Save(pearDTO())
	require.NoError(t, err)

	assert.Equal(t, "Pear", saved.Name, "el nombre se recorta")
	assert.Equal(t, entity.TypeFruits, saved.Type)
	assert.Equal(t, 110.0, saved.GramsToCarbohydrate)
	require.NotNil(t, saved.BloodGlucoseIndex)
	assert.Equal(t, 38.0, *saved.BloodGlucoseIndex)
	assert.True(t, saved.IsCustom)
	assert.Len(t, saved.ID, 36, "identificador UUID de 36 caracteres")
	assert.False(t, saved.CreatedAt.Before(start))
	assert.Nil(t, saved.UpdatedAt, "updatedAt solo aparece tras una actualización")

	after, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}

// Ida y vuelta: lo guardado se recupera idéntico campo a campo, con los
// timestamps reconstruidos como time.Time de verdad.
func TestSave_IdaYVuelta(t *testing.T) {
	repo := newRepo(t)

	saved, err := repo.Save(pearDTO())
	require.NoError(t, err)

	found, err := repo.FindByID(saved.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, saved.Name, found.Name)
	assert.Equal(t, saved.Type, found.Type)
	assert.Equal(t, saved.GramsToCarbohydrate, found.GramsToCarbohydrate)
	require.NotNil(t, found.BloodGlucoseIndex)
	assert.Equal(t, *saved.BloodGlucoseIndex, *found.BloodGlucoseIndex)
	assert.True(t, found.IsCustom)
	assert.True(t, found.CreatedAt.Equal(saved.CreatedAt), "createdAt debe sobrevivir al viaje por JSON")
	assert.False(t, found.CreatedAt.IsZero())
	assert.Nil(t, found.UpdatedAt)
}

func TestSave_ValidacionNoPersisteNada(t *testing.T) {
	repo := newRepo(t)

	dto := pearDTO()
	dto.GramsToCarbohydrate = 0
	_, err := repo.Save(dto)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "gramsToCarbohydrate", vErr.Field)
	assert.Equal(t, domain.MsgGramsPositive, vErr.Message)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, n, "una validación fallida nunca se aplica parcialmente")
}

func TestSave_EscrituraFallida(t *testing.T) {
	store := &flakyStore{Store: storage.NewMemoryStore(), failSets: true}
	repo := localstore.NewCustomAlimentRepository(storage.NewAdapterWithLogger(store, zerolog.Nop()))

	_, err := repo.Save(pearDTO())
	assert.ErrorIs(t, err, domain.ErrStorageFull)

	store.failSets = false
	n, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, n, "el registro no cuenta como guardado si la escritura falló")
}

// ──────────────────────────────────────────────────────────────────────────────
// FindAll / lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestFindAll_OrdenDescendentePorFecha(t *testing.T) {
	repo := newRepo(t)

	names := []string{"Primero", "Segundo", "Tercero"}
	for _, name := range names {
		dto := pearDTO()
		dto.Name = name
		_, err := repo.Save(dto)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond) // separar createdAt
	}

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Tercero", all[0].Name, "el más reciente va primero")
	assert.Equal(t, "Segundo", all[1].Name)
	assert.Equal(t, "Primero", all[2].Name)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].CreatedAt.Before(all[i].CreatedAt), "orden no creciente de createdAt")
	}
}

func TestFindAll_ClaveAusenteOCorrupta(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := localstore.NewCustomAlimentRepository(storage.NewAdapterWithLogger(store, zerolog.Nop()))

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all, "clave ausente -> lista vacía")

	require.NoError(t, store.Set("rations-calculator:custom-aliments", "{no es un array"))
	all, err = repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all, "blob corrupto -> lista vacía, nunca error")
}

func TestFindByID_Ausente(t *testing.T) {
	repo := newRepo(t)
	found, err := repo.FindByID("00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindByType(t *testing.T) {
	repo := newRepo(t)

	fruit := pearDTO()
	_, err := repo.Save(fruit)
	require.NoError(t, err)

	drink := pearDTO()
	drink.Name = "Horchata"
	drink.Type = entity.TypeDrinks
	_, err = repo.Save(drink)
	require.NoError(t, err)

	drinks, err := repo.FindByType(entity.TypeDrinks)
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Horchata", drinks[0].Name)

	others, err := repo.FindByType(entity.TypeOthers)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestSearch(t *testing.T) {
	repo := newRepo(t)
	for _, name := range []string{"Pera conferencia", "Pera limonera", "Sandía"} {
		dto := pearDTO()
		dto.Name = name
		_, err := repo.Save(dto)
		require.NoError(t, err)
	}

	got, err := repo.Search("PERA")
	require.NoError(t, err)
	assert.Len(t, got, 2, "búsqueda por subcadena sin mayúsculas")

	got, err = repo.Search("")
	require.NoError(t, err)
	assert.Len(t, got, 3, "consulta en blanco devuelve todo")

	got, err = repo.Search("kiwi")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_FusionParcial(t *testing.T) {
	repo := newRepo(t)
	saved, err := repo.Save(pearDTO())
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	updated, err := repo.Update(entity.UpdateCustomAliment{
		ID:   saved.ID,
		Name: str("  Pera de agua  "),
	})
	require.NoError(t, err)

	assert.Equal(t, "Pera de agua", updated.Name, "el nombre se recorta al actualizar")
	// Todo lo demás intacto
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, saved.GramsToCarbohydrate, updated.GramsToCarbohydrate)
	assert.Equal(t, saved.Type, updated.Type)
	require.NotNil(t, updated.BloodGlucoseIndex)
	assert.Equal(t, *saved.BloodGlucoseIndex, *updated.BloodGlucoseIndex)
	assert.True(t, updated.CreatedAt.Equal(saved.CreatedAt), "createdAt es inmutable")
	require.NotNil(t, updated.UpdatedAt, "updatedAt presente tras actualizar")
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt), "updatedAt >= createdAt")

	// Y persiste: releer da lo mismo.
	found, err := repo.FindByID(saved.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Pera de agua", found.Name)
	require.NotNil(t, found.UpdatedAt)
}

func TestUpdate_NoEncontrado(t *testing.T) {
	repo := newRepo(t)
	_, err := repo.Update(entity.UpdateCustomAliment{ID: "missing", Name: str("x")})
	require.ErrorIs(t, err, domain.ErrCustomAlimentNotFound)
	assert.Equal(t, "custom aliment not found", domain.ErrCustomAlimentNotFound.Error())
}

func TestUpdate_SinCampos(t *testing.T) {
	repo := newRepo(t)
	saved, err := repo.Save(pearDTO())
	require.NoError(t, err)

	_, err = repo.Update(entity.UpdateCustomAliment{ID: saved.ID})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "general", vErr.Field)
	assert.Equal(t, domain.MsgUpdateNoFields, vErr.Message)
}

func TestUpdate_EscrituraFallidaNoAplica(t *testing.T) {
	store := &flakyStore{Store: storage.NewMemoryStore()}
	repo := localstore.NewCustomAlimentRepository(storage.NewAdapterWithLogger(store, zerolog.Nop()))

	saved, err := repo.Save(pearDTO())
	require.NoError(t, err)

	store.failSets = true
	_, err = repo.Update(entity.UpdateCustomAliment{ID: saved.ID, Name: str("Nuevo")})
	assert.ErrorIs(t, err, domain.ErrStorageFull)

	store.failSets = false
	found, err := repo.FindByID(saved.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Pear", found.Name, "el estado persistido previo no cambia")
	assert.Nil(t, found.UpdatedAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_Idempotente(t *testing.T) {
	repo := newRepo(t)
	saved, err := repo.Save(pearDTO())
	require.NoError(t, err)

	// Borrar un ID inexistente: false sin error y la colección intacta.
	deleted, err := repo.Delete("missing")
	require.NoError(t, err)
	assert.False(t, deleted)
	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Borrar el existente elimina exactamente uno.
	deleted, err = repo.Delete(saved.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := repo.FindByID(saved.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Repetir el borrado ya no encuentra nada.
	deleted, err = repo.Delete(saved.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDelete_EscrituraFallidaAflora(t *testing.T) {
	store := &flakyStore{Store: storage.NewMemoryStore()}
	repo := localstore.NewCustomAlimentRepository(storage.NewAdapterWithLogger(store, zerolog.Nop()))

	saved, err := repo.Save(pearDTO())
	require.NoError(t, err)

	store.failSets = true
	_, err = repo.Delete(saved.ID)
	assert.ErrorIs(t, err, domain.ErrStorageFull, "un borrado no confirmado no debe fingir éxito")

	store.failSets = false
	found, err := repo.FindByID(saved.ID)
	require.NoError(t, err)
	assert.NotNil(t, found, "el registro sigue ahí")
}
