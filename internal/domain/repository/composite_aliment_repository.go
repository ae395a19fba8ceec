package repository

import (
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/rations-api/internal/domain/entity"
)

// CompositeAlimentRepository fachada de lectura que funde el catálogo y los
// alimentos personalizados en una vista unificada. Decisión de diseño: los
// datos creados por el usuario se muestran antes que los de referencia.
type CompositeAlimentRepository struct {
	catalog CatalogAlimentRepository
	custom  CustomAlimentRepository
}

// NewCompositeAlimentRepository construye la fachada sobre ambos puertos.
func NewCompositeAlimentRepository(catalog CatalogAlimentRepository, custom CustomAlimentRepository) *CompositeAlimentRepository {
	return &CompositeAlimentRepository{catalog: catalog, custom: custom}
}

// FindAll devuelve primero los personalizados (ya ordenados por fecha
// descendente) y después el catálogo ordenado alfabéticamente con colación
// española (las entradas del catálogo llevan tildes).
func (r *CompositeAlimentRepository) FindAll() ([]entity.Aliment, error) {
	custom, err := r.custom.FindAll()
	if err != nil {
		return nil, err
	}
	catalog := r.catalog.FindAll()
	sortCatalogByName(catalog)

	merged := make([]entity.Aliment, 0, len(custom)+len(catalog))
	for _, a := range custom {
		merged = append(merged, a)
	}
	for _, a := range catalog {
		merged = append(merged, a)
	}
	return merged, nil
}

// Search concatena los resultados personalizados (primero) con los del
// catálogo. Sin deduplicación por nombre ni ranking de relevancia.
func (r *CompositeAlimentRepository) Search(query string) ([]entity.Aliment, error) {
	custom, err := r.custom.Search(query)
	if err != nil {
		return nil, err
	}
	catalog := r.catalog.Search(query)

	merged := make([]entity.Aliment, 0, len(custom)+len(catalog))
	for _, a := range custom {
		merged = append(merged, a)
	}
	for _, a := range catalog {
		merged = append(merged, a)
	}
	return merged, nil
}

// FindByID delega solo en el repositorio de personalizados: las entradas del
// catálogo no tienen identificador y nunca pueden coincidir.
func (r *CompositeAlimentRepository) FindByID(id string) (*entity.CustomAliment, error) {
	return r.custom.FindByID(id)
}

// FindByType filtra ambas fuentes por categoría, personalizados primero.
func (r *CompositeAlimentRepository) FindByType(t entity.AlimentType) ([]entity.Aliment, error) {
	custom, err := r.custom.FindByType(t)
	if err != nil {
		return nil, err
	}
	catalog := r.catalog.FindByType(t)

	merged := make([]entity.Aliment, 0, len(custom)+len(catalog))
	for _, a := range custom {
		merged = append(merged, a)
	}
	for _, a := range catalog {
		merged = append(merged, a)
	}
	return merged, nil
}

// Count suma los conteos de ambas fuentes. Las dos lecturas son
// independientes y de solo lectura, así que se lanzan concurrentemente.
func (r *CompositeAlimentRepository) Count() (int, error) {
	var catalogCount, customCount int
	g := new(errgroup.Group)
	g.Go(func() error {
		catalogCount = r.catalog.Count()
		return nil
	})
	g.Go(func() error {
		n, err := r.custom.Count()
		customCount = n
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return catalogCount + customCount, nil
}

// IsCustom discrimina la variante para que la presentación pueda, por
// ejemplo, mostrar la insignia "Personalizado".
func (r *CompositeAlimentRepository) IsCustom(a entity.Aliment) bool {
	return entity.IsCustomAliment(a)
}

// sortCatalogByName ordena alfabéticamente con reglas de colación del
// español. El Collator mantiene estado interno, así que se crea uno por
// llamada en vez de compartirlo entre goroutines.
func sortCatalogByName(list []entity.CatalogAliment) {
	c := collate.New(language.Spanish)
	c.Sort(catalogByName(list))
}

type catalogByName []entity.CatalogAliment

func (s catalogByName) Len() int           { return len(s) }
func (s catalogByName) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s catalogByName) Bytes(i int) []byte { return []byte(s[i].Name) }
