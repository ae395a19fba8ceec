package entity

// DefaultCatalog devuelve el catálogo estático de alimentos empaquetado con la
// aplicación. Se construye una sola vez en el arranque y se inyecta en el
// repositorio de catálogo; nunca se persiste ni se muta.
//
// GramsToCarbohydrate: gramos de alimento que aportan 10g de HC (unidad base
// del cálculo de raciones). BloodGlucoseIndex: índice glucémico cuando hay un
// valor de referencia publicado.
func DefaultCatalog() []CatalogAliment {
	return []CatalogAliment{
		// Lácteos
		{Name: "Leche entera", GramsToCarbohydrate: 200, BloodGlucoseIndex: gi(39), Type: TypeLacteal},
		{Name: "Leche desnatada", GramsToCarbohydrate: 200, BloodGlucoseIndex: gi(37), Type: TypeLacteal},
		{Name: "Yogur natural", GramsToCarbohydrate: 250, BloodGlucoseIndex: gi(35), Type: TypeLacteal},
		{Name: "Queso fresco", GramsToCarbohydrate: 250, Type: TypeLacteal},

		// Cereales, harinas, legumbres y tubérculos
		{Name: "Pan blanco", GramsToCarbohydrate: 20, BloodGlucoseIndex: gi(75), Type: TypeCereals},
		{Name: "Pan integral", GramsToCarbohydrate: 25, BloodGlucoseIndex: gi(53), Type: TypeCereals},
		{Name: "Arroz hervido", GramsToCarbohydrate: 40, BloodGlucoseIndex: gi(73), Type: TypeCereals},
		{Name: "Pasta cocida", GramsToCarbohydrate: 50, BloodGlucoseIndex: gi(49), Type: TypeCereals},
		{Name: "Patata cocida", GramsToCarbohydrate: 70, BloodGlucoseIndex: gi(78), Type: TypeCereals},
		{Name: "Lentejas cocidas", GramsToCarbohydrate: 60, BloodGlucoseIndex: gi(32), Type: TypeCereals},
		{Name: "Garbanzos cocidos", GramsToCarbohydrate: 60, BloodGlucoseIndex: gi(28), Type: TypeCereals},
		{Name: "Harina de trigo", GramsToCarbohydrate: 14, BloodGlucoseIndex: gi(85), Type: TypeCereals},

		// Frutas
		{Name: "Manzana", GramsToCarbohydrate: 80, BloodGlucoseIndex: gi(36), Type: TypeFruits},
		{Name: "Plátano", GramsToCarbohydrate: 50, BloodGlucoseIndex: gi(51), Type: TypeFruits},
		{Name: "Naranja", GramsToCarbohydrate: 100, BloodGlucoseIndex: gi(43), Type: TypeFruits},
		{Name: "Pera", GramsToCarbohydrate: 90, BloodGlucoseIndex: gi(38), Type: TypeFruits},
		{Name: "Uvas", GramsToCarbohydrate: 60, BloodGlucoseIndex: gi(59), Type: TypeFruits},
		{Name: "Sandía", GramsToCarbohydrate: 150, BloodGlucoseIndex: gi(76), Type: TypeFruits},
		{Name: "Fresas", GramsToCarbohydrate: 150, BloodGlucoseIndex: gi(40), Type: TypeFruits},

		// Hortalizas
		{Name: "Zanahoria", GramsToCarbohydrate: 130, BloodGlucoseIndex: gi(39), Type: TypeVegetal},
		{Name: "Tomate", GramsToCarbohydrate: 250, BloodGlucoseIndex: gi(30), Type: TypeVegetal},
		{Name: "Calabacín", GramsToCarbohydrate: 300, BloodGlucoseIndex: gi(15), Type: TypeVegetal},
		{Name: "Guisantes", GramsToCarbohydrate: 100, BloodGlucoseIndex: gi(51), Type: TypeVegetal},

		// Frutas secas y grasa
		{Name: "Almendras", GramsToCarbohydrate: 180, BloodGlucoseIndex: gi(15), Type: TypeOilyFrut},
		{Name: "Nueces", GramsToCarbohydrate: 250, BloodGlucoseIndex: gi(15), Type: TypeOilyFrut},
		{Name: "Pasas", GramsToCarbohydrate: 15, BloodGlucoseIndex: gi(64), Type: TypeOilyFrut},

		// Bebidas
		{Name: "Zumo de naranja", GramsToCarbohydrate: 100, BloodGlucoseIndex: gi(50), Type: TypeDrinks},
		{Name: "Refresco de cola", GramsToCarbohydrate: 95, BloodGlucoseIndex: gi(63), Type: TypeDrinks},

		// Otros
		{Name: "Azúcar", GramsToCarbohydrate: 10, BloodGlucoseIndex: gi(100), Type: TypeOthers},
		{Name: "Miel", GramsToCarbohydrate: 13, BloodGlucoseIndex: gi(61), Type: TypeOthers},
		{Name: "Chocolate con leche", GramsToCarbohydrate: 18, BloodGlucoseIndex: gi(43), Type: TypeOthers},
	}
}

func gi(v float64) *float64 { return &v }
