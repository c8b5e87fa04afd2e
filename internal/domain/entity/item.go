package entity

import "github.com/shopspring/decimal"

// Kinds de ítem soportados. Cada kind vive en su propio repositorio (keyspaces disjuntos).
const (
	KindElectronic = "electronic"
	KindGrocery    = "grocery"
	KindRecord     = "record"
)

// View vista de solo lectura común a todas las variantes (presentación y reportes).
type View interface {
	ItemID() int
	ItemName() string
	ItemQuantity() int
	Kind() string
	String() string
}

// Item es el conjunto de capacidades que exige el repositorio genérico.
// WithQuantity devuelve una copia con la cantidad reemplazada; es la única vía de mutación
// y solo la usa el repositorio.
type Item[T any] interface {
	View
	WithQuantity(quantity int) T
}

// Priced lo implementan las variantes con precio unitario (para valorización de stock).
type Priced interface {
	ItemUnitPrice() decimal.Decimal
}
