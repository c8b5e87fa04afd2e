package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Los tres primeros son la taxonomía del repositorio de ítems: esperados y recuperables.
var (
	ErrDuplicateKey    = errors.New("clave duplicada")
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidQuantity = errors.New("cantidad inválida")

	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// Operaciones del repositorio que pueden originar un RepositoryError.
const (
	OpAdd            = "add"
	OpGet            = "get"
	OpRemove         = "remove"
	OpUpdateQuantity = "update_quantity"
	OpAdjust         = "adjust"
	OpReplace        = "replace"
)

// RepositoryError lleva el tipo de fallo, la operación y el id involucrado.
// Kind es siempre uno de ErrDuplicateKey, ErrNotFound o ErrInvalidQuantity.
type RepositoryError struct {
	Kind     error
	Op       string
	ID       int
	Quantity int // solo significativo cuando Kind == ErrInvalidQuantity
	Delta    int // distinto de cero solo si la suma Quantity+Delta desborda int
}

func (e *RepositoryError) Error() string {
	switch e.Kind {
	case ErrDuplicateKey:
		return fmt.Sprintf("%s: el ítem con ID %d ya existe", e.Op, e.ID)
	case ErrNotFound:
		return fmt.Sprintf("%s: ítem con ID %d no encontrado", e.Op, e.ID)
	case ErrInvalidQuantity:
		if e.Delta != 0 {
			return fmt.Sprintf("%s: sumar %d a la cantidad %d del ítem %d excede el máximo permitido", e.Op, e.Delta, e.Quantity, e.ID)
		}
		return fmt.Sprintf("%s: cantidad %d no permitida para el ítem %d (no puede ser negativa)", e.Op, e.Quantity, e.ID)
	}
	return fmt.Sprintf("%s: ítem %d: %v", e.Op, e.ID, e.Kind)
}

// Unwrap permite errors.Is(err, domain.ErrNotFound) y similares.
func (e *RepositoryError) Unwrap() error { return e.Kind }

// DuplicateKey construye el error de inserción con id repetido.
func DuplicateKey(op string, id int) error {
	return &RepositoryError{Kind: ErrDuplicateKey, Op: op, ID: id}
}

// NotFound construye el error de id inexistente.
func NotFound(op string, id int) error {
	return &RepositoryError{Kind: ErrNotFound, Op: op, ID: id}
}

// InvalidQuantity construye el error de cantidad negativa.
func InvalidQuantity(op string, id, quantity int) error {
	return &RepositoryError{Kind: ErrInvalidQuantity, Op: op, ID: id, Quantity: quantity}
}

// QuantityOverflow construye el error de una suma que excede el rango de int.
// Se clasifica como ErrInvalidQuantity; Quantity es la cantidad actual.
func QuantityOverflow(op string, id, current, delta int) error {
	return &RepositoryError{Kind: ErrInvalidQuantity, Op: op, ID: id, Quantity: current, Delta: delta}
}

// AsRepositoryError extrae el RepositoryError de una cadena de errores, si existe.
func AsRepositoryError(err error) (*RepositoryError, bool) {
	var re *RepositoryError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
