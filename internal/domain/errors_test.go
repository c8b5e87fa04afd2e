package domain_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-core/internal/domain"
)

func TestRepositoryError_UnwrapYMensaje(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind error
		msg  string
	}{
		{"duplicado", domain.DuplicateKey(domain.OpAdd, 1), domain.ErrDuplicateKey, "add: el ítem con ID 1 ya existe"},
		{"no encontrado", domain.NotFound(domain.OpRemove, 99), domain.ErrNotFound, "remove: ítem con ID 99 no encontrado"},
		{"cantidad", domain.InvalidQuantity(domain.OpUpdateQuantity, 1, -10), domain.ErrInvalidQuantity, "update_quantity: cantidad -10 no permitida para el ítem 1 (no puede ser negativa)"},
		{"desborde", domain.QuantityOverflow(domain.OpAdjust, 1, 5, math.MaxInt), domain.ErrInvalidQuantity, fmt.Sprintf("adjust: sumar %d a la cantidad 5 del ítem 1 excede el máximo permitido", math.MaxInt)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errors.Is(tc.err, tc.kind))
			assert.Equal(t, tc.msg, tc.err.Error())
		})
	}
}

func TestAsRepositoryError_AtraviesaWrapping(t *testing.T) {
	wrapped := fmt.Errorf("increase stock: %w", domain.NotFound(domain.OpGet, 7))

	re, ok := domain.AsRepositoryError(wrapped)
	require.True(t, ok)
	assert.Equal(t, domain.OpGet, re.Op)
	assert.Equal(t, 7, re.ID)
	assert.ErrorIs(t, wrapped, domain.ErrNotFound)

	_, ok = domain.AsRepositoryError(errors.New("otro"))
	assert.False(t, ok)
}
