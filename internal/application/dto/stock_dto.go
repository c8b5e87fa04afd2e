package dto

import "github.com/shopspring/decimal"

// LoginRequest credenciales del operador.
type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras un login correcto.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // segundos
	Role      string `json:"role"`
}

// SetQuantityRequest fija la cantidad absoluta de un ítem.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// IncreaseStockRequest suma delta a la cantidad actual.
type IncreaseStockRequest struct {
	Delta *int `json:"delta"`
}

// SummaryResponse resumen de un shelf.
type SummaryResponse struct {
	Kind      string          `json:"kind"`
	Items     int             `json:"items"`
	Valuation decimal.Decimal `json:"valuation"`
}
