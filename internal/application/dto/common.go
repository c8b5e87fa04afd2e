package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListResponse envoltorio de listados con el total devuelto.
type ListResponse[T any] struct {
	Kind  string `json:"kind"`
	Total int    `json:"total"`
	Items []T    `json:"items"`
}
