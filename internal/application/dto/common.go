package dto

// ErrorResponse cuerpo de error HTTP.
// Params lleva el contexto de una precondición fallida (hu_id, product_id...);
// Fields los campos que no pasaron la validación con su regla.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Params  map[string]string `json:"params,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// HealthResponse salida de GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache,omitempty"`
}
