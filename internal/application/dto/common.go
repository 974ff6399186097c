package dto

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SimularRequest parámetros de una corrida de simulación. MarcaIDs vacío
// simula todas las marcas activas.
type SimularRequest struct {
	MarcaIDs []string `json:"marca_ids"`
}

// DuplicarRequest parámetros para duplicar un escenario al mismo año.
type DuplicarRequest struct {
	Nombre string `json:"nombre"`
}

// ProyectarRequest parámetros para proyectar un escenario a otro año.
type ProyectarRequest struct {
	Nombre      string `json:"nombre"`
	AnioDestino int    `json:"anio_destino"`
}

// EscenarioResponse es el escenario recién creado por duplicación o
// proyección.
type EscenarioResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Anio     int    `json:"anio"`
	Periodo  string `json:"periodo"`
	Activo   bool   `json:"activo"`
	OrigenID string `json:"origen_id"`
}
