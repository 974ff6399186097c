package entity

import "time"

// Periodos de un escenario.
const (
	PeriodoPlan     = "plan"
	PeriodoSugerido = "sugerido"
	PeriodoReal     = "real"
)

// Escenario es una fotografía nombrada de todos los datos de costo y ventas
// de un año. El motor nunca lo muta en sitio: proyectar o duplicar crea un
// escenario nuevo con copias de todos los registros hijos.
type Escenario struct {
	ID        string
	Nombre    string
	Anio      int
	Periodo   string // plan, sugerido, real
	Activo    bool
	OrigenID  string // escenario del que fue proyectado o duplicado; vacío si es raíz
	CreatedAt time.Time
	UpdatedAt time.Time
}
