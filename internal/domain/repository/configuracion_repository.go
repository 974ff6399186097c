package repository

import "github.com/jhoicas/costeo-multimarca/internal/domain/entity"

// FactoresRepository entrega los factores prestacionales por perfil.
type FactoresRepository interface {
	ListAll() ([]*entity.FactoresPrestacionales, error)
}

// ParametrosRepository entrega los parámetros macroeconómicos de un año.
// Año sin configurar devuelve (nil, nil).
type ParametrosRepository interface {
	GetByAnio(anio int) (*entity.ParametrosMacro, error)
}

// LejaniaRepository entrega la configuración de lejanías de un escenario y
// la matriz de desplazamientos.
type LejaniaRepository interface {
	GetConfiguracion(escenarioID string) (*entity.ConfiguracionLejania, error)
	ListDesplazamientos() ([]entity.Desplazamiento, error)
}
