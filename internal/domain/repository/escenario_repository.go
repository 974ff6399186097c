package repository

import "github.com/jhoicas/costeo-multimarca/internal/domain/entity"

// EscenarioRepository define el puerto de persistencia para Escenario.
type EscenarioRepository interface {
	GetActivo() (*entity.Escenario, error)
	GetByID(id string) (*entity.Escenario, error)
	Create(e *entity.Escenario) error
	ListByAnio(anio int) ([]*entity.Escenario, error)
}
