package proyeccion

import (
	"context"

	"github.com/jhoicas/costeo-multimarca/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La proyección copia el escenario y todos
// sus hijos de forma atómica: o queda completo o no queda nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		escenarioRepo repository.EscenarioRepository,
		registroRepo repository.RegistroRepository,
	) error) error
}
