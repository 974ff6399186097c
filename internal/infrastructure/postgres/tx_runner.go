package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/costeo-multimarca/internal/application/proyeccion"
	"github.com/jhoicas/costeo-multimarca/internal/domain/repository"
)

// Ensure TxRunner implements proyeccion.TxRunner.
var _ proyeccion.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// La proyección de escenarios lo usa para que la copia del escenario y de
// todos sus registros hijos sea atómica.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	escenarioRepo repository.EscenarioRepository,
	registroRepo repository.RegistroRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	escenarioRepo := NewEscenarioRepository(tx)
	registroRepo := NewRegistroRepository(tx)

	if err := fn(escenarioRepo, registroRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
