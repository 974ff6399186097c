package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
	"github.com/jhoicas/costeo-multimarca/internal/domain/repository"
)

var _ repository.EscenarioRepository = (*EscenarioRepo)(nil)

// EscenarioRepo implementación del puerto EscenarioRepository sobre
// PostgreSQL (usable con pool o tx).
type EscenarioRepo struct {
	q Querier
}

// NewEscenarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEscenarioRepository(q Querier) *EscenarioRepo {
	return &EscenarioRepo{q: q}
}

const escenarioCols = `id, nombre, anio, periodo, activo, origen_id, created_at, updated_at`

// GetActivo devuelve el escenario marcado activo, o nil si no hay.
func (r *EscenarioRepo) GetActivo() (*entity.Escenario, error) {
	query := `SELECT ` + escenarioCols + ` FROM escenarios WHERE activo = true LIMIT 1`
	return r.scanUno(r.q.QueryRow(context.Background(), query))
}

// GetByID obtiene un escenario por ID.
func (r *EscenarioRepo) GetByID(id string) (*entity.Escenario, error) {
	query := `SELECT ` + escenarioCols + ` FROM escenarios WHERE id = $1`
	return r.scanUno(r.q.QueryRow(context.Background(), query, id))
}

// Create persiste un escenario nuevo.
func (r *EscenarioRepo) Create(e *entity.Escenario) error {
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	query := `
		INSERT INTO escenarios (id, nombre, anio, periodo, activo, origen_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Nombre, e.Anio, e.Periodo, e.Activo, e.OrigenID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("escenario %s: ya existe", e.ID)
		}
		return fmt.Errorf("insert escenario: %w", err)
	}
	return nil
}

// ListByAnio lista los escenarios de un año.
func (r *EscenarioRepo) ListByAnio(anio int) ([]*entity.Escenario, error) {
	query := `SELECT ` + escenarioCols + ` FROM escenarios WHERE anio = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, anio)
	if err != nil {
		return nil, fmt.Errorf("list escenarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.Escenario
	for rows.Next() {
		e, err := scanEscenario(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EscenarioRepo) scanUno(row pgx.Row) (*entity.Escenario, error) {
	var e entity.Escenario
	var origen *string
	err := row.Scan(&e.ID, &e.Nombre, &e.Anio, &e.Periodo, &e.Activo, &origen, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get escenario: %w", err)
	}
	if origen != nil {
		e.OrigenID = *origen
	}
	return &e, nil
}

func scanEscenario(rows pgx.Rows) (*entity.Escenario, error) {
	var e entity.Escenario
	var origen *string
	if err := rows.Scan(&e.ID, &e.Nombre, &e.Anio, &e.Periodo, &e.Activo, &origen, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan escenario: %w", err)
	}
	if origen != nil {
		e.OrigenID = *origen
	}
	return &e, nil
}
