package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
	"github.com/jhoicas/costeo-multimarca/internal/domain/repository"
)

var _ repository.MarcaRepository = (*MarcaRepo)(nil)

// MarcaRepo implementación del puerto MarcaRepository sobre PostgreSQL.
// La tabla solo guarda la identidad de la marca; las cifras se calculan en
// cada corrida del simulador.
type MarcaRepo struct {
	q Querier
}

// NewMarcaRepository construye el adaptador.
func NewMarcaRepository(q Querier) *MarcaRepo {
	return &MarcaRepo{q: q}
}

// ListActivas lista las marcas activas ordenadas por nombre.
func (r *MarcaRepo) ListActivas() ([]*entity.Marca, error) {
	query := `SELECT id, nombre FROM marcas WHERE activa = true ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list marcas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Marca
	for rows.Next() {
		var m entity.Marca
		if err := rows.Scan(&m.ID, &m.Nombre); err != nil {
			return nil, fmt.Errorf("scan marca: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// GetByID obtiene una marca por ID, o nil si no existe.
func (r *MarcaRepo) GetByID(id string) (*entity.Marca, error) {
	query := `SELECT id, nombre FROM marcas WHERE id = $1 AND activa = true`
	var m entity.Marca
	err := r.q.QueryRow(context.Background(), query, id).Scan(&m.ID, &m.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get marca: %w", err)
	}
	return &m, nil
}
