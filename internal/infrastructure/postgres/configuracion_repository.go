package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
	"github.com/jhoicas/costeo-multimarca/internal/domain/repository"
)

var (
	_ repository.FactoresRepository   = (*FactoresRepo)(nil)
	_ repository.ParametrosRepository = (*ParametrosRepo)(nil)
	_ repository.LejaniaRepository    = (*LejaniaRepo)(nil)
)

// FactoresRepo lee los factores prestacionales por perfil laboral.
type FactoresRepo struct {
	q Querier
}

// NewFactoresRepository construye el adaptador.
func NewFactoresRepository(q Querier) *FactoresRepo {
	return &FactoresRepo{q: q}
}

func (r *FactoresRepo) ListAll() ([]*entity.FactoresPrestacionales, error) {
	query := `
		SELECT perfil, salud, pension, arl, caja_compensacion, parafiscales,
			vacaciones, cesantias, intereses_cesantias, prima
		FROM factores_prestacionales ORDER BY perfil`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list factores: %w", err)
	}
	defer rows.Close()

	var list []*entity.FactoresPrestacionales
	for rows.Next() {
		var f entity.FactoresPrestacionales
		err := rows.Scan(&f.Perfil, &f.Salud, &f.Pension, &f.ARL, &f.CajaCompensacion,
			&f.Parafiscales, &f.Vacaciones, &f.Cesantias, &f.InteresesCesantias, &f.Prima)
		if err != nil {
			return nil, fmt.Errorf("scan factores: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// ParametrosRepo lee los parámetros macroeconómicos por año.
type ParametrosRepo struct {
	q Querier
}

// NewParametrosRepository construye el adaptador.
func NewParametrosRepository(q Querier) *ParametrosRepo {
	return &ParametrosRepo{q: q}
}

// GetByAnio devuelve los parámetros del año, o nil si el año no está
// configurado.
func (r *ParametrosRepo) GetByAnio(anio int) (*entity.ParametrosMacro, error) {
	query := `
		SELECT anio, smlv, subsidio_transporte, limite_subsidio_smlv,
			incremento_salarial, incremento_smlv, ipc, ipt,
			incremento_combustible, incremento_arriendo, personalizado_1, personalizado_2
		FROM parametros_macro WHERE anio = $1`
	var p entity.ParametrosMacro
	err := r.q.QueryRow(context.Background(), query, anio).Scan(
		&p.Anio, &p.SMLV, &p.SubsidioTransporte, &p.LimiteSubsidioSMLV,
		&p.IncrementoSalarial, &p.IncrementoSMLV, &p.IPC, &p.IPT,
		&p.IncrementoCombustible, &p.IncrementoArriendo, &p.Personalizado1, &p.Personalizado2,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parametros %d: %w", anio, err)
	}
	return &p, nil
}

// LejaniaRepo lee la configuración de lejanías de un escenario y la matriz
// de desplazamientos entre municipios.
type LejaniaRepo struct {
	q Querier
}

// NewLejaniaRepository construye el adaptador.
func NewLejaniaRepository(q Querier) *LejaniaRepo {
	return &LejaniaRepo{q: q}
}

const lejaniaCols = `escenario_id, precio_gasolina, precio_acpm, rendimientos,
	umbral_km, desayuno, almuerzo, cena, alojamiento`

// GetConfiguracion devuelve la configuración del escenario, o nil si no
// existe (la simulación degrada los costos de lejanía a cero).
func (r *LejaniaRepo) GetConfiguracion(escenarioID string) (*entity.ConfiguracionLejania, error) {
	query := `SELECT ` + lejaniaCols + ` FROM configs_lejania WHERE escenario_id = $1`
	c, err := scanConfigLejania(r.q.QueryRow(context.Background(), query, escenarioID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// ListDesplazamientos lee la matriz completa. La matriz es dispersa: los
// pares origen-destino ausentes significan distancia cero.
func (r *LejaniaRepo) ListDesplazamientos() ([]entity.Desplazamiento, error) {
	query := `SELECT origen, destino, distancia_km, tiempo_min, peajes FROM desplazamientos`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list desplazamientos: %w", err)
	}
	defer rows.Close()

	var list []entity.Desplazamiento
	for rows.Next() {
		var d entity.Desplazamiento
		if err := rows.Scan(&d.Origen, &d.Destino, &d.DistanciaKm, &d.TiempoMin, &d.Peajes); err != nil {
			return nil, fmt.Errorf("scan desplazamiento: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanConfigLejania(s scanner) (*entity.ConfiguracionLejania, error) {
	var c entity.ConfiguracionLejania
	var rendimientos []byte
	err := s.Scan(&c.EscenarioID, &c.PrecioGasolina, &c.PrecioACPM, &rendimientos,
		&c.UmbralKm, &c.Desayuno, &c.Almuerzo, &c.Cena, &c.Alojamiento)
	if err != nil {
		return nil, fmt.Errorf("scan config lejania: %w", err)
	}
	if len(rendimientos) > 0 {
		if err := json.Unmarshal(rendimientos, &c.RendimientoPorClase); err != nil {
			return nil, fmt.Errorf("rendimientos de %s: %w", c.EscenarioID, err)
		}
	}
	return &c, nil
}
