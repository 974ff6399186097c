package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
	"github.com/jhoicas/costeo-multimarca/internal/domain/repository"
)

var (
	_ repository.ComercialRepository        = (*ComercialRepo)(nil)
	_ repository.LogisticaRepository        = (*LogisticaRepo)(nil)
	_ repository.AdministrativoRepository   = (*AdministrativoRepo)(nil)
	_ repository.ProyeccionVentasRepository = (*ProyeccionVentasRepo)(nil)
)

// ComercialRepo entrega los datos comerciales de una marca: vendedores,
// zonas y configuración de descuentos.
type ComercialRepo struct {
	q Querier
}

// NewComercialRepository construye el adaptador.
func NewComercialRepository(q Querier) *ComercialRepo {
	return &ComercialRepo{q: q}
}

func (r *ComercialRepo) ListPersonal(escenarioID, marcaID string) ([]*entity.RegistroPersonal, error) {
	query := `SELECT ` + personalCols + ` FROM registros_personal
		WHERE escenario_id = $1 AND marca_id = $2 AND categoria = $3 ORDER BY cargo`
	return listarPersonal(r.q, query, escenarioID, marcaID, entity.CategoriaComercial)
}

func (r *ComercialRepo) ListZonas(escenarioID, marcaID string) ([]*entity.ZonaComercial, error) {
	query := `SELECT ` + zonaCols + ` FROM zonas_comerciales
		WHERE escenario_id = $1 AND marca_id = $2 ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, escenarioID, marcaID)
	if err != nil {
		return nil, fmt.Errorf("list zonas: %w", err)
	}
	defer rows.Close()

	var list []*entity.ZonaComercial
	for rows.Next() {
		z, err := scanZona(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, z)
	}
	return list, rows.Err()
}

func (r *ComercialRepo) GetConfigDescuentos(escenarioID, marcaID string) (*entity.ConfigDescuentos, error) {
	query := `SELECT ` + descuentoCols + ` FROM configs_descuento
		WHERE escenario_id = $1 AND marca_id = $2`
	c, err := scanConfigDescuentos(r.q.QueryRow(context.Background(), query, escenarioID, marcaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// LogisticaRepo entrega los datos logísticos de una marca: flota, personal
// de bodega y reparto, gastos y rutas.
type LogisticaRepo struct {
	q Querier
}

// NewLogisticaRepository construye el adaptador.
func NewLogisticaRepository(q Querier) *LogisticaRepo {
	return &LogisticaRepo{q: q}
}

func (r *LogisticaRepo) ListVehiculos(escenarioID, marcaID string) ([]*entity.RegistroVehiculo, error) {
	query := `SELECT ` + vehiculoCols + ` FROM registros_vehiculo
		WHERE escenario_id = $1 AND (marca_id = $2 OR (compartido AND marca_id IS NULL))
		ORDER BY tipo_vehiculo`
	rows, err := r.q.Query(context.Background(), query, escenarioID, marcaID)
	if err != nil {
		return nil, fmt.Errorf("list vehiculos: %w", err)
	}
	defer rows.Close()

	var list []*entity.RegistroVehiculo
	for rows.Next() {
		v, err := scanVehiculo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r *LogisticaRepo) ListPersonal(escenarioID, marcaID string) ([]*entity.RegistroPersonal, error) {
	query := `SELECT ` + personalCols + ` FROM registros_personal
		WHERE escenario_id = $1 AND categoria = $3
		AND (marca_id = $2 OR (compartido AND marca_id IS NULL))
		ORDER BY cargo`
	return listarPersonal(r.q, query, escenarioID, marcaID, entity.CategoriaLogistica)
}

func (r *LogisticaRepo) ListGastos(escenarioID, marcaID string) ([]*entity.RegistroGasto, error) {
	query := `SELECT ` + gastoCols + ` FROM registros_gasto
		WHERE escenario_id = $1 AND categoria = $3
		AND (marca_id = $2 OR (compartido AND marca_id IS NULL))
		ORDER BY nombre`
	return listarGastos(r.q, query, escenarioID, marcaID, entity.CategoriaLogistica)
}

func (r *LogisticaRepo) ListRutas(escenarioID, marcaID string) ([]*entity.RutaLogistica, error) {
	query := `SELECT ` + rutaCols + ` FROM rutas_logisticas
		WHERE escenario_id = $1 AND marca_id = $2 ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, escenarioID, marcaID)
	if err != nil {
		return nil, fmt.Errorf("list rutas: %w", err)
	}
	defer rows.Close()

	var list []*entity.RutaLogistica
	for rows.Next() {
		ruta, err := scanRuta(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, ruta)
	}
	return list, rows.Err()
}

// AdministrativoRepo entrega los registros administrativos, que no
// pertenecen a ninguna marca y siempre se prorratean.
type AdministrativoRepo struct {
	q Querier
}

// NewAdministrativoRepository construye el adaptador.
func NewAdministrativoRepository(q Querier) *AdministrativoRepo {
	return &AdministrativoRepo{q: q}
}

func (r *AdministrativoRepo) ListPersonalCompartido(escenarioID string) ([]*entity.RegistroPersonal, error) {
	query := `SELECT ` + personalCols + ` FROM registros_personal
		WHERE escenario_id = $1 AND categoria = $2 AND marca_id IS NULL ORDER BY cargo`
	return listarPersonal(r.q, query, escenarioID, entity.CategoriaAdministrativa)
}

func (r *AdministrativoRepo) ListGastosCompartidos(escenarioID string) ([]*entity.RegistroGasto, error) {
	query := `SELECT ` + gastoCols + ` FROM registros_gasto
		WHERE escenario_id = $1 AND categoria = $2 AND marca_id IS NULL ORDER BY nombre`
	return listarGastos(r.q, query, escenarioID, entity.CategoriaAdministrativa)
}

// ProyeccionVentasRepo entrega las cifras mensuales proyectadas por marca.
type ProyeccionVentasRepo struct {
	q Querier
}

// NewProyeccionVentasRepository construye el adaptador.
func NewProyeccionVentasRepository(q Querier) *ProyeccionVentasRepo {
	return &ProyeccionVentasRepo{q: q}
}

func (r *ProyeccionVentasRepo) GetByMarca(escenarioID, marcaID string) (*entity.ProyeccionVentas, error) {
	query := `SELECT ` + proyeccionCols + ` FROM proyecciones_ventas
		WHERE escenario_id = $1 AND marca_id = $2`
	p, err := scanProyeccion(r.q.QueryRow(context.Background(), query, escenarioID, marcaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func listarPersonal(q Querier, query string, args ...any) ([]*entity.RegistroPersonal, error) {
	rows, err := q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list personal: %w", err)
	}
	defer rows.Close()

	var list []*entity.RegistroPersonal
	for rows.Next() {
		p, err := scanPersonal(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func listarGastos(q Querier, query string, args ...any) ([]*entity.RegistroGasto, error) {
	rows, err := q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()

	var list []*entity.RegistroGasto
	for rows.Next() {
		g, err := scanGasto(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, g)
	}
	return list, rows.Err()
}
