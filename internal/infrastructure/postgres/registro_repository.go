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

var _ repository.RegistroRepository = (*RegistroRepo)(nil)

// RegistroRepo lee y escribe los registros hijos de un escenario completo.
// Lo usa la proyección de escenarios; se construye sobre Querier para poder
// atarse a la transacción del TxRunner.
type RegistroRepo struct {
	q Querier
}

// NewRegistroRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRegistroRepository(q Querier) *RegistroRepo {
	return &RegistroRepo{q: q}
}

func (r *RegistroRepo) ListPersonal(escenarioID string) ([]*entity.RegistroPersonal, error) {
	query := `SELECT ` + personalCols + ` FROM registros_personal WHERE escenario_id = $1 ORDER BY id`
	return listarPersonal(r.q, query, escenarioID)
}

func (r *RegistroRepo) ListVehiculos(escenarioID string) ([]*entity.RegistroVehiculo, error) {
	query := `SELECT ` + vehiculoCols + ` FROM registros_vehiculo WHERE escenario_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, escenarioID)
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

func (r *RegistroRepo) ListGastos(escenarioID string) ([]*entity.RegistroGasto, error) {
	query := `SELECT ` + gastoCols + ` FROM registros_gasto WHERE escenario_id = $1 ORDER BY id`
	return listarGastos(r.q, query, escenarioID)
}

func (r *RegistroRepo) ListZonas(escenarioID string) ([]*entity.ZonaComercial, error) {
	query := `SELECT ` + zonaCols + ` FROM zonas_comerciales WHERE escenario_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, escenarioID)
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

func (r *RegistroRepo) ListRutas(escenarioID string) ([]*entity.RutaLogistica, error) {
	query := `SELECT ` + rutaCols + ` FROM rutas_logisticas WHERE escenario_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, escenarioID)
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

func (r *RegistroRepo) ListProyecciones(escenarioID string) ([]*entity.ProyeccionVentas, error) {
	query := `SELECT ` + proyeccionCols + ` FROM proyecciones_ventas WHERE escenario_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, escenarioID)
	if err != nil {
		return nil, fmt.Errorf("list proyecciones: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProyeccionVentas
	for rows.Next() {
		p, err := scanProyeccion(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *RegistroRepo) ListConfigDescuentos(escenarioID string) ([]*entity.ConfigDescuentos, error) {
	query := `SELECT ` + descuentoCols + ` FROM configs_descuento WHERE escenario_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, escenarioID)
	if err != nil {
		return nil, fmt.Errorf("list configs descuento: %w", err)
	}
	defer rows.Close()

	var list []*entity.ConfigDescuentos
	for rows.Next() {
		c, err := scanConfigDescuentos(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *RegistroRepo) GetConfigLejania(escenarioID string) (*entity.ConfiguracionLejania, error) {
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

func (r *RegistroRepo) CreatePersonal(p *entity.RegistroPersonal) error {
	porcentajes, err := marshalJSONB(p.PorcentajesUso)
	if err != nil {
		return fmt.Errorf("porcentajes_uso de %s: %w", p.ID, err)
	}
	query := `
		INSERT INTO registros_personal (` + personalCols + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(context.Background(), query,
		p.ID, p.EscenarioID, p.MarcaID, p.Cargo, p.Perfil, p.Categoria,
		p.SalarioBase, p.Extras, p.Cantidad, p.AplicaSubsidio, p.Compartido,
		string(p.Criterio), porcentajes, string(p.Indice),
	)
	if err != nil {
		return fmt.Errorf("insert registro personal: %w", err)
	}
	return nil
}

func (r *RegistroRepo) CreateVehiculo(v *entity.RegistroVehiculo) error {
	query := `
		INSERT INTO registros_vehiculo (` + vehiculoCols + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.EscenarioID, v.MarcaID, v.TipoVehiculo, v.Esquema, v.Cantidad,
		v.Canon, v.Combustible, v.Lavado, v.Surtido,
		v.PrecioCompra, v.ValorResidual, v.VidaUtilAnios,
		v.Mantenimiento, v.Seguros, v.Impuestos, v.TarifaMensual,
		v.Compartido, string(v.Criterio), string(v.Indice),
	)
	if err != nil {
		return fmt.Errorf("insert registro vehiculo: %w", err)
	}
	return nil
}

func (r *RegistroRepo) CreateGasto(g *entity.RegistroGasto) error {
	porcentajes, err := marshalJSONB(g.PorcentajesUso)
	if err != nil {
		return fmt.Errorf("porcentajes_uso de %s: %w", g.ID, err)
	}
	query := `
		INSERT INTO registros_gasto (` + gastoCols + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		g.ID, g.EscenarioID, g.MarcaID, g.Nombre, g.Categoria,
		g.ValorUnitario, g.Cantidad, g.Compartido, string(g.Criterio),
		porcentajes, string(g.Indice),
	)
	if err != nil {
		return fmt.Errorf("insert registro gasto: %w", err)
	}
	return nil
}

func (r *RegistroRepo) CreateZona(z *entity.ZonaComercial) error {
	destinos, err := marshalJSONB(z.Destinos)
	if err != nil {
		return fmt.Errorf("destinos de %s: %w", z.ID, err)
	}
	query := `
		INSERT INTO zonas_comerciales (` + zonaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		z.ID, z.EscenarioID, z.MarcaID, z.Nombre, z.MunicipioVendedor,
		destinos, z.RequierePernocte, z.Noches, z.ViajesMes,
	)
	if err != nil {
		return fmt.Errorf("insert zona: %w", err)
	}
	return nil
}

func (r *RegistroRepo) CreateRuta(ruta *entity.RutaLogistica) error {
	paradas, err := marshalJSONB(ruta.Paradas)
	if err != nil {
		return fmt.Errorf("paradas de %s: %w", ruta.ID, err)
	}
	query := `
		INSERT INTO rutas_logisticas (` + rutaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		ruta.ID, ruta.EscenarioID, ruta.MarcaID, ruta.Nombre, ruta.Bodega,
		paradas, ruta.ClaseVehiculo, ruta.TipoCombustible,
	)
	if err != nil {
		return fmt.Errorf("insert ruta: %w", err)
	}
	return nil
}

func (r *RegistroRepo) CreateProyeccion(p *entity.ProyeccionVentas) error {
	query := `
		INSERT INTO proyecciones_ventas (` + proyeccionCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.EscenarioID, p.MarcaID, p.VentasMes,
		p.VolumenM3, p.Toneladas, p.Estibas, string(p.Indice),
	)
	if err != nil {
		return fmt.Errorf("insert proyeccion: %w", err)
	}
	return nil
}

func (r *RegistroRepo) CreateConfigDescuentos(c *entity.ConfigDescuentos) error {
	tramos, err := marshalJSONB(c.Tramos)
	if err != nil {
		return fmt.Errorf("tramos de %s: %w", c.ID, err)
	}
	query := `
		INSERT INTO configs_descuento (` + descuentoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		c.ID, c.EscenarioID, c.MarcaID, tramos,
		c.TasaRebate, c.TasaFinanciero, c.AplicaFinanciero,
	)
	if err != nil {
		return fmt.Errorf("insert config descuentos: %w", err)
	}
	return nil
}

func (r *RegistroRepo) CreateConfigLejania(c *entity.ConfiguracionLejania) error {
	rendimientos, err := marshalJSONB(c.RendimientoPorClase)
	if err != nil {
		return fmt.Errorf("rendimientos de %s: %w", c.EscenarioID, err)
	}
	query := `
		INSERT INTO configs_lejania (` + lejaniaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		c.EscenarioID, c.PrecioGasolina, c.PrecioACPM, rendimientos,
		c.UmbralKm, c.Desayuno, c.Almuerzo, c.Cena, c.Alojamiento,
	)
	if err != nil {
		return fmt.Errorf("insert config lejania: %w", err)
	}
	return nil
}

// marshalJSONB serializa un campo estructurado para una columna JSONB.
// Valores vacíos quedan como NULL.
func marshalJSONB(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	switch string(b) {
	case "null", "{}", "[]":
		return nil, nil
	}
	return b, nil
}
