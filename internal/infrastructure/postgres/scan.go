package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
)

// scanner cubre pgx.Row y pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Columnas de los registros fuente. Los campos estructurados (porcentajes
// de uso, destinos, paradas, tramos, rendimientos) viajan como JSONB.
const (
	personalCols = `id, escenario_id, marca_id, cargo, perfil, categoria, salario_base,
		extras, cantidad, aplica_subsidio, compartido, criterio, porcentajes_uso, indice`
	vehiculoCols = `id, escenario_id, marca_id, tipo_vehiculo, esquema, cantidad, canon,
		combustible, lavado, surtido, precio_compra, valor_residual, vida_util_anios,
		mantenimiento, seguros, impuestos, tarifa_mensual, compartido, criterio, indice`
	gastoCols = `id, escenario_id, marca_id, nombre, categoria, valor_unitario, cantidad,
		compartido, criterio, porcentajes_uso, indice`
	zonaCols = `id, escenario_id, marca_id, nombre, municipio_vendedor, destinos,
		requiere_pernocte, noches, viajes_mes`
	rutaCols       = `id, escenario_id, marca_id, nombre, bodega, paradas, clase_vehiculo, tipo_combustible`
	proyeccionCols = `id, escenario_id, marca_id, ventas_mes, volumen_m3, toneladas, estibas, indice`
	descuentoCols  = `id, escenario_id, marca_id, tramos, tasa_rebate, tasa_financiero, aplica_financiero`
)

func scanPersonal(s scanner) (*entity.RegistroPersonal, error) {
	var r entity.RegistroPersonal
	var marcaID *string
	var criterio, indice string
	var porcentajes []byte
	err := s.Scan(&r.ID, &r.EscenarioID, &marcaID, &r.Cargo, &r.Perfil, &r.Categoria,
		&r.SalarioBase, &r.Extras, &r.Cantidad, &r.AplicaSubsidio, &r.Compartido,
		&criterio, &porcentajes, &indice)
	if err != nil {
		return nil, fmt.Errorf("scan registro personal: %w", err)
	}
	if marcaID != nil {
		r.MarcaID = *marcaID
	}
	r.Criterio = entity.CriterioProrrateo(criterio)
	r.Indice = entity.TipoIndice(indice)
	if len(porcentajes) > 0 {
		if err := json.Unmarshal(porcentajes, &r.PorcentajesUso); err != nil {
			return nil, fmt.Errorf("porcentajes_uso de %s: %w", r.ID, err)
		}
	}
	return &r, nil
}

func scanVehiculo(s scanner) (*entity.RegistroVehiculo, error) {
	var r entity.RegistroVehiculo
	var marcaID *string
	var criterio, indice string
	err := s.Scan(&r.ID, &r.EscenarioID, &marcaID, &r.TipoVehiculo, &r.Esquema,
		&r.Cantidad, &r.Canon, &r.Combustible, &r.Lavado, &r.Surtido,
		&r.PrecioCompra, &r.ValorResidual, &r.VidaUtilAnios, &r.Mantenimiento,
		&r.Seguros, &r.Impuestos, &r.TarifaMensual, &r.Compartido, &criterio, &indice)
	if err != nil {
		return nil, fmt.Errorf("scan registro vehiculo: %w", err)
	}
	if marcaID != nil {
		r.MarcaID = *marcaID
	}
	r.Criterio = entity.CriterioProrrateo(criterio)
	r.Indice = entity.TipoIndice(indice)
	return &r, nil
}

func scanGasto(s scanner) (*entity.RegistroGasto, error) {
	var r entity.RegistroGasto
	var marcaID *string
	var criterio, indice string
	var porcentajes []byte
	err := s.Scan(&r.ID, &r.EscenarioID, &marcaID, &r.Nombre, &r.Categoria,
		&r.ValorUnitario, &r.Cantidad, &r.Compartido, &criterio, &porcentajes, &indice)
	if err != nil {
		return nil, fmt.Errorf("scan registro gasto: %w", err)
	}
	if marcaID != nil {
		r.MarcaID = *marcaID
	}
	r.Criterio = entity.CriterioProrrateo(criterio)
	r.Indice = entity.TipoIndice(indice)
	if len(porcentajes) > 0 {
		if err := json.Unmarshal(porcentajes, &r.PorcentajesUso); err != nil {
			return nil, fmt.Errorf("porcentajes_uso de %s: %w", r.ID, err)
		}
	}
	return &r, nil
}

func scanZona(s scanner) (*entity.ZonaComercial, error) {
	var z entity.ZonaComercial
	var destinos []byte
	err := s.Scan(&z.ID, &z.EscenarioID, &z.MarcaID, &z.Nombre, &z.MunicipioVendedor,
		&destinos, &z.RequierePernocte, &z.Noches, &z.ViajesMes)
	if err != nil {
		return nil, fmt.Errorf("scan zona: %w", err)
	}
	if len(destinos) > 0 {
		if err := json.Unmarshal(destinos, &z.Destinos); err != nil {
			return nil, fmt.Errorf("destinos de %s: %w", z.ID, err)
		}
	}
	return &z, nil
}

func scanRuta(s scanner) (*entity.RutaLogistica, error) {
	var r entity.RutaLogistica
	var paradas []byte
	err := s.Scan(&r.ID, &r.EscenarioID, &r.MarcaID, &r.Nombre, &r.Bodega,
		&paradas, &r.ClaseVehiculo, &r.TipoCombustible)
	if err != nil {
		return nil, fmt.Errorf("scan ruta: %w", err)
	}
	if len(paradas) > 0 {
		if err := json.Unmarshal(paradas, &r.Paradas); err != nil {
			return nil, fmt.Errorf("paradas de %s: %w", r.ID, err)
		}
	}
	return &r, nil
}

func scanProyeccion(s scanner) (*entity.ProyeccionVentas, error) {
	var p entity.ProyeccionVentas
	var indice string
	err := s.Scan(&p.ID, &p.EscenarioID, &p.MarcaID, &p.VentasMes,
		&p.VolumenM3, &p.Toneladas, &p.Estibas, &indice)
	if err != nil {
		return nil, fmt.Errorf("scan proyeccion: %w", err)
	}
	p.Indice = entity.TipoIndice(indice)
	return &p, nil
}

func scanConfigDescuentos(s scanner) (*entity.ConfigDescuentos, error) {
	var c entity.ConfigDescuentos
	var tramos []byte
	err := s.Scan(&c.ID, &c.EscenarioID, &c.MarcaID, &tramos,
		&c.TasaRebate, &c.TasaFinanciero, &c.AplicaFinanciero)
	if err != nil {
		return nil, fmt.Errorf("scan config descuentos: %w", err)
	}
	if len(tramos) > 0 {
		if err := json.Unmarshal(tramos, &c.Tramos); err != nil {
			return nil, fmt.Errorf("tramos de %s: %w", c.ID, err)
		}
	}
	return &c, nil
}
