package lejania

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
)

// Umbral de pernoctación implícita en rutas logísticas. A diferencia del
// umbral comercial (configurable por escenario), estos valores son fijos.
// TODO: mover a ConfiguracionLejania cuando operaciones confirme que la
// asimetría con el umbral comercial no es intencional.
const (
	UmbralPernocteKm  = 150
	UmbralPernocteMin = 240
)

var (
	dos  = decimal.NewFromInt(2)
	doce = decimal.NewFromInt(12)
)

// Calculator liquida el costo variable por distancia (combustible y
// pernoctación) de zonas comerciales y rutas logísticas contra la matriz de
// desplazamientos del escenario. La matriz es dispersa: una entrada ausente
// vale distancia cero y el destino no aporta costo.
type Calculator struct {
	cfg    *entity.ConfiguracionLejania
	matriz *entity.MatrizDesplazamiento
}

// NewCalculator construye el liquidador con la configuración y la matriz.
func NewCalculator(cfg *entity.ConfiguracionLejania, matriz *entity.MatrizDesplazamiento) *Calculator {
	return &Calculator{cfg: cfg, matriz: matriz}
}

// CostoDesplazamiento es el costo de lejanía de una zona o ruta.
type CostoDesplazamiento struct {
	ID                  string
	Nombre              string
	CombustibleMensual  decimal.Decimal
	PernoctacionMensual decimal.Decimal
	TotalMensual        decimal.Decimal
	TotalAnual          decimal.Decimal
}

// CostoMarca es el consolidado de lejanías de una marca.
type CostoMarca struct {
	MarcaID             string
	Zonas               []CostoDesplazamiento
	Rutas               []CostoDesplazamiento
	CombustibleMensual  decimal.Decimal
	PernoctacionMensual decimal.Decimal
	TotalMensual        decimal.Decimal
	TotalAnual          decimal.Decimal
}

// CostoPorVisita liquida el combustible de un viaje redondo origen→destino:
// galones = 2 × max(0, km − umbral) / rendimiento; costo = galones × precio.
// Destino sin entrada en la matriz cuesta cero.
func (c *Calculator) CostoPorVisita(origen, destino string, rendimiento, precioGalon decimal.Decimal) decimal.Decimal {
	desp, ok := c.matriz.Buscar(origen, destino)
	if !ok || !rendimiento.IsPositive() {
		return decimal.Zero
	}
	efectiva := desp.DistanciaKm.Sub(c.cfg.UmbralKm)
	if !efectiva.IsPositive() {
		return decimal.Zero
	}
	galones := dos.Mul(efectiva).Div(rendimiento)
	return galones.Mul(precioGalon).Round(2)
}

// CalcularZona liquida la zona de un vendedor: combustible por destino según
// frecuencia de visita (siempre gasolina: vehículo del vendedor) y
// pernoctación solo si la zona tiene el flag activo.
func (c *Calculator) CalcularZona(z *entity.ZonaComercial) CostoDesplazamiento {
	rendimiento := c.cfg.Rendimiento("")
	combustible := decimal.Zero
	for _, d := range z.Destinos {
		visita := c.CostoPorVisita(z.MunicipioVendedor, d.Municipio, rendimiento, c.cfg.PrecioGasolina)
		combustible = combustible.Add(visita.Mul(d.FrecuenciaMensual))
	}
	combustible = combustible.Round(2)

	pernoctacion := decimal.Zero
	if z.RequierePernocte {
		pernoctacion = c.cfg.TarifaPernoctacion().
			Mul(decimal.NewFromInt(int64(z.Noches))).
			Mul(decimal.NewFromInt(int64(z.ViajesMes))).Round(2)
	}

	total := combustible.Add(pernoctacion)
	return CostoDesplazamiento{
		ID:                  z.ID,
		Nombre:              z.Nombre,
		CombustibleMensual:  combustible,
		PernoctacionMensual: pernoctacion,
		TotalMensual:        total,
		TotalAnual:          total.Mul(doce),
	}
}

// CalcularRuta liquida una ruta de reparto desde su bodega. El combustible
// depende de la clase de vehículo (gasolina o ACPM, rendimiento por clase).
// La pernoctación se dispara sola en paradas con más de 150 km o 240 min:
// una noche por entrega.
func (c *Calculator) CalcularRuta(r *entity.RutaLogistica) CostoDesplazamiento {
	precio := c.cfg.PrecioACPM
	if r.TipoCombustible == entity.CombustibleGasolina {
		precio = c.cfg.PrecioGasolina
	}
	rendimiento := c.cfg.Rendimiento(r.ClaseVehiculo)

	combustible := decimal.Zero
	pernoctacion := decimal.Zero
	for _, p := range r.Paradas {
		visita := c.CostoPorVisita(r.Bodega, p.Municipio, rendimiento, precio)
		combustible = combustible.Add(visita.Mul(p.EntregasMes))

		if desp, ok := c.matriz.Buscar(r.Bodega, p.Municipio); ok && requierePernocte(desp) {
			pernoctacion = pernoctacion.Add(
				c.cfg.TarifaPernoctacion().Mul(p.EntregasMes))
		}
	}
	combustible = combustible.Round(2)
	pernoctacion = pernoctacion.Round(2)

	total := combustible.Add(pernoctacion)
	return CostoDesplazamiento{
		ID:                  r.ID,
		Nombre:              r.Nombre,
		CombustibleMensual:  combustible,
		PernoctacionMensual: pernoctacion,
		TotalMensual:        total,
		TotalAnual:          total.Mul(doce),
	}
}

func requierePernocte(d entity.Desplazamiento) bool {
	return d.DistanciaKm.GreaterThan(decimal.NewFromInt(UmbralPernocteKm)) ||
		d.TiempoMin.GreaterThan(decimal.NewFromInt(UmbralPernocteMin))
}

// CalcularMarca consolida zonas y rutas de una marca.
func (c *Calculator) CalcularMarca(marcaID string, zonas []*entity.ZonaComercial, rutas []*entity.RutaLogistica) CostoMarca {
	out := CostoMarca{MarcaID: marcaID}
	for _, z := range zonas {
		cz := c.CalcularZona(z)
		out.Zonas = append(out.Zonas, cz)
		out.CombustibleMensual = out.CombustibleMensual.Add(cz.CombustibleMensual)
		out.PernoctacionMensual = out.PernoctacionMensual.Add(cz.PernoctacionMensual)
	}
	for _, r := range rutas {
		cr := c.CalcularRuta(r)
		out.Rutas = append(out.Rutas, cr)
		out.CombustibleMensual = out.CombustibleMensual.Add(cr.CombustibleMensual)
		out.PernoctacionMensual = out.PernoctacionMensual.Add(cr.PernoctacionMensual)
	}
	out.TotalMensual = out.CombustibleMensual.Add(out.PernoctacionMensual)
	out.TotalAnual = out.TotalMensual.Mul(doce)
	return out
}
