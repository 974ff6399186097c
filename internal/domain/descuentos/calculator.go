package descuentos

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
)

var cien = decimal.NewFromInt(100)

// ResultadoDescuentos es la cascada de descuentos de una marca.
// Las ventas netas son iguales a las brutas: los descuentos son ingreso del
// distribuidor que entra al margen, no una reducción de la venta.
type ResultadoDescuentos struct {
	VentasBrutas    decimal.Decimal
	VentasNetas     decimal.Decimal
	PieFactura      decimal.Decimal
	ValorFacturado  decimal.Decimal
	Financiero      decimal.Decimal
	Rebate          decimal.Decimal
	PorcentajeTotal decimal.Decimal // sobre ventas brutas, en %

	Advertencias []entity.Advertencia
}

// Total suma los tres componentes de descuento.
func (r *ResultadoDescuentos) Total() decimal.Decimal {
	return r.PieFactura.Add(r.Rebate).Add(r.Financiero)
}

// Calculator aplica la cascada de descuentos escalonados de una marca.
type Calculator struct{}

// NewCalculator construye el liquidador de descuentos.
func NewCalculator() *Calculator { return &Calculator{} }

// Calcular aplica la cascada sobre las ventas brutas del mes:
//
//  1. Pie de factura: Σ tramos de ventas × fracción × tasa (tasa ponderada
//     por ventas, no escala marginal acumulativa).
//  2. Valor facturado = ventas − pie de factura.
//  3. Descuento financiero sobre el valor facturado, si el flag está activo.
//  4. Rebate sobre ventas brutas, independiente del pie de factura.
//
// Sin configuración todos los descuentos son cero y netas = brutas.
// Fracciones de tramos que no suman 100% generan advertencia, no error.
func (c *Calculator) Calcular(ventasBrutas decimal.Decimal, cfg *entity.ConfigDescuentos) *ResultadoDescuentos {
	res := &ResultadoDescuentos{
		VentasBrutas: ventasBrutas,
		VentasNetas:  ventasBrutas,
	}
	if cfg == nil || !ventasBrutas.IsPositive() {
		res.ValorFacturado = ventasBrutas
		return res
	}

	for _, tramo := range cfg.Tramos {
		res.PieFactura = res.PieFactura.Add(
			ventasBrutas.Mul(tramo.FraccionVentas).Mul(tramo.Tasa))
	}
	res.PieFactura = res.PieFactura.Round(2)
	res.ValorFacturado = ventasBrutas.Sub(res.PieFactura)

	if cfg.AplicaFinanciero {
		res.Financiero = res.ValorFacturado.Mul(cfg.TasaFinanciero).Round(2)
	}
	res.Rebate = ventasBrutas.Mul(cfg.TasaRebate).Round(2)

	res.PorcentajeTotal = res.Total().Div(ventasBrutas).Mul(cien).Round(2)

	if suma := cfg.SumaFracciones(); len(cfg.Tramos) > 0 && !suma.Equal(decimal.NewFromInt(1)) {
		res.Advertencias = append(res.Advertencias, entity.Advertencia{
			Codigo: entity.AdvTramosIncompletos,
			Mensaje: fmt.Sprintf(
				"los tramos de la marca %s cubren %s%% de las ventas, no el 100%%",
				cfg.MarcaID, suma.Mul(cien)),
		})
	}
	return res
}
