package descuentos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/costeo-multimarca/internal/domain/descuentos"
	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
)

func TestCalcular_CascadaUnTramo(t *testing.T) {
	calc := descuentos.NewCalculator()

	cfg := &entity.ConfigDescuentos{
		MarcaID: "m1",
		Tramos: []entity.TramoDescuento{
			{Orden: 1, FraccionVentas: decimal.NewFromInt(1), Tasa: decimal.NewFromFloat(0.05)},
		},
		TasaRebate: decimal.NewFromFloat(0.02),
	}
	res := calc.Calcular(decimal.NewFromInt(10_000_000), cfg)

	assert.True(t, res.PieFactura.Equal(decimal.NewFromInt(500_000)), "pie: %s", res.PieFactura)
	assert.True(t, res.Rebate.Equal(decimal.NewFromInt(200_000)))
	assert.True(t, res.Financiero.IsZero(), "flag financiero apagado")
	assert.True(t, res.VentasNetas.Equal(decimal.NewFromInt(10_000_000)),
		"las netas permanecen iguales a las brutas")
	assert.True(t, res.PorcentajeTotal.Equal(decimal.NewFromInt(7)), "%%: %s", res.PorcentajeTotal)
	assert.Empty(t, res.Advertencias)
}

func TestCalcular_TasaPonderadaNoMarginal(t *testing.T) {
	calc := descuentos.NewCalculator()

	// 60% de las ventas al 4% y 40% al 8%: tasa combinada 5.6%.
	cfg := &entity.ConfigDescuentos{
		MarcaID: "m1",
		Tramos: []entity.TramoDescuento{
			{Orden: 1, FraccionVentas: decimal.NewFromFloat(0.6), Tasa: decimal.NewFromFloat(0.04)},
			{Orden: 2, FraccionVentas: decimal.NewFromFloat(0.4), Tasa: decimal.NewFromFloat(0.08)},
		},
	}
	res := calc.Calcular(decimal.NewFromInt(20_000_000), cfg)
	assert.True(t, res.PieFactura.Equal(decimal.NewFromInt(1_120_000)), "pie: %s", res.PieFactura)
}

func TestCalcular_FinancieroSobreValorFacturado(t *testing.T) {
	calc := descuentos.NewCalculator()

	cfg := &entity.ConfigDescuentos{
		MarcaID: "m1",
		Tramos: []entity.TramoDescuento{
			{Orden: 1, FraccionVentas: decimal.NewFromInt(1), Tasa: decimal.NewFromFloat(0.05)},
		},
		TasaFinanciero:   decimal.NewFromFloat(0.01),
		AplicaFinanciero: true,
	}
	res := calc.Calcular(decimal.NewFromInt(10_000_000), cfg)

	// Facturado = 9,500,000; financiero = 95,000 (sobre facturado, no brutas).
	assert.True(t, res.ValorFacturado.Equal(decimal.NewFromInt(9_500_000)))
	assert.True(t, res.Financiero.Equal(decimal.NewFromInt(95_000)), "financiero: %s", res.Financiero)
}

func TestCalcular_SinConfiguracion(t *testing.T) {
	calc := descuentos.NewCalculator()

	res := calc.Calcular(decimal.NewFromInt(8_000_000), nil)
	assert.True(t, res.Total().IsZero())
	assert.True(t, res.VentasNetas.Equal(decimal.NewFromInt(8_000_000)))
}

func TestCalcular_TramosIncompletosAdvierten(t *testing.T) {
	calc := descuentos.NewCalculator()

	cfg := &entity.ConfigDescuentos{
		MarcaID: "m2",
		Tramos: []entity.TramoDescuento{
			{Orden: 1, FraccionVentas: decimal.NewFromFloat(0.7), Tasa: decimal.NewFromFloat(0.05)},
		},
	}
	res := calc.Calcular(decimal.NewFromInt(10_000_000), cfg)

	require.Len(t, res.Advertencias, 1)
	assert.Equal(t, entity.AdvTramosIncompletos, res.Advertencias[0].Codigo)
	// El cálculo no se bloquea: el pie se liquida con lo configurado.
	assert.True(t, res.PieFactura.Equal(decimal.NewFromInt(350_000)))
}
