package entity

import "github.com/shopspring/decimal"

// TramoDescuento es un tramo de la configuración escalonada: cubre una
// fracción de las ventas brutas totales con una tasa de descuento asociada.
// No son umbrales acumulativos: la suma de fracciones debería dar 1.
type TramoDescuento struct {
	Orden          int
	FraccionVentas decimal.Decimal // fracción de las ventas brutas (0..1)
	Tasa           decimal.Decimal // tasa de descuento del tramo (0..1)
}

// ConfigDescuentos es la configuración de descuentos de una marca:
// tramos de pie de factura, rebate plano y descuento financiero opcional.
type ConfigDescuentos struct {
	ID               string
	MarcaID          string
	EscenarioID      string
	Tramos           []TramoDescuento
	TasaRebate       decimal.Decimal
	TasaFinanciero   decimal.Decimal
	AplicaFinanciero bool
}

// SumaFracciones devuelve la suma de las fracciones de los tramos.
// Distinta de 1 implica advertencia de conciliación, no error.
func (c *ConfigDescuentos) SumaFracciones() decimal.Decimal {
	suma := decimal.Zero
	for _, t := range c.Tramos {
		suma = suma.Add(t.FraccionVentas)
	}
	return suma
}
