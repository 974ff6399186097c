// Package moneda formatea montos en pesos colombianos para las salidas
// legibles del resultado (los valores numéricos viajan siempre como decimal).
package moneda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// Formatear presenta un monto con separadores es-CO: $ 1.234.567,89.
func Formatear(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("$ %.2f", f)
}
