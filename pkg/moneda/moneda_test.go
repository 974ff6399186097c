package moneda_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/costeo-multimarca/pkg/moneda"
)

func TestFormatear_SeparadoresLocales(t *testing.T) {
	s := moneda.Formatear(decimal.NewFromInt(1_500_000))
	assert.Contains(t, s, "1.500.000", "es-CO separa miles con punto: %s", s)
	assert.Contains(t, s, "$", "lleva el símbolo de pesos")
}
