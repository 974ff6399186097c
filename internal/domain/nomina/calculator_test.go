package nomina_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/costeo-multimarca/internal/domain"
	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
	"github.com/jhoicas/costeo-multimarca/internal/domain/nomina"
)

// Factores de prueba con las tasas de ley vigentes para un perfil operativo.
func factoresOperativo() *entity.FactoresPrestacionales {
	return &entity.FactoresPrestacionales{
		Perfil:           "operativo",
		Salud:            decimal.NewFromFloat(0.085),
		Pension:          decimal.NewFromFloat(0.12),
		ARL:              decimal.NewFromFloat(0.00522),
		CajaCompensacion: decimal.NewFromFloat(0.04),
		Parafiscales:     decimal.NewFromFloat(0.05),
		Vacaciones:       decimal.NewFromFloat(0.0417),

		Cesantias:          decimal.NewFromFloat(0.0833),
		InteresesCesantias: decimal.NewFromFloat(0.01),
		Prima:              decimal.NewFromFloat(0.0833),
	}
}

func parametros2025() *entity.ParametrosMacro {
	return &entity.ParametrosMacro{
		Anio:               2025,
		SMLV:               decimal.NewFromInt(1_423_500),
		SubsidioTransporte: decimal.NewFromInt(200_000),
		LimiteSubsidioSMLV: decimal.NewFromInt(2),
	}
}

func TestAplicaSubsidio_TopeDosSMLV(t *testing.T) {
	calc := nomina.NewCalculator([]*entity.FactoresPrestacionales{factoresOperativo()}, parametros2025())

	// 2,800,000 ≤ 2 × 1,423,500 = 2,847,000
	assert.True(t, calc.AplicaSubsidio(decimal.NewFromInt(2_800_000)))
	// 3,000,000 supera el tope
	assert.False(t, calc.AplicaSubsidio(decimal.NewFromInt(3_000_000)))
	// exactamente en el tope sigue aplicando
	assert.True(t, calc.AplicaSubsidio(decimal.NewFromInt(2_847_000)))
}

func TestCalcular_VectorCompleto(t *testing.T) {
	calc := nomina.NewCalculator([]*entity.FactoresPrestacionales{factoresOperativo()}, parametros2025())

	costo, err := calc.Calcular(&entity.RegistroPersonal{
		Cargo:          "auxiliar de bodega",
		Perfil:         "operativo",
		SalarioBase:    decimal.NewFromInt(2_000_000),
		Extras:         decimal.NewFromInt(100_000),
		Cantidad:       decimal.NewFromInt(3),
		AplicaSubsidio: true,
	})
	require.NoError(t, err)

	// Sobre base: 2,000,000 × 0.34192 = 683,840
	// Sobre base + subsidio: 2,200,000 × 0.1766 = 388,520
	assert.True(t, costo.Subsidio.Equal(decimal.NewFromInt(200_000)))
	assert.True(t, costo.Prestaciones.Equal(decimal.NewFromInt(1_072_360)),
		"prestaciones: %s", costo.Prestaciones)
	assert.True(t, costo.UnitarioMensual.Equal(decimal.NewFromInt(3_372_360)),
		"unitario: %s", costo.UnitarioMensual)
	assert.True(t, costo.GrupoMensual.Equal(decimal.NewFromInt(10_117_080)))
	assert.True(t, costo.GrupoAnual.Equal(decimal.NewFromInt(121_404_960)))
}

func TestCalcular_SinSubsidioPorSalario(t *testing.T) {
	calc := nomina.NewCalculator([]*entity.FactoresPrestacionales{factoresOperativo()}, parametros2025())

	costo, err := calc.Calcular(&entity.RegistroPersonal{
		Perfil:         "operativo",
		SalarioBase:    decimal.NewFromInt(3_000_000),
		Cantidad:       decimal.NewFromInt(1),
		AplicaSubsidio: true, // elegible pero el salario supera el tope
	})
	require.NoError(t, err)
	assert.True(t, costo.Subsidio.IsZero())
}

func TestCalcular_SinSubsidioPorFlag(t *testing.T) {
	calc := nomina.NewCalculator([]*entity.FactoresPrestacionales{factoresOperativo()}, parametros2025())

	costo, err := calc.Calcular(&entity.RegistroPersonal{
		Perfil:         "operativo",
		SalarioBase:    decimal.NewFromInt(1_500_000),
		Cantidad:       decimal.NewFromInt(1),
		AplicaSubsidio: false,
	})
	require.NoError(t, err)
	assert.True(t, costo.Subsidio.IsZero())
}

func TestCalcular_PerfilDesconocido(t *testing.T) {
	calc := nomina.NewCalculator([]*entity.FactoresPrestacionales{factoresOperativo()}, parametros2025())

	_, err := calc.Calcular(&entity.RegistroPersonal{
		Perfil:      "gerencial",
		SalarioBase: decimal.NewFromInt(5_000_000),
		Cantidad:    decimal.NewFromInt(1),
	})
	require.Error(t, err)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Validos, "operativo",
		"el error debe listar los perfiles válidos para corregir la entrada")
}

func TestCalcular_Determinista(t *testing.T) {
	calc := nomina.NewCalculator([]*entity.FactoresPrestacionales{factoresOperativo()}, parametros2025())
	reg := &entity.RegistroPersonal{
		Perfil:         "operativo",
		SalarioBase:    decimal.NewFromInt(1_800_000),
		Cantidad:       decimal.NewFromInt(2),
		AplicaSubsidio: true,
	}

	c1, err1 := calc.Calcular(reg)
	c2, err2 := calc.Calcular(reg)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, c1.GrupoAnual.Equal(c2.GrupoAnual),
		"el mismo registro siempre liquida igual")
}
