package lejania_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
	"github.com/jhoicas/costeo-multimarca/internal/domain/lejania"
)

func configPrueba() *entity.ConfiguracionLejania {
	return &entity.ConfiguracionLejania{
		PrecioGasolina: decimal.NewFromInt(16_000),
		PrecioACPM:     decimal.NewFromInt(10_000),
		RendimientoPorClase: map[string]decimal.Decimal{
			"":      decimal.NewFromInt(10), // vehículo del vendedor
			"turbo": decimal.NewFromInt(5),
		},
		UmbralKm:    decimal.NewFromInt(30),
		Desayuno:    decimal.NewFromInt(15_000),
		Almuerzo:    decimal.NewFromInt(20_000),
		Cena:        decimal.NewFromInt(20_000),
		Alojamiento: decimal.NewFromInt(80_000),
	}
}

func matrizPrueba() *entity.MatrizDesplazamiento {
	return entity.NewMatrizDesplazamiento([]entity.Desplazamiento{
		{Origen: "medellin", Destino: "rionegro", DistanciaKm: decimal.NewFromInt(100), TiempoMin: decimal.NewFromInt(90)},
		{Origen: "medellin", Destino: "monteria", DistanciaKm: decimal.NewFromInt(390), TiempoMin: decimal.NewFromInt(420)},
		{Origen: "medellin", Destino: "envigado", DistanciaKm: decimal.NewFromInt(12), TiempoMin: decimal.NewFromInt(25)},
	})
}

func TestCostoPorVisita_Vector(t *testing.T) {
	calc := lejania.NewCalculator(configPrueba(), matrizPrueba())

	// 100 km − 30 de umbral = 70 efectivos; ida y vuelta 140 km;
	// a 10 km/gal son 14 galones × 16,000 = 224,000.
	costo := calc.CostoPorVisita("medellin", "rionegro",
		decimal.NewFromInt(10), decimal.NewFromInt(16_000))
	assert.True(t, costo.Equal(decimal.NewFromInt(224_000)), "visita: %s", costo)
}

func TestCostoPorVisita_BajoUmbralEsCero(t *testing.T) {
	calc := lejania.NewCalculator(configPrueba(), matrizPrueba())

	costo := calc.CostoPorVisita("medellin", "envigado",
		decimal.NewFromInt(10), decimal.NewFromInt(16_000))
	assert.True(t, costo.IsZero(), "12 km está bajo el umbral de 30")
}

func TestCostoPorVisita_SinEntradaEnMatriz(t *testing.T) {
	calc := lejania.NewCalculator(configPrueba(), matrizPrueba())

	// La matriz es dispersa: destino ausente aporta cero, no error.
	costo := calc.CostoPorVisita("medellin", "sabaneta",
		decimal.NewFromInt(10), decimal.NewFromInt(16_000))
	assert.True(t, costo.IsZero())
}

func TestCalcularZona_ConPernocte(t *testing.T) {
	calc := lejania.NewCalculator(configPrueba(), matrizPrueba())

	zona := &entity.ZonaComercial{
		ID:                "z1",
		Nombre:            "oriente",
		MunicipioVendedor: "medellin",
		Destinos: []entity.DestinoZona{
			{Municipio: "rionegro", FrecuenciaMensual: decimal.NewFromInt(4)},
			{Municipio: "envigado", FrecuenciaMensual: decimal.NewFromInt(8)}, // local, no aporta
		},
		RequierePernocte: true,
		Noches:           2,
		ViajesMes:        3,
	}
	costo := calc.CalcularZona(zona)

	// Combustible: 224,000 × 4 = 896,000.
	assert.True(t, costo.CombustibleMensual.Equal(decimal.NewFromInt(896_000)),
		"combustible: %s", costo.CombustibleMensual)
	// Pernoctación: (15+20+20+80)mil × 2 noches × 3 viajes = 810,000.
	assert.True(t, costo.PernoctacionMensual.Equal(decimal.NewFromInt(810_000)),
		"pernoctación: %s", costo.PernoctacionMensual)
	assert.True(t, costo.TotalAnual.Equal(costo.TotalMensual.Mul(decimal.NewFromInt(12))))
}

func TestCalcularZona_SinFlagNoPernocta(t *testing.T) {
	calc := lejania.NewCalculator(configPrueba(), matrizPrueba())

	zona := &entity.ZonaComercial{
		MunicipioVendedor: "medellin",
		Destinos: []entity.DestinoZona{
			{Municipio: "monteria", FrecuenciaMensual: decimal.NewFromInt(1)},
		},
		RequierePernocte: false, // aunque el destino quede a 390 km
		Noches:           2,
		ViajesMes:        1,
	}
	costo := calc.CalcularZona(zona)
	assert.True(t, costo.PernoctacionMensual.IsZero(),
		"la pernoctación comercial depende solo del flag de la zona")
}

func TestCalcularRuta_PernocteImplicito(t *testing.T) {
	calc := lejania.NewCalculator(configPrueba(), matrizPrueba())

	ruta := &entity.RutaLogistica{
		ID:              "r1",
		Nombre:          "costa",
		Bodega:          "medellin",
		ClaseVehiculo:   "turbo",
		TipoCombustible: entity.CombustibleACPM,
		Paradas: []entity.ParadaRuta{
			{Municipio: "monteria", EntregasMes: decimal.NewFromInt(2)}, // 390 km > 150: pernocta
			{Municipio: "rionegro", EntregasMes: decimal.NewFromInt(6)}, // no pernocta
		},
	}
	costo := calc.CalcularRuta(ruta)

	// Montería: (390−30)×2 = 720 km / 5 km/gal = 144 gal × 10,000 = 1,440,000 × 2 entregas.
	// Rionegro: (100−30)×2 = 140 km / 5 = 28 gal × 10,000 = 280,000 × 6 entregas.
	esperado := decimal.NewFromInt(1_440_000*2 + 280_000*6)
	assert.True(t, costo.CombustibleMensual.Equal(esperado),
		"combustible: %s", costo.CombustibleMensual)

	// Pernoctación: tarifa 135,000 × 2 entregas de Montería.
	assert.True(t, costo.PernoctacionMensual.Equal(decimal.NewFromInt(270_000)),
		"pernoctación: %s", costo.PernoctacionMensual)
}

func TestCalcularMarca_Consolida(t *testing.T) {
	calc := lejania.NewCalculator(configPrueba(), matrizPrueba())

	zonas := []*entity.ZonaComercial{{
		MunicipioVendedor: "medellin",
		Destinos: []entity.DestinoZona{
			{Municipio: "rionegro", FrecuenciaMensual: decimal.NewFromInt(1)},
		},
	}}
	rutas := []*entity.RutaLogistica{{
		Bodega:          "medellin",
		ClaseVehiculo:   "turbo",
		TipoCombustible: entity.CombustibleACPM,
		Paradas: []entity.ParadaRuta{
			{Municipio: "rionegro", EntregasMes: decimal.NewFromInt(1)},
		},
	}}
	total := calc.CalcularMarca("m1", zonas, rutas)

	assert.True(t, total.CombustibleMensual.Equal(decimal.NewFromInt(224_000+280_000)))
	assert.True(t, total.TotalMensual.Equal(total.CombustibleMensual))
	assert.True(t, total.TotalAnual.Equal(total.TotalMensual.Mul(decimal.NewFromInt(12))))
}
