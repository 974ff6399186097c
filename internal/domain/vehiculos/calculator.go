package vehiculos

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/costeo-multimarca/internal/domain"
	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
)

// Esquemas de tenencia de la flota.
const (
	EsquemaRenting     = "renting"
	EsquemaTradicional = "tradicional"
	EsquemaTercero     = "tercero"
)

var doce = decimal.NewFromInt(12)

// Calculator liquida el costo mensual de un vehículo según su esquema de
// tenencia, validando contra el catálogo de capacidades por tipo.
type Calculator struct {
	catalogo map[string][]string // tipo de vehículo → esquemas disponibles
}

// NewCalculator construye el liquidador con el catálogo de capacidades.
// Con catálogo nil se usa el catálogo estándar de la operación.
func NewCalculator(catalogo map[string][]string) *Calculator {
	if catalogo == nil {
		catalogo = CatalogoEstandar()
	}
	return &Calculator{catalogo: catalogo}
}

// CatalogoEstandar es la flota típica de la distribuidora y los esquemas
// contratables para cada tipo.
func CatalogoEstandar() map[string][]string {
	return map[string][]string{
		"turbo":    {EsquemaRenting, EsquemaTradicional, EsquemaTercero},
		"nhr":      {EsquemaRenting, EsquemaTradicional, EsquemaTercero},
		"sencillo": {EsquemaTradicional, EsquemaTercero},
		"moto":     {EsquemaTradicional},
		"carry":    {EsquemaRenting, EsquemaTradicional},
	}
}

// CostoVehiculo es el desglose del costo mensual de un vehículo.
type CostoVehiculo struct {
	Esquema         string
	Componentes     map[string]decimal.Decimal
	UnitarioMensual decimal.Decimal
	GrupoMensual    decimal.Decimal
	GrupoAnual      decimal.Decimal
}

// Calcular liquida un registro de vehículo. Esquema no disponible para el
// tipo devuelve ValidationError con los esquemas contratables.
//
// En el esquema tercero el combustible y los peajes NO se incluyen: los
// calcula el módulo de lejanías contra las rutas reales. Sumarlos aquí
// duplicaría el costo.
func (c *Calculator) Calcular(reg *entity.RegistroVehiculo) (*CostoVehiculo, error) {
	esquemas, ok := c.catalogo[reg.TipoVehiculo]
	if !ok {
		tipos := make([]string, 0, len(c.catalogo))
		for t := range c.catalogo {
			tipos = append(tipos, t)
		}
		return nil, domain.NewValidationError("tipo de vehículo", reg.TipoVehiculo, tipos)
	}
	if !contiene(esquemas, reg.Esquema) {
		return nil, domain.NewValidationError("esquema para "+reg.TipoVehiculo, reg.Esquema, esquemas)
	}

	var unitario decimal.Decimal
	componentes := map[string]decimal.Decimal{}

	switch reg.Esquema {
	case EsquemaRenting:
		componentes["canon"] = reg.Canon
		componentes["combustible"] = reg.Combustible
		componentes["lavado"] = reg.Lavado
		componentes["surtido"] = reg.Surtido
		unitario = reg.Canon.Add(reg.Combustible).Add(reg.Lavado).Add(reg.Surtido)

	case EsquemaTradicional:
		depreciacion := c.Depreciacion(reg.PrecioCompra, reg.ValorResidual, reg.VidaUtilAnios)
		impuestosMes := reg.Impuestos.Div(doce).Round(2)
		componentes["depreciacion"] = depreciacion
		componentes["mantenimiento"] = reg.Mantenimiento
		componentes["seguros"] = reg.Seguros
		componentes["combustible"] = reg.Combustible
		componentes["impuestos"] = impuestosMes
		unitario = depreciacion.Add(reg.Mantenimiento).Add(reg.Seguros).
			Add(reg.Combustible).Add(impuestosMes)

	case EsquemaTercero:
		componentes["tarifa"] = reg.TarifaMensual
		unitario = reg.TarifaMensual
	}

	unitario = unitario.Round(2)
	grupo := unitario.Mul(reg.Cantidad).Round(2)
	return &CostoVehiculo{
		Esquema:         reg.Esquema,
		Componentes:     componentes,
		UnitarioMensual: unitario,
		GrupoMensual:    grupo,
		GrupoAnual:      grupo.Mul(doce),
	}, nil
}

// Depreciacion mensual lineal: (compra − residual) / (vida útil en meses).
func (c *Calculator) Depreciacion(compra, residual decimal.Decimal, vidaAnios int64) decimal.Decimal {
	if vidaAnios <= 0 {
		return decimal.Zero
	}
	meses := decimal.NewFromInt(vidaAnios).Mul(doce)
	return compra.Sub(residual).Div(meses).Round(2)
}

func contiene(lista []string, v string) bool {
	for _, s := range lista {
		if s == v {
			return true
		}
	}
	return false
}
