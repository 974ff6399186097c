package simulacion

import (
	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
	"github.com/jhoicas/costeo-multimarca/internal/domain/nomina"
	"github.com/jhoicas/costeo-multimarca/internal/domain/vehiculos"
	"github.com/jhoicas/costeo-multimarca/pkg/logger"
)

// constructorRubros convierte registros fuente en rubros, liquidando nómina
// y flota con los calculadores de dominio. Es propiedad de la corrida: los
// calculadores se construyen con el snapshot de factores y parámetros.
type constructorRubros struct {
	nomCalc *nomina.Calculator
	vehCalc *vehiculos.Calculator
	log     *logger.Logger
}

func newConstructorRubros(factores []*entity.FactoresPrestacionales, params *entity.ParametrosMacro, log *logger.Logger) *constructorRubros {
	return &constructorRubros{
		nomCalc: nomina.NewCalculator(factores, params),
		vehCalc: vehiculos.NewCalculator(nil),
		log:     log,
	}
}

func asignacionDe(compartido bool) string {
	if compartido {
		return entity.AsignacionCompartido
	}
	return entity.AsignacionIndividual
}

// desdePersonal liquida el registro y arma el rubro de nómina con su
// variante de detalle.
func (c *constructorRubros) desdePersonal(reg *entity.RegistroPersonal) (*entity.Rubro, error) {
	costo, err := c.nomCalc.Calcular(reg)
	if err != nil {
		return nil, err
	}
	categoria := reg.Categoria
	if categoria == "" {
		categoria = entity.CategoriaAdministrativa
	}
	return &entity.Rubro{
		ID:             reg.ID,
		Nombre:         reg.Cargo,
		Categoria:      categoria,
		Tipo:           entity.TipoRubroPersonal,
		Asignacion:     asignacionDe(reg.Compartido),
		MarcaID:        reg.MarcaID,
		Criterio:       reg.Criterio,
		PorcentajesUso: reg.PorcentajesUso,
		ValorUnitario:  costo.UnitarioMensual,
		Cantidad:       reg.Cantidad,
		Detalle: &entity.DetallePersonal{
			Perfil:             reg.Perfil,
			SalarioBase:        costo.SalarioBase,
			CargaPrestacional:  costo.Prestaciones,
			SubsidioTransporte: costo.Subsidio,
		},
	}, nil
}

// desdeVehiculo liquida el registro según su esquema de tenencia.
func (c *constructorRubros) desdeVehiculo(reg *entity.RegistroVehiculo) (*entity.Rubro, error) {
	costo, err := c.vehCalc.Calcular(reg)
	if err != nil {
		return nil, err
	}
	return &entity.Rubro{
		ID:            reg.ID,
		Nombre:        reg.TipoVehiculo + " " + reg.Esquema,
		Categoria:     entity.CategoriaLogistica,
		Tipo:          entity.TipoRubroVehiculo,
		Asignacion:    asignacionDe(reg.Compartido),
		MarcaID:       reg.MarcaID,
		Criterio:      reg.Criterio,
		ValorUnitario: costo.UnitarioMensual,
		Cantidad:      reg.Cantidad,
		Detalle: &entity.DetalleVehiculo{
			TipoVehiculo: reg.TipoVehiculo,
			Esquema:      reg.Esquema,
			Componentes:  costo.Componentes,
		},
	}, nil
}

// desdeGasto arma el rubro genérico; no requiere liquidación.
func (c *constructorRubros) desdeGasto(reg *entity.RegistroGasto) *entity.Rubro {
	categoria := reg.Categoria
	if categoria == "" {
		categoria = entity.CategoriaAdministrativa
	}
	return &entity.Rubro{
		ID:             reg.ID,
		Nombre:         reg.Nombre,
		Categoria:      categoria,
		Tipo:           entity.TipoRubroOtro,
		Asignacion:     asignacionDe(reg.Compartido),
		MarcaID:        reg.MarcaID,
		Criterio:       reg.Criterio,
		PorcentajesUso: reg.PorcentajesUso,
		ValorUnitario:  reg.ValorUnitario,
		Cantidad:       reg.Cantidad,
	}
}
