package nomina

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/costeo-multimarca/internal/domain"
	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
)

var doce = decimal.NewFromInt(12)
var limitePorDefecto = decimal.NewFromInt(2)

// Calculator liquida el costo mensual y anual de un cargo bajo los factores
// prestacionales de su perfil (servicio de dominio, sin estado mutable).
// Los factores y parámetros son de solo lectura tras la construcción, por lo
// que la instancia es segura para corridas concurrentes.
type Calculator struct {
	factores map[string]*entity.FactoresPrestacionales
	params   *entity.ParametrosMacro
}

// NewCalculator construye el liquidador con los perfiles disponibles y los
// parámetros macro del año (SMLV, subsidio de transporte, tope).
func NewCalculator(factores []*entity.FactoresPrestacionales, params *entity.ParametrosMacro) *Calculator {
	m := make(map[string]*entity.FactoresPrestacionales, len(factores))
	for _, f := range factores {
		m[f.Perfil] = f
	}
	return &Calculator{factores: m, params: params}
}

// CostoPersonal es el desglose de la liquidación de un cargo.
type CostoPersonal struct {
	SalarioBase     decimal.Decimal
	Subsidio        decimal.Decimal
	Prestaciones    decimal.Decimal
	Extras          decimal.Decimal
	UnitarioMensual decimal.Decimal
	GrupoMensual    decimal.Decimal
	GrupoAnual      decimal.Decimal
}

// AplicaSubsidio decide si un salario tiene derecho al subsidio de
// transporte: salario ≤ límite × SMLV (límite legal: 2, configurable en los
// parámetros macro).
func (c *Calculator) AplicaSubsidio(salario decimal.Decimal) bool {
	limite := c.params.LimiteSubsidioSMLV
	if !limite.IsPositive() {
		limite = limitePorDefecto
	}
	return salario.LessThanOrEqual(c.params.SMLV.Mul(limite))
}

// Calcular liquida un registro de personal. Las prestaciones de salud,
// pensión, ARL, caja, parafiscales y vacaciones se causan sobre el salario
// base; cesantías, intereses y prima sobre base + subsidio.
// Perfil desconocido devuelve ValidationError con los perfiles válidos.
func (c *Calculator) Calcular(reg *entity.RegistroPersonal) (*CostoPersonal, error) {
	f, ok := c.factores[reg.Perfil]
	if !ok {
		return nil, domain.NewValidationError("perfil prestacional", reg.Perfil, c.perfiles())
	}

	subsidio := decimal.Zero
	if reg.AplicaSubsidio && c.AplicaSubsidio(reg.SalarioBase) {
		subsidio = c.params.SubsidioTransporte
	}

	sobreBase := reg.SalarioBase.Mul(f.TasaSobreBase())
	sobreBaseMasSubsidio := reg.SalarioBase.Add(subsidio).Mul(f.TasaSobreBaseMasSubsidio())
	prestaciones := sobreBase.Add(sobreBaseMasSubsidio).Round(2)

	unitario := reg.SalarioBase.Add(prestaciones).Add(subsidio).Add(reg.Extras).Round(2)
	grupo := unitario.Mul(reg.Cantidad).Round(2)

	return &CostoPersonal{
		SalarioBase:     reg.SalarioBase,
		Subsidio:        subsidio,
		Prestaciones:    prestaciones,
		Extras:          reg.Extras,
		UnitarioMensual: unitario,
		GrupoMensual:    grupo,
		GrupoAnual:      grupo.Mul(doce),
	}, nil
}

func (c *Calculator) perfiles() []string {
	keys := make([]string, 0, len(c.factores))
	for k := range c.factores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
