package entity

import "github.com/shopspring/decimal"

// TipoIndice identifica el índice macroeconómico con el que se incrementa
// un campo monetario al proyectar un escenario. Enumeración cerrada con un
// único resolutor usado por todo el motor.
type TipoIndice string

const (
	IndiceSalarial       TipoIndice = "incremento_salarial"
	IndiceSMLV           TipoIndice = "incremento_smlv"
	IndiceIPC            TipoIndice = "ipc"
	IndiceIPT            TipoIndice = "ipt" // índice de precios al transportador
	IndiceCombustible    TipoIndice = "incremento_combustible"
	IndiceArriendo       TipoIndice = "incremento_arriendo"
	IndicePersonalizado1 TipoIndice = "personalizado_1"
	IndicePersonalizado2 TipoIndice = "personalizado_2"
	IndiceFijo           TipoIndice = "fijo" // incremento cero siempre
)

// IndicesValidos lista los índices aceptados (para mensajes de error).
func IndicesValidos() []string {
	return []string{
		string(IndiceSalarial), string(IndiceSMLV), string(IndiceIPC),
		string(IndiceIPT), string(IndiceCombustible), string(IndiceArriendo),
		string(IndicePersonalizado1), string(IndicePersonalizado2), string(IndiceFijo),
	}
}

// ParametrosMacro son los parámetros macroeconómicos de un año: SMLV,
// subsidio de transporte e índices de incremento para proyección.
// Las tasas se expresan como fracción (0.05 = 5%).
type ParametrosMacro struct {
	Anio               int
	SMLV               decimal.Decimal
	SubsidioTransporte decimal.Decimal
	LimiteSubsidioSMLV decimal.Decimal // múltiplo de SMLV hasta el que aplica subsidio (2 por ley)

	IncrementoSalarial    decimal.Decimal
	IncrementoSMLV        decimal.Decimal
	IPC                   decimal.Decimal
	IPT                   decimal.Decimal
	IncrementoCombustible decimal.Decimal
	IncrementoArriendo    decimal.Decimal
	Personalizado1        decimal.Decimal
	Personalizado2        decimal.Decimal
}

// Resolver devuelve la tasa de incremento del índice contra estos
// parámetros. Con parámetros nil (año destino sin configurar) o índice
// desconocido la tasa es cero: los registros se copian sin cambio.
func (t TipoIndice) Resolver(p *ParametrosMacro) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	switch t {
	case IndiceSalarial:
		return p.IncrementoSalarial
	case IndiceSMLV:
		return p.IncrementoSMLV
	case IndiceIPC:
		return p.IPC
	case IndiceIPT:
		return p.IPT
	case IndiceCombustible:
		return p.IncrementoCombustible
	case IndiceArriendo:
		return p.IncrementoArriendo
	case IndicePersonalizado1:
		return p.Personalizado1
	case IndicePersonalizado2:
		return p.Personalizado2
	default:
		return decimal.Zero
	}
}

// Incrementar aplica valor × (1 + tasa) redondeado a 2 decimales.
func (t TipoIndice) Incrementar(valor decimal.Decimal, p *ParametrosMacro) decimal.Decimal {
	tasa := t.Resolver(p)
	if tasa.IsZero() {
		return valor
	}
	return valor.Mul(decimal.NewFromInt(1).Add(tasa)).Round(2)
}
