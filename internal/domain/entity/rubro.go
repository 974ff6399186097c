package entity

import "github.com/shopspring/decimal"

// Categorías de costo de un rubro.
const (
	CategoriaComercial      = "comercial"
	CategoriaLogistica      = "logistica"
	CategoriaAdministrativa = "administrativa"
)

// Tipos de rubro.
const (
	TipoRubroPersonal = "personal"
	TipoRubroVehiculo = "vehiculo"
	TipoRubroOtro     = "otro"
)

// Asignación de un rubro: propio de una marca o compartido entre todas.
const (
	AsignacionIndividual = "individual"
	AsignacionCompartido = "compartido"
)

// CriterioProrrateo define cómo se distribuye un rubro compartido entre las
// marcas activas. Enumeración cerrada; el prorrateador rechaza valores fuera
// de esta lista.
type CriterioProrrateo string

const (
	CriterioPorVentas     CriterioProrrateo = "por_ventas"
	CriterioPorVolumen    CriterioProrrateo = "por_volumen"
	CriterioPorPersonal   CriterioProrrateo = "por_personal"
	CriterioPartesIguales CriterioProrrateo = "partes_iguales"
	CriterioUsoReal       CriterioProrrateo = "uso_real"
)

// CriteriosValidos lista los criterios aceptados (para mensajes de error).
func CriteriosValidos() []string {
	return []string{
		string(CriterioPorVentas), string(CriterioPorVolumen),
		string(CriterioPorPersonal), string(CriterioPartesIguales),
		string(CriterioUsoReal),
	}
}

// Rubro es una partida atómica de costo: personal, vehículo u otro gasto.
// Invariante: un rubro individual lleva MarcaID; un rubro compartido lleva
// criterio de prorrateo (el orquestador aplica por_ventas por defecto si
// falta, dejando advertencia).
type Rubro struct {
	ID             string
	Nombre         string
	Categoria      string // comercial, logistica, administrativa
	Tipo           string // personal, vehiculo, otro
	Asignacion     string // individual, compartido
	MarcaID        string // solo para individuales
	Criterio       CriterioProrrateo
	PorcentajesUso map[string]decimal.Decimal // dedicación explícita por marca para uso_real; vacío = no definida
	ValorUnitario  decimal.Decimal
	Cantidad       decimal.Decimal
	Detalle        DetalleRubro // variante según Tipo; nil para "otro"
}

// ValorTotal calcula cantidad × valor unitario.
func (r *Rubro) ValorTotal() decimal.Decimal {
	return r.ValorUnitario.Mul(r.Cantidad)
}

// EsCompartido indica si el rubro participa del prorrateo.
func (r *Rubro) EsCompartido() bool {
	return r.Asignacion == AsignacionCompartido
}

// Serializar produce la representación para el resultado de auditoría.
// El detalle se despacha por variante (type switch), no por introspección.
func (r *Rubro) Serializar() map[string]any {
	out := map[string]any{
		"id":             r.ID,
		"nombre":         r.Nombre,
		"categoria":      r.Categoria,
		"tipo":           r.Tipo,
		"asignacion":     r.Asignacion,
		"valor_unitario": r.ValorUnitario,
		"cantidad":       r.Cantidad,
		"valor_total":    r.ValorTotal(),
	}
	if r.MarcaID != "" {
		out["marca_id"] = r.MarcaID
	}
	if r.EsCompartido() {
		out["criterio"] = string(r.Criterio)
	}
	switch d := r.Detalle.(type) {
	case *DetallePersonal:
		out["detalle"] = d.serializar()
	case *DetalleVehiculo:
		out["detalle"] = d.serializar()
	}
	return out
}

// DetalleRubro es la variante etiquetada con los campos propios de cada
// tipo de rubro.
type DetalleRubro interface {
	TipoDetalle() string
}

// DetallePersonal campos adicionales de un rubro de nómina.
type DetallePersonal struct {
	Perfil             string
	SalarioBase        decimal.Decimal
	CargaPrestacional  decimal.Decimal // suma de prestaciones ya calculada
	SubsidioTransporte decimal.Decimal
}

func (d *DetallePersonal) TipoDetalle() string { return TipoRubroPersonal }

func (d *DetallePersonal) serializar() map[string]any {
	return map[string]any{
		"perfil":              d.Perfil,
		"salario_base":        d.SalarioBase,
		"carga_prestacional":  d.CargaPrestacional,
		"subsidio_transporte": d.SubsidioTransporte,
	}
}

// DetalleVehiculo campos adicionales de un rubro de flota.
type DetalleVehiculo struct {
	TipoVehiculo string
	Esquema      string
	Componentes  map[string]decimal.Decimal // depreciación, mantenimiento, etc.
}

func (d *DetalleVehiculo) TipoDetalle() string { return TipoRubroVehiculo }

func (d *DetalleVehiculo) serializar() map[string]any {
	return map[string]any{
		"tipo_vehiculo": d.TipoVehiculo,
		"esquema":       d.Esquema,
		"componentes":   d.Componentes,
	}
}

// RubroAsignado es la porción de un rubro compartido que recibió una marca
// tras el prorrateo.
type RubroAsignado struct {
	Rubro  *Rubro
	Factor decimal.Decimal // fracción asignada (0..1)
	Valor  decimal.Decimal // rubro.ValorTotal() × Factor, redondeado a 2
}
