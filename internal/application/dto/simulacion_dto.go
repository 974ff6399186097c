package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
	"github.com/jhoicas/costeo-multimarca/pkg/moneda"
)

// ResultadoSimulacion es la salida serializable de una corrida completa:
// consolidado, detalle por marca y advertencias de conciliación. O está
// completo y consistente, o la corrida devolvió error; nunca hay resultados
// a medias.
type ResultadoSimulacion struct {
	EscenarioID     string               `json:"escenario_id"`
	EscenarioNombre string               `json:"escenario_nombre"`
	Anio            int                  `json:"anio"`
	Estado          string               `json:"estado"`
	Consolidado     Consolidado          `json:"consolidado"`
	Marcas          []ResultadoMarca     `json:"marcas"`
	MarcasOmitidas  []string             `json:"marcas_omitidas,omitempty"`
	Advertencias    []entity.Advertencia `json:"advertencias,omitempty"`
}

// Consolidado son los agregados de todas las marcas simuladas.
type Consolidado struct {
	VentasTotales       decimal.Decimal `json:"ventas_totales"`
	CostoComercial      decimal.Decimal `json:"costo_comercial"`
	CostoLogistico      decimal.Decimal `json:"costo_logistico"`
	CostoAdministrativo decimal.Decimal `json:"costo_administrativo"`
	CostoTotal          decimal.Decimal `json:"costo_total"`
	Margen              decimal.Decimal `json:"margen"`
	Personal            int             `json:"personal"`
}

// ResultadoMarca es el detalle de una marca: ventas, descuentos, buckets de
// costo, lejanías y la lista completa de rubros para auditoría.
type ResultadoMarca struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`

	VentasBrutas        decimal.Decimal `json:"ventas_brutas"`
	VentasNetas         decimal.Decimal `json:"ventas_netas"` // iguales a las brutas
	VentasBrutasFormato string          `json:"ventas_brutas_formato"`

	Descuentos Descuentos `json:"descuentos"`
	Costos     Costos     `json:"costos"`
	Lejania    Lejania    `json:"lejania"`

	Personal      int             `json:"personal"`
	Margen        decimal.Decimal `json:"margen"`
	MargenFormato string          `json:"margen_formato"`

	// Auditoría: todos los rubros propios y las porciones asignadas.
	RubrosIndividuales []map[string]any `json:"rubros_individuales"`
	RubrosAsignados    []RubroAsignado  `json:"rubros_asignados"`
}

// Descuentos desglosa la cascada de la marca.
type Descuentos struct {
	PieFactura      decimal.Decimal `json:"pie_factura"`
	Rebate          decimal.Decimal `json:"rebate"`
	Financiero      decimal.Decimal `json:"financiero"`
	Total           decimal.Decimal `json:"total"`
	PorcentajeTotal decimal.Decimal `json:"porcentaje_total"`
}

// Costos son los buckets de la marca.
type Costos struct {
	Comercial      decimal.Decimal `json:"comercial"`
	Logistico      decimal.Decimal `json:"logistico"`
	Administrativo decimal.Decimal `json:"administrativo"`
	Total          decimal.Decimal `json:"total"`
}

// Lejania es el consolidado de costos por distancia de la marca.
type Lejania struct {
	CombustibleMensual  decimal.Decimal `json:"combustible_mensual"`
	PernoctacionMensual decimal.Decimal `json:"pernoctacion_mensual"`
	TotalMensual        decimal.Decimal `json:"total_mensual"`
	TotalAnual          decimal.Decimal `json:"total_anual"`
}

// RubroAsignado es la porción prorrateada de un rubro compartido.
type RubroAsignado struct {
	Rubro  map[string]any  `json:"rubro"`
	Factor decimal.Decimal `json:"factor"`
	Valor  decimal.Decimal `json:"valor"`
}

// DesdeMarca arma el DTO de una marca ya totalizada.
func DesdeMarca(m *entity.Marca) ResultadoMarca {
	out := ResultadoMarca{
		ID:                  m.ID,
		Nombre:              m.Nombre,
		VentasBrutas:        m.VentasMensuales,
		VentasNetas:         m.VentasNetas(),
		VentasBrutasFormato: moneda.Formatear(m.VentasMensuales),
		Descuentos: Descuentos{
			PieFactura: m.DescuentoPieFactura,
			Rebate:     m.DescuentoRebate,
			Financiero: m.DescuentoFinanciero,
			Total:      m.DescuentoTotal(),
		},
		Costos: Costos{
			Comercial:      m.CostoComercial,
			Logistico:      m.CostoLogistico,
			Administrativo: m.CostoAdministrativo,
			Total:          m.CostoTotal,
		},
		Lejania: Lejania{
			CombustibleMensual:  m.LejaniaCombustible,
			PernoctacionMensual: m.LejaniaPernoctacion,
			TotalMensual:        m.CostoLejaniaMensual,
			TotalAnual:          m.CostoLejaniaAnual,
		},
		Personal:      m.Personal,
		Margen:        m.Margen,
		MargenFormato: moneda.Formatear(m.Margen),
	}
	if m.VentasMensuales.IsPositive() {
		out.Descuentos.PorcentajeTotal = m.DescuentoTotal().
			Div(m.VentasMensuales).Mul(decimal.NewFromInt(100)).Round(2)
	}
	for _, r := range m.RubrosIndividuales {
		out.RubrosIndividuales = append(out.RubrosIndividuales, r.Serializar())
	}
	for _, ra := range m.RubrosAsignados {
		out.RubrosAsignados = append(out.RubrosAsignados, RubroAsignado{
			Rubro:  ra.Rubro.Serializar(),
			Factor: ra.Factor,
			Valor:  ra.Valor,
		})
	}
	return out
}
