package entity

import "github.com/shopspring/decimal"

// Marca es una línea de distribución con sus ventas, volúmenes y costos.
// El orquestador la construye desde cero en cada corrida; nada fuera de él
// la muta.
type Marca struct {
	ID     string
	Nombre string
	Activa bool

	// Métricas de la proyección de ventas (base del prorrateo).
	VentasMensuales decimal.Decimal
	VentasAnuales   decimal.Decimal
	VolumenM3       decimal.Decimal
	Toneladas       decimal.Decimal
	Estibas         decimal.Decimal
	Personal        int // cabezas contratadas (directas + asignadas)

	RubrosIndividuales []*Rubro
	RubrosAsignados    []RubroAsignado

	// Buckets derivados; se recalculan con Totalizar.
	CostoComercial      decimal.Decimal
	CostoLogistico      decimal.Decimal
	CostoAdministrativo decimal.Decimal
	CostoTotal          decimal.Decimal

	// Descuentos como ingreso del distribuidor (ver margen).
	DescuentoPieFactura decimal.Decimal
	DescuentoRebate     decimal.Decimal
	DescuentoFinanciero decimal.Decimal

	// Lejanías (combustible + pernoctación).
	LejaniaCombustible  decimal.Decimal
	LejaniaPernoctacion decimal.Decimal
	CostoLejaniaMensual decimal.Decimal
	CostoLejaniaAnual   decimal.Decimal

	Margen decimal.Decimal
}

// AgregarIndividual suma un rubro propio a la marca.
func (m *Marca) AgregarIndividual(r *Rubro) {
	m.RubrosIndividuales = append(m.RubrosIndividuales, r)
}

// AgregarAsignado suma la porción prorrateada de un rubro compartido.
func (m *Marca) AgregarAsignado(ra RubroAsignado) {
	m.RubrosAsignados = append(m.RubrosAsignados, ra)
}

// DescuentoTotal es la suma de los tres componentes de descuento.
func (m *Marca) DescuentoTotal() decimal.Decimal {
	return m.DescuentoPieFactura.Add(m.DescuentoRebate).Add(m.DescuentoFinanciero)
}

// VentasNetas es igual a las ventas brutas: los descuentos son ingreso del
// distribuidor y entran al margen, no reducen la venta reconocida.
func (m *Marca) VentasNetas() decimal.Decimal {
	return m.VentasMensuales
}

// Totalizar recalcula los buckets de costo y el margen a partir de los
// rubros acumulados. Margen = ventas netas − costo total + descuentos.
func (m *Marca) Totalizar() {
	m.CostoComercial = decimal.Zero
	m.CostoLogistico = decimal.Zero
	m.CostoAdministrativo = decimal.Zero

	for _, r := range m.RubrosIndividuales {
		m.acumular(r.Categoria, r.ValorTotal())
	}
	for _, ra := range m.RubrosAsignados {
		m.acumular(ra.Rubro.Categoria, ra.Valor)
	}
	// Las lejanías son costo variable logístico.
	m.CostoLogistico = m.CostoLogistico.Add(m.CostoLejaniaMensual)

	m.CostoTotal = m.CostoComercial.Add(m.CostoLogistico).Add(m.CostoAdministrativo)
	m.Margen = m.VentasNetas().Sub(m.CostoTotal).Add(m.DescuentoTotal()).Round(2)
}

func (m *Marca) acumular(categoria string, valor decimal.Decimal) {
	switch categoria {
	case CategoriaComercial:
		m.CostoComercial = m.CostoComercial.Add(valor)
	case CategoriaLogistica:
		m.CostoLogistico = m.CostoLogistico.Add(valor)
	default:
		m.CostoAdministrativo = m.CostoAdministrativo.Add(valor)
	}
}
