package entity

import "github.com/shopspring/decimal"

// Tipos de combustible.
const (
	CombustibleGasolina = "gasolina"
	CombustibleACPM     = "acpm"
)

// ConfiguracionLejania agrupa los parámetros del costo variable por
// distancia de un escenario: precios de combustible, rendimientos por clase
// de vehículo, umbral de kilómetros sin recargo y tarifas de pernoctación.
type ConfiguracionLejania struct {
	EscenarioID string

	PrecioGasolina decimal.Decimal // por galón
	PrecioACPM     decimal.Decimal // por galón

	// Rendimiento km por galón según la clase de vehículo; la clave vacía
	// es el rendimiento por defecto (vehículo del vendedor).
	RendimientoPorClase map[string]decimal.Decimal

	UmbralKm decimal.Decimal // por debajo no hay recargo de lejanía

	// Tarifas diarias de pernoctación.
	Desayuno    decimal.Decimal
	Almuerzo    decimal.Decimal
	Cena        decimal.Decimal
	Alojamiento decimal.Decimal
}

// Rendimiento devuelve el rendimiento de la clase, o el rendimiento por
// defecto si la clase no está en la tabla.
func (c *ConfiguracionLejania) Rendimiento(clase string) decimal.Decimal {
	if r, ok := c.RendimientoPorClase[clase]; ok && r.IsPositive() {
		return r
	}
	return c.RendimientoPorClase[""]
}

// TarifaPernoctacion suma desayuno + almuerzo + cena + alojamiento por noche.
func (c *ConfiguracionLejania) TarifaPernoctacion() decimal.Decimal {
	return c.Desayuno.Add(c.Almuerzo).Add(c.Cena).Add(c.Alojamiento)
}

// Desplazamiento es una entrada origen→destino de la matriz: distancia,
// tiempo de viaje y peajes.
type Desplazamiento struct {
	Origen      string
	Destino     string
	DistanciaKm decimal.Decimal
	TiempoMin   decimal.Decimal
	Peajes      decimal.Decimal
}

// MatrizDesplazamiento indexa los desplazamientos por (origen, destino).
// La matriz es deliberadamente dispersa: los destinos locales no se cargan
// y su ausencia significa distancia cero, no error.
type MatrizDesplazamiento struct {
	entradas map[string]Desplazamiento
}

// NewMatrizDesplazamiento construye la matriz a partir de las entradas.
func NewMatrizDesplazamiento(entradas []Desplazamiento) *MatrizDesplazamiento {
	m := &MatrizDesplazamiento{entradas: make(map[string]Desplazamiento, len(entradas))}
	for _, e := range entradas {
		m.entradas[e.Origen+"|"+e.Destino] = e
	}
	return m
}

// Buscar devuelve la entrada (origen, destino) y si existe.
func (m *MatrizDesplazamiento) Buscar(origen, destino string) (Desplazamiento, bool) {
	e, ok := m.entradas[origen+"|"+destino]
	return e, ok
}

// DestinoZona es un municipio visitado por un vendedor con su frecuencia
// mensual de visita.
type DestinoZona struct {
	Municipio         string
	FrecuenciaMensual decimal.Decimal
}

// ZonaComercial es la zona de un vendedor: punto base (su municipio),
// destinos visitados y condiciones de pernoctación.
type ZonaComercial struct {
	ID                string
	MarcaID           string
	EscenarioID       string
	Nombre            string
	MunicipioVendedor string
	Destinos          []DestinoZona
	RequierePernocte  bool
	Noches            int
	ViajesMes         int
}

// ParadaRuta es una parada de una ruta de reparto con sus entregas al mes.
type ParadaRuta struct {
	Municipio   string
	EntregasMes decimal.Decimal
}

// RutaLogistica es una ruta de reparto: bodega de origen, paradas y clase
// de vehículo que la cubre (determina combustible y rendimiento).
type RutaLogistica struct {
	ID              string
	MarcaID         string
	EscenarioID     string
	Nombre          string
	Bodega          string
	Paradas         []ParadaRuta
	ClaseVehiculo   string
	TipoCombustible string // gasolina o acpm
}
