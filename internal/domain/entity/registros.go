package entity

import "github.com/shopspring/decimal"

// Registros fuente de un escenario. El colaborador de persistencia los
// entrega tal cual; el orquestador los convierte en rubros.

// RegistroPersonal es un cargo presupuestado: salario, perfil prestacional
// y cantidad de personas.
type RegistroPersonal struct {
	ID             string
	EscenarioID    string
	MarcaID        string // vacío en registros administrativos compartidos
	Cargo          string
	Perfil         string // clave de FactoresPrestacionales
	Categoria      string // comercial, logistica, administrativa
	SalarioBase    decimal.Decimal
	Extras         decimal.Decimal // auxilios no prestacionales (rodamiento, celular)
	Cantidad       decimal.Decimal
	AplicaSubsidio bool // elegibilidad; el tope salarial se valida aparte
	Compartido     bool
	Criterio       CriterioProrrateo
	PorcentajesUso map[string]decimal.Decimal // dedicación por marca para uso_real
	Indice         TipoIndice                 // índice de incremento al proyectar
}

// RegistroVehiculo es un vehículo presupuestado bajo alguno de los tres
// esquemas de tenencia.
type RegistroVehiculo struct {
	ID           string
	EscenarioID  string
	MarcaID      string
	TipoVehiculo string // clave del catálogo de capacidades
	Esquema      string // renting, tradicional, tercero
	Cantidad     decimal.Decimal

	// Renting.
	Canon       decimal.Decimal
	Combustible decimal.Decimal // promedio mensual
	Lavado      decimal.Decimal
	Surtido     decimal.Decimal

	// Tradicional (propio).
	PrecioCompra  decimal.Decimal
	ValorResidual decimal.Decimal
	VidaUtilAnios int64
	Mantenimiento decimal.Decimal
	Seguros       decimal.Decimal
	Impuestos     decimal.Decimal // anuales

	// Tercero.
	TarifaMensual decimal.Decimal

	Compartido bool
	Criterio   CriterioProrrateo
	Indice     TipoIndice
}

// RegistroGasto es un gasto genérico (arriendos, servicios, seguros).
type RegistroGasto struct {
	ID             string
	EscenarioID    string
	MarcaID        string
	Nombre         string
	Categoria      string
	ValorUnitario  decimal.Decimal
	Cantidad       decimal.Decimal
	Compartido     bool
	Criterio       CriterioProrrateo
	PorcentajesUso map[string]decimal.Decimal
	Indice         TipoIndice
}

// ProyeccionVentas son las cifras mensuales proyectadas de una marca:
// ventas brutas y métricas de volumen que alimentan el prorrateo.
type ProyeccionVentas struct {
	ID          string
	EscenarioID string
	MarcaID     string
	VentasMes   decimal.Decimal
	VolumenM3   decimal.Decimal
	Toneladas   decimal.Decimal
	Estibas     decimal.Decimal
	Indice      TipoIndice
}
