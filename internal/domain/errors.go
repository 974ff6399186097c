package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrEscenarioNoActivo   = errors.New("no existe un escenario activo")
	ErrSinMarcasActivas    = errors.New("no hay marcas activas para simular")
	ErrSinMarcasCargadas   = errors.New("ninguna marca pudo cargarse desde la fuente de datos")
	ErrParametrosFaltantes = errors.New("parámetros macroeconómicos no configurados para el año")
	ErrEntradaInvalida     = errors.New("entrada inválida")
)

// ConfigurationError indica una configuración ausente o inconsistente que
// impide ejecutar la corrida completa. Siempre es fatal.
type ConfigurationError struct {
	Motivo string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error de configuración: %s: %v", e.Motivo, e.Err)
	}
	return fmt.Sprintf("error de configuración: %s", e.Motivo)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// NewConfigurationError construye el error fatal de configuración.
func NewConfigurationError(motivo string, err error) *ConfigurationError {
	return &ConfigurationError{Motivo: motivo, Err: err}
}

// DataLoadError indica que los datos fuente de una marca no pudieron leerse.
// El orquestador lo registra y omite la marca; no aborta la corrida.
type DataLoadError struct {
	MarcaID string
	Origen  string // "comercial", "logistica", "ventas"
	Err     error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("carga de datos %s para marca %s: %v", e.Origen, e.MarcaID, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// ValidationError indica un insumo que no pasa las reglas del dominio:
// perfil de nómina desconocido, esquema de vehículo no soportado, rubro no
// compartido entregado al prorrateador. Fatal para ese cálculo; el mensaje
// incluye los valores válidos para corregir la entrada.
type ValidationError struct {
	Campo   string
	Valor   string
	Validos []string
}

func (e *ValidationError) Error() string {
	if len(e.Validos) == 0 {
		return fmt.Sprintf("%s inválido: %q", e.Campo, e.Valor)
	}
	return fmt.Sprintf("%s inválido: %q (válidos: %s)", e.Campo, e.Valor, strings.Join(e.Validos, ", "))
}

// NewValidationError construye el error con el campo, el valor rechazado y
// la lista de valores aceptados.
func NewValidationError(campo, valor string, validos []string) *ValidationError {
	return &ValidationError{Campo: campo, Valor: valor, Validos: validos}
}
