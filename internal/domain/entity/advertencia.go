package entity

// Códigos de advertencia de conciliación. Las advertencias son metadatos
// del resultado: nunca bloquean el cálculo.
const (
	AdvDescuadreProrrateo   = "DESCUADRE_PRORRATEO"     // suma asignada difiere del total en más de $1
	AdvTramosIncompletos    = "TRAMOS_INCOMPLETOS"      // fracciones de tramos no suman 100% de las ventas
	AdvCriterioPorDefecto   = "CRITERIO_POR_DEFECTO"    // rubro compartido sin criterio; se aplicó por_ventas
	AdvMetricaEnCero        = "METRICA_EN_CERO"         // métrica del criterio en cero; partes iguales
	AdvUsoRealSinPorcentaje = "USO_REAL_SIN_PORCENTAJE" // uso_real sin dedicación explícita; partes iguales
	AdvMarcaOmitida         = "MARCA_OMITIDA"           // carga de datos falló; la marca no participa
)

// Advertencia es un aviso de conciliación adjunto al resultado.
type Advertencia struct {
	Codigo  string `json:"codigo"`
	Mensaje string `json:"mensaje"`
}
