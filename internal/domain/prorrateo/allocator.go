package prorrateo

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/costeo-multimarca/internal/domain"
	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
	"github.com/jhoicas/costeo-multimarca/pkg/logger"
)

// ToleranciaDescuadre es la deriva máxima aceptada entre el total de un
// rubro y la suma de lo asignado: un peso.
var ToleranciaDescuadre = decimal.NewFromInt(1)

// Asignacion es la porción de un rubro compartido que recibe una marca.
type Asignacion struct {
	MarcaID string
	Factor  decimal.Decimal
	Valor   decimal.Decimal
}

// ResultadoRubro es el prorrateo completo de un rubro compartido.
type ResultadoRubro struct {
	Rubro        *entity.Rubro
	Asignaciones []Asignacion
}

// Allocator distribuye rubros compartidos entre las marcas activas según el
// criterio de cada rubro. Todo rubro compartido se asigna a todas las marcas
// activas; no existe participación parcial.
type Allocator struct {
	log *logger.Logger
}

// NewAllocator construye el prorrateador.
func NewAllocator(log *logger.Logger) *Allocator {
	return &Allocator{log: log}
}

// Prorratear asigna cada rubro compartido a todas las marcas activas.
// Precondición: al menos una marca activa (cero es error de configuración).
// Un rubro no compartido en la lista es ValidationError.
// La suma de lo asignado debe coincidir con el total del rubro dentro de $1;
// una deriva mayor produce advertencia de conciliación, nunca error.
func (a *Allocator) Prorratear(marcas []*entity.Marca, rubros []*entity.Rubro) ([]ResultadoRubro, []entity.Advertencia, error) {
	if len(marcas) == 0 {
		return nil, nil, domain.NewConfigurationError(
			"prorrateo sin marcas activas", domain.ErrSinMarcasActivas)
	}

	var resultados []ResultadoRubro
	var advertencias []entity.Advertencia

	for _, rubro := range rubros {
		if !rubro.EsCompartido() {
			return nil, nil, domain.NewValidationError(
				"asignación del rubro "+rubro.Nombre, rubro.Asignacion,
				[]string{entity.AsignacionCompartido})
		}

		criterio := rubro.Criterio
		if criterio == "" {
			criterio = entity.CriterioPorVentas
			a.log.Warn().Str("rubro", rubro.Nombre).
				Msg("rubro compartido sin criterio; se aplica por_ventas")
			advertencias = append(advertencias, entity.Advertencia{
				Codigo:  entity.AdvCriterioPorDefecto,
				Mensaje: fmt.Sprintf("rubro %q sin criterio de prorrateo; se aplicó por_ventas", rubro.Nombre),
			})
		}

		factores, advs, err := a.factores(criterio, marcas, rubro)
		if err != nil {
			return nil, nil, err
		}
		advertencias = append(advertencias, advs...)

		total := rubro.ValorTotal()
		res := ResultadoRubro{Rubro: rubro}
		sumaAsignada := decimal.Zero
		for i, m := range marcas {
			valor := total.Mul(factores[i]).Round(2)
			sumaAsignada = sumaAsignada.Add(valor)
			res.Asignaciones = append(res.Asignaciones, Asignacion{
				MarcaID: m.ID,
				Factor:  factores[i],
				Valor:   valor,
			})
		}

		if deriva := sumaAsignada.Sub(total).Abs(); deriva.GreaterThan(ToleranciaDescuadre) {
			a.log.Warn().Str("rubro", rubro.Nombre).
				Str("total", total.String()).
				Str("asignado", sumaAsignada.String()).
				Msg("descuadre de prorrateo por encima de la tolerancia")
			advertencias = append(advertencias, entity.Advertencia{
				Codigo: entity.AdvDescuadreProrrateo,
				Mensaje: fmt.Sprintf("rubro %q: total %s, asignado %s (deriva %s)",
					rubro.Nombre, total, sumaAsignada, deriva),
			})
		}
		resultados = append(resultados, res)
	}
	return resultados, advertencias, nil
}

// factores calcula el factor de asignación de cada marca (mismo orden que
// la lista de marcas). Métrica sumada en cero cae a partes iguales con
// advertencia; uso_real sin dedicación explícita también.
func (a *Allocator) factores(criterio entity.CriterioProrrateo, marcas []*entity.Marca, rubro *entity.Rubro) ([]decimal.Decimal, []entity.Advertencia, error) {
	switch criterio {
	case entity.CriterioPartesIguales:
		return partesIguales(len(marcas)), nil, nil

	case entity.CriterioPorVentas, entity.CriterioPorVolumen, entity.CriterioPorPersonal:
		metricas := make([]decimal.Decimal, len(marcas))
		suma := decimal.Zero
		for i, m := range marcas {
			metricas[i] = metrica(criterio, m)
			suma = suma.Add(metricas[i])
		}
		if !suma.IsPositive() {
			a.log.Warn().Str("rubro", rubro.Nombre).Str("criterio", string(criterio)).
				Msg("métrica del criterio en cero; partes iguales")
			adv := entity.Advertencia{
				Codigo: entity.AdvMetricaEnCero,
				Mensaje: fmt.Sprintf("rubro %q: la métrica de %s suma cero; se repartió en partes iguales",
					rubro.Nombre, criterio),
			}
			return partesIguales(len(marcas)), []entity.Advertencia{adv}, nil
		}
		factores := make([]decimal.Decimal, len(marcas))
		for i := range marcas {
			factores[i] = metricas[i].Div(suma)
		}
		return factores, nil, nil

	case entity.CriterioUsoReal:
		if len(rubro.PorcentajesUso) == 0 {
			a.log.Warn().Str("rubro", rubro.Nombre).
				Msg("uso_real sin porcentajes de dedicación; partes iguales")
			adv := entity.Advertencia{
				Codigo: entity.AdvUsoRealSinPorcentaje,
				Mensaje: fmt.Sprintf("rubro %q: uso_real sin dedicación explícita; se repartió en partes iguales",
					rubro.Nombre),
			}
			return partesIguales(len(marcas)), []entity.Advertencia{adv}, nil
		}
		factores := make([]decimal.Decimal, len(marcas))
		for i, m := range marcas {
			factores[i] = rubro.PorcentajesUso[m.ID] // marca sin dedicación recibe cero
		}
		return factores, nil, nil

	default:
		return nil, nil, domain.NewValidationError(
			"criterio de prorrateo", string(criterio), entity.CriteriosValidos())
	}
}

func metrica(criterio entity.CriterioProrrateo, m *entity.Marca) decimal.Decimal {
	switch criterio {
	case entity.CriterioPorVolumen:
		return m.VolumenM3
	case entity.CriterioPorPersonal:
		return decimal.NewFromInt(int64(m.Personal))
	default:
		return m.VentasMensuales
	}
}

func partesIguales(n int) []decimal.Decimal {
	factor := decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(n)))
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = factor
	}
	return out
}
