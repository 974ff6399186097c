package proyeccion

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/costeo-multimarca/internal/domain"
	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
	"github.com/jhoicas/costeo-multimarca/internal/domain/repository"
	"github.com/jhoicas/costeo-multimarca/pkg/logger"
)

// Projector crea escenarios nuevos a partir de uno existente: duplicados
// exactos del mismo año o proyecciones a otro año aplicando a cada campo
// monetario el índice de incremento configurado en su registro. El
// escenario origen nunca se muta.
type Projector struct {
	tx         TxRunner
	parametros repository.ParametrosRepository
	log        *logger.Logger
}

// NewProjector construye el proyector.
func NewProjector(tx TxRunner, parametros repository.ParametrosRepository, log *logger.Logger) *Projector {
	return &Projector{tx: tx, parametros: parametros, log: log}
}

// Duplicar copia un escenario al mismo año con incremento cero: los valores
// monetarios del duplicado son idénticos a los del origen.
func (p *Projector) Duplicar(ctx context.Context, escenarioID, nombre string) (*entity.Escenario, error) {
	return p.copiar(ctx, escenarioID, nombre, 0, nil)
}

// Proyectar copia un escenario al año destino incrementando cada campo
// monetario con su índice, resuelto contra los parámetros macro del año
// destino. Si el destino no tiene parámetros configurados, todos los
// incrementos son cero y los registros se copian sin cambio.
func (p *Projector) Proyectar(ctx context.Context, escenarioID string, anioDestino int, nombre string) (*entity.Escenario, error) {
	params, err := p.parametros.GetByAnio(anioDestino)
	if err != nil {
		return nil, fmt.Errorf("cargar parámetros del año %d: %w", anioDestino, err)
	}
	if params == nil {
		p.log.Warn().Int("anio", anioDestino).
			Msg("año destino sin parámetros macro; se copia sin incrementos")
	}
	return p.copiar(ctx, escenarioID, nombre, anioDestino, params)
}

// copiar ejecuta la copia completa dentro de una sola transacción.
// params nil significa incremento cero para todos los índices.
func (p *Projector) copiar(ctx context.Context, escenarioID, nombre string, anioDestino int, params *entity.ParametrosMacro) (*entity.Escenario, error) {
	var nuevo *entity.Escenario

	err := p.tx.Run(ctx, func(escenarios repository.EscenarioRepository, registros repository.RegistroRepository) error {
		origen, err := escenarios.GetByID(escenarioID)
		if err != nil {
			return fmt.Errorf("cargar escenario origen: %w", err)
		}
		if origen == nil {
			return fmt.Errorf("escenario %s: %w", escenarioID, domain.ErrNotFound)
		}

		anio := origen.Anio
		if anioDestino != 0 {
			anio = anioDestino
		}
		nuevo = &entity.Escenario{
			ID:       uuid.NewString(),
			Nombre:   nombre,
			Anio:     anio,
			Periodo:  origen.Periodo,
			Activo:   false,
			OrigenID: origen.ID,
		}
		if err := escenarios.Create(nuevo); err != nil {
			return fmt.Errorf("crear escenario destino: %w", err)
		}

		if err := p.copiarPersonal(registros, origen.ID, nuevo.ID, params); err != nil {
			return err
		}
		if err := p.copiarVehiculos(registros, origen.ID, nuevo.ID, params); err != nil {
			return err
		}
		if err := p.copiarGastos(registros, origen.ID, nuevo.ID, params); err != nil {
			return err
		}
		if err := p.copiarVentas(registros, origen.ID, nuevo.ID, params); err != nil {
			return err
		}
		if err := p.copiarDesplazables(registros, origen.ID, nuevo.ID); err != nil {
			return err
		}
		return p.copiarConfiguraciones(registros, origen.ID, nuevo.ID)
	})
	if err != nil {
		return nil, err
	}

	p.log.Info().Str("origen", escenarioID).Str("destino", nuevo.ID).
		Int("anio", nuevo.Anio).Msg("escenario copiado")
	return nuevo, nil
}

func (p *Projector) copiarPersonal(repos repository.RegistroRepository, origenID, destinoID string, params *entity.ParametrosMacro) error {
	lista, err := repos.ListPersonal(origenID)
	if err != nil {
		return fmt.Errorf("listar personal: %w", err)
	}
	for _, r := range lista {
		copia := *r
		copia.ID = uuid.NewString()
		copia.EscenarioID = destinoID
		copia.SalarioBase = r.Indice.Incrementar(r.SalarioBase, params)
		copia.Extras = r.Indice.Incrementar(r.Extras, params)
		if err := repos.CreatePersonal(&copia); err != nil {
			return fmt.Errorf("copiar personal %s: %w", r.ID, err)
		}
	}
	return nil
}

func (p *Projector) copiarVehiculos(repos repository.RegistroRepository, origenID, destinoID string, params *entity.ParametrosMacro) error {
	lista, err := repos.ListVehiculos(origenID)
	if err != nil {
		return fmt.Errorf("listar vehículos: %w", err)
	}
	for _, r := range lista {
		copia := *r
		copia.ID = uuid.NewString()
		copia.EscenarioID = destinoID
		copia.Canon = r.Indice.Incrementar(r.Canon, params)
		copia.Combustible = r.Indice.Incrementar(r.Combustible, params)
		copia.Lavado = r.Indice.Incrementar(r.Lavado, params)
		copia.Surtido = r.Indice.Incrementar(r.Surtido, params)
		copia.PrecioCompra = r.Indice.Incrementar(r.PrecioCompra, params)
		copia.ValorResidual = r.Indice.Incrementar(r.ValorResidual, params)
		copia.Mantenimiento = r.Indice.Incrementar(r.Mantenimiento, params)
		copia.Seguros = r.Indice.Incrementar(r.Seguros, params)
		copia.Impuestos = r.Indice.Incrementar(r.Impuestos, params)
		copia.TarifaMensual = r.Indice.Incrementar(r.TarifaMensual, params)
		if err := repos.CreateVehiculo(&copia); err != nil {
			return fmt.Errorf("copiar vehículo %s: %w", r.ID, err)
		}
	}
	return nil
}

func (p *Projector) copiarGastos(repos repository.RegistroRepository, origenID, destinoID string, params *entity.ParametrosMacro) error {
	lista, err := repos.ListGastos(origenID)
	if err != nil {
		return fmt.Errorf("listar gastos: %w", err)
	}
	for _, r := range lista {
		copia := *r
		copia.ID = uuid.NewString()
		copia.EscenarioID = destinoID
		copia.ValorUnitario = r.Indice.Incrementar(r.ValorUnitario, params)
		if err := repos.CreateGasto(&copia); err != nil {
			return fmt.Errorf("copiar gasto %s: %w", r.ID, err)
		}
	}
	return nil
}

func (p *Projector) copiarVentas(repos repository.RegistroRepository, origenID, destinoID string, params *entity.ParametrosMacro) error {
	lista, err := repos.ListProyecciones(origenID)
	if err != nil {
		return fmt.Errorf("listar proyecciones de ventas: %w", err)
	}
	for _, r := range lista {
		copia := *r
		copia.ID = uuid.NewString()
		copia.EscenarioID = destinoID
		copia.VentasMes = r.Indice.Incrementar(r.VentasMes, params)
		if err := repos.CreateProyeccion(&copia); err != nil {
			return fmt.Errorf("copiar proyección %s: %w", r.ID, err)
		}
	}
	return nil
}

// copiarDesplazables copia zonas y rutas; no tienen campos monetarios, así
// que la copia es literal con IDs nuevos.
func (p *Projector) copiarDesplazables(repos repository.RegistroRepository, origenID, destinoID string) error {
	zonas, err := repos.ListZonas(origenID)
	if err != nil {
		return fmt.Errorf("listar zonas: %w", err)
	}
	for _, z := range zonas {
		copia := *z
		copia.ID = uuid.NewString()
		copia.EscenarioID = destinoID
		if err := repos.CreateZona(&copia); err != nil {
			return fmt.Errorf("copiar zona %s: %w", z.ID, err)
		}
	}

	rutas, err := repos.ListRutas(origenID)
	if err != nil {
		return fmt.Errorf("listar rutas: %w", err)
	}
	for _, r := range rutas {
		copia := *r
		copia.ID = uuid.NewString()
		copia.EscenarioID = destinoID
		if err := repos.CreateRuta(&copia); err != nil {
			return fmt.Errorf("copiar ruta %s: %w", r.ID, err)
		}
	}
	return nil
}

// copiarConfiguraciones copia la configuración de descuentos y la de
// lejanías. Sus tasas son fracciones, no montos: van sin incremento.
func (p *Projector) copiarConfiguraciones(repos repository.RegistroRepository, origenID, destinoID string) error {
	configs, err := repos.ListConfigDescuentos(origenID)
	if err != nil {
		return fmt.Errorf("listar config de descuentos: %w", err)
	}
	for _, c := range configs {
		copia := *c
		copia.ID = uuid.NewString()
		copia.EscenarioID = destinoID
		copia.Tramos = append([]entity.TramoDescuento(nil), c.Tramos...)
		if err := repos.CreateConfigDescuentos(&copia); err != nil {
			return fmt.Errorf("copiar config de descuentos %s: %w", c.ID, err)
		}
	}

	lej, err := repos.GetConfigLejania(origenID)
	if err != nil {
		return fmt.Errorf("cargar config de lejanías: %w", err)
	}
	if lej == nil {
		return nil
	}
	copia := *lej
	copia.EscenarioID = destinoID
	copia.RendimientoPorClase = make(map[string]decimal.Decimal, len(lej.RendimientoPorClase))
	for k, v := range lej.RendimientoPorClase {
		copia.RendimientoPorClase[k] = v
	}
	if err := repos.CreateConfigLejania(&copia); err != nil {
		return fmt.Errorf("copiar config de lejanías: %w", err)
	}
	return nil
}
