package simulacion

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/costeo-multimarca/internal/application/dto"
	"github.com/jhoicas/costeo-multimarca/internal/domain"
	"github.com/jhoicas/costeo-multimarca/internal/domain/descuentos"
	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
	"github.com/jhoicas/costeo-multimarca/internal/domain/lejania"
	"github.com/jhoicas/costeo-multimarca/internal/domain/prorrateo"
	"github.com/jhoicas/costeo-multimarca/internal/domain/repository"
	"github.com/jhoicas/costeo-multimarca/pkg/logger"
)

// Estados de una corrida de simulación.
type Estado string

const (
	EstadoIdle           Estado = "idle"
	EstadoCargandoMarcas Estado = "cargando_marcas"
	EstadoRubrosListos   Estado = "rubros_construidos"
	EstadoProrrateado    Estado = "prorrateado"
	EstadoAgregado       Estado = "agregado"
	EstadoCompletado     Estado = "completado"
	EstadoFallido        Estado = "fallido"
)

// Deps agrupa los colaboradores del simulador.
type Deps struct {
	Escenarios     repository.EscenarioRepository
	Marcas         repository.MarcaRepository
	Comercial      repository.ComercialRepository
	Logistica      repository.LogisticaRepository
	Administrativo repository.AdministrativoRepository
	Ventas         repository.ProyeccionVentasRepository
	Factores       repository.FactoresRepository
	Parametros     repository.ParametrosRepository
	Lejanias       repository.LejaniaRepository
	Log            *logger.Logger
}

// Simulator orquesta la corrida completa: carga el snapshot del escenario,
// construye rubros, prorratea los compartidos y agrega por marca y
// consolidado. Cada corrida usa acumuladores propios, así que el resultado
// es función pura del snapshot y la instancia es reutilizable entre
// corridas concurrentes.
type Simulator struct {
	deps Deps
}

// NewSimulator construye el orquestador con sus colaboradores.
func NewSimulator(deps Deps) *Simulator {
	return &Simulator{deps: deps}
}

// Simular ejecuta una corrida. marcaIDs vacío simula todas las activas.
// Una marca cuyos datos no cargan se omite con registro; cero marcas
// cargadas es fatal. El snapshot se lee una sola vez al inicio: ningún
// repositorio se reconsulta durante la agregación.
func (s *Simulator) Simular(ctx context.Context, marcaIDs []string) (*dto.ResultadoSimulacion, error) {
	run := &ejecucion{sim: s, estado: EstadoIdle}
	res, err := run.ejecutar(ctx, marcaIDs)
	if err != nil {
		s.deps.Log.Error().Err(err).Str("estado", string(run.estado)).Msg("simulación fallida")
		return nil, err
	}
	return res, nil
}

// ejecucion acumula el estado de una corrida; se descarta al terminar.
type ejecucion struct {
	sim    *Simulator
	estado Estado

	escenario    *entity.Escenario
	constructor  *constructorRubros
	lejCalc      *lejania.Calculator
	descCalc     *descuentos.Calculator
	marcas       []*entity.Marca
	compartidos  []*entity.Rubro
	advertencias []entity.Advertencia
	omitidas     []string
}

func (e *ejecucion) ejecutar(ctx context.Context, marcaIDs []string) (*dto.ResultadoSimulacion, error) {
	d := e.sim.deps

	// Snapshot de configuración.
	escenario, err := d.Escenarios.GetActivo()
	if err != nil {
		return nil, fmt.Errorf("resolver escenario activo: %w", err)
	}
	if escenario == nil {
		e.estado = EstadoFallido
		return nil, domain.NewConfigurationError("sin escenario activo", domain.ErrEscenarioNoActivo)
	}
	e.escenario = escenario

	params, err := d.Parametros.GetByAnio(escenario.Anio)
	if err != nil {
		return nil, fmt.Errorf("cargar parámetros macro: %w", err)
	}
	if params == nil {
		e.estado = EstadoFallido
		return nil, domain.NewConfigurationError(
			fmt.Sprintf("parámetros macro del año %d", escenario.Anio), domain.ErrParametrosFaltantes)
	}

	factores, err := d.Factores.ListAll()
	if err != nil {
		return nil, fmt.Errorf("cargar factores prestacionales: %w", err)
	}
	e.constructor = newConstructorRubros(factores, params, d.Log)
	e.descCalc = descuentos.NewCalculator()

	if lejCfg, err := d.Lejanias.GetConfiguracion(escenario.ID); err != nil {
		return nil, fmt.Errorf("cargar configuración de lejanías: %w", err)
	} else if lejCfg != nil {
		desplazamientos, err := d.Lejanias.ListDesplazamientos()
		if err != nil {
			return nil, fmt.Errorf("cargar matriz de desplazamientos: %w", err)
		}
		e.lejCalc = lejania.NewCalculator(lejCfg, entity.NewMatrizDesplazamiento(desplazamientos))
	} else {
		d.Log.Warn().Str("escenario", escenario.ID).
			Msg("escenario sin configuración de lejanías; el costo por distancia será cero")
	}

	// Carga por marca, tolerante a fallas parciales.
	e.estado = EstadoCargandoMarcas
	objetivo, err := e.resolverMarcas(marcaIDs)
	if err != nil {
		e.estado = EstadoFallido
		return nil, err
	}
	for _, marca := range objetivo {
		if err := e.cargarMarca(marca); err != nil {
			d.Log.Warn().Err(err).Str("marca", marca.ID).Msg("marca omitida de la corrida")
			e.omitidas = append(e.omitidas, marca.ID)
			e.advertencias = append(e.advertencias, entity.Advertencia{
				Codigo:  entity.AdvMarcaOmitida,
				Mensaje: fmt.Sprintf("marca %s omitida: %v", marca.ID, err),
			})
			continue
		}
		e.marcas = append(e.marcas, marca)
	}
	if len(e.marcas) == 0 {
		e.estado = EstadoFallido
		return nil, domain.NewConfigurationError("ninguna marca cargó datos", domain.ErrSinMarcasCargadas)
	}

	// Rubros administrativos compartidos (sin marca).
	if err := e.cargarAdministrativos(); err != nil {
		e.estado = EstadoFallido
		return nil, err
	}
	e.estado = EstadoRubrosListos

	// Prorrateo: una sola invocación contra el pool completo.
	alloc := prorrateo.NewAllocator(d.Log)
	resultados, advs, err := alloc.Prorratear(e.marcas, e.compartidos)
	if err != nil {
		e.estado = EstadoFallido
		return nil, err
	}
	e.advertencias = append(e.advertencias, advs...)
	for _, rr := range resultados {
		for _, asg := range rr.Asignaciones {
			for _, m := range e.marcas {
				if m.ID == asg.MarcaID {
					m.AgregarAsignado(entity.RubroAsignado{
						Rubro: rr.Rubro, Factor: asg.Factor, Valor: asg.Valor,
					})
				}
			}
		}
	}
	e.estado = EstadoProrrateado

	// Agregación por marca y consolidado.
	for _, m := range e.marcas {
		m.Totalizar()
	}
	e.estado = EstadoAgregado

	res := e.armarResultado()
	e.estado = EstadoCompletado
	res.Estado = string(EstadoCompletado)
	return res, nil
}

// resolverMarcas materializa la lista objetivo: IDs explícitos o todas las
// activas. Las instancias vienen frescas del repositorio en cada corrida.
func (e *ejecucion) resolverMarcas(marcaIDs []string) ([]*entity.Marca, error) {
	d := e.sim.deps
	if len(marcaIDs) == 0 {
		marcas, err := d.Marcas.ListActivas()
		if err != nil {
			return nil, fmt.Errorf("listar marcas activas: %w", err)
		}
		if len(marcas) == 0 {
			return nil, domain.NewConfigurationError("sin marcas activas", domain.ErrSinMarcasActivas)
		}
		return marcas, nil
	}

	var marcas []*entity.Marca
	for _, id := range marcaIDs {
		m, err := d.Marcas.GetByID(id)
		if err != nil {
			return nil, fmt.Errorf("cargar marca %s: %w", id, err)
		}
		if m == nil {
			return nil, domain.NewValidationError("marca", id, nil)
		}
		marcas = append(marcas, m)
	}
	return marcas, nil
}

// cargarMarca trae el snapshot comercial, logístico y de ventas de una
// marca y lo convierte en rubros. Cualquier falla de lectura se envuelve en
// DataLoadError para que el llamador omita la marca.
func (e *ejecucion) cargarMarca(marca *entity.Marca) error {
	d := e.sim.deps
	escID := e.escenario.ID

	ventas, err := d.Ventas.GetByMarca(escID, marca.ID)
	if err != nil {
		return &domain.DataLoadError{MarcaID: marca.ID, Origen: "ventas", Err: err}
	}
	if ventas != nil {
		marca.VentasMensuales = ventas.VentasMes
		marca.VentasAnuales = ventas.VentasMes.Mul(decimal.NewFromInt(12))
		marca.VolumenM3 = ventas.VolumenM3
		marca.Toneladas = ventas.Toneladas
		marca.Estibas = ventas.Estibas
	}

	// Comercial: personal, zonas de vendedores y descuentos.
	personalComercial, err := d.Comercial.ListPersonal(escID, marca.ID)
	if err != nil {
		return &domain.DataLoadError{MarcaID: marca.ID, Origen: "comercial", Err: err}
	}
	zonas, err := d.Comercial.ListZonas(escID, marca.ID)
	if err != nil {
		return &domain.DataLoadError{MarcaID: marca.ID, Origen: "comercial", Err: err}
	}
	cfgDesc, err := d.Comercial.GetConfigDescuentos(escID, marca.ID)
	if err != nil {
		return &domain.DataLoadError{MarcaID: marca.ID, Origen: "comercial", Err: err}
	}

	// Logística: flota, personal, gastos y rutas.
	vehiculosReg, err := d.Logistica.ListVehiculos(escID, marca.ID)
	if err != nil {
		return &domain.DataLoadError{MarcaID: marca.ID, Origen: "logistica", Err: err}
	}
	personalLogistico, err := d.Logistica.ListPersonal(escID, marca.ID)
	if err != nil {
		return &domain.DataLoadError{MarcaID: marca.ID, Origen: "logistica", Err: err}
	}
	gastos, err := d.Logistica.ListGastos(escID, marca.ID)
	if err != nil {
		return &domain.DataLoadError{MarcaID: marca.ID, Origen: "logistica", Err: err}
	}
	rutas, err := d.Logistica.ListRutas(escID, marca.ID)
	if err != nil {
		return &domain.DataLoadError{MarcaID: marca.ID, Origen: "logistica", Err: err}
	}

	// Registros → rubros: individuales a la marca, compartidos al pool.
	for _, reg := range append(personalComercial, personalLogistico...) {
		rubro, err := e.constructor.desdePersonal(reg)
		if err != nil {
			d.Log.Warn().Err(err).Str("marca", marca.ID).Str("cargo", reg.Cargo).
				Msg("registro de personal descartado")
			continue
		}
		marca.Personal += int(reg.Cantidad.IntPart())
		e.clasificar(marca, rubro)
	}
	for _, reg := range vehiculosReg {
		rubro, err := e.constructor.desdeVehiculo(reg)
		if err != nil {
			d.Log.Warn().Err(err).Str("marca", marca.ID).Str("tipo", reg.TipoVehiculo).
				Msg("registro de vehículo descartado")
			continue
		}
		e.clasificar(marca, rubro)
	}
	for _, reg := range gastos {
		e.clasificar(marca, e.constructor.desdeGasto(reg))
	}

	// Descuentos sobre las ventas brutas del mes.
	resDesc := e.descCalc.Calcular(marca.VentasMensuales, cfgDesc)
	marca.DescuentoPieFactura = resDesc.PieFactura
	marca.DescuentoRebate = resDesc.Rebate
	marca.DescuentoFinanciero = resDesc.Financiero
	e.advertencias = append(e.advertencias, resDesc.Advertencias...)

	// Lejanías.
	if e.lejCalc != nil {
		lej := e.lejCalc.CalcularMarca(marca.ID, zonas, rutas)
		marca.LejaniaCombustible = lej.CombustibleMensual
		marca.LejaniaPernoctacion = lej.PernoctacionMensual
		marca.CostoLejaniaMensual = lej.TotalMensual
		marca.CostoLejaniaAnual = lej.TotalAnual
	}
	return nil
}

// cargarAdministrativos suma al pool los registros compartidos que no
// pertenecen a ninguna marca.
func (e *ejecucion) cargarAdministrativos() error {
	d := e.sim.deps
	personal, err := d.Administrativo.ListPersonalCompartido(e.escenario.ID)
	if err != nil {
		return fmt.Errorf("cargar personal administrativo: %w", err)
	}
	for _, reg := range personal {
		rubro, err := e.constructor.desdePersonal(reg)
		if err != nil {
			d.Log.Warn().Err(err).Str("cargo", reg.Cargo).
				Msg("registro administrativo descartado")
			continue
		}
		rubro.Asignacion = entity.AsignacionCompartido
		e.compartidos = append(e.compartidos, rubro)
	}

	gastos, err := d.Administrativo.ListGastosCompartidos(e.escenario.ID)
	if err != nil {
		return fmt.Errorf("cargar gastos administrativos: %w", err)
	}
	for _, reg := range gastos {
		rubro := e.constructor.desdeGasto(reg)
		rubro.Asignacion = entity.AsignacionCompartido
		e.compartidos = append(e.compartidos, rubro)
	}
	return nil
}

// clasificar envía el rubro a la marca (individual) o al pool (compartido).
func (e *ejecucion) clasificar(marca *entity.Marca, rubro *entity.Rubro) {
	if rubro.EsCompartido() {
		e.compartidos = append(e.compartidos, rubro)
		return
	}
	rubro.MarcaID = marca.ID
	marca.AgregarIndividual(rubro)
}

func (e *ejecucion) armarResultado() *dto.ResultadoSimulacion {
	res := &dto.ResultadoSimulacion{
		EscenarioID:     e.escenario.ID,
		EscenarioNombre: e.escenario.Nombre,
		Anio:            e.escenario.Anio,
		MarcasOmitidas:  e.omitidas,
		Advertencias:    e.advertencias,
	}
	for _, m := range e.marcas {
		res.Marcas = append(res.Marcas, dto.DesdeMarca(m))

		res.Consolidado.VentasTotales = res.Consolidado.VentasTotales.Add(m.VentasMensuales)
		res.Consolidado.CostoComercial = res.Consolidado.CostoComercial.Add(m.CostoComercial)
		res.Consolidado.CostoLogistico = res.Consolidado.CostoLogistico.Add(m.CostoLogistico)
		res.Consolidado.CostoAdministrativo = res.Consolidado.CostoAdministrativo.Add(m.CostoAdministrativo)
		res.Consolidado.CostoTotal = res.Consolidado.CostoTotal.Add(m.CostoTotal)
		res.Consolidado.Margen = res.Consolidado.Margen.Add(m.Margen)
		res.Consolidado.Personal += m.Personal
	}
	return res
}
