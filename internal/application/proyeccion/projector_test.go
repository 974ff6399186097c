package proyeccion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/costeo-multimarca/internal/application/proyeccion"
	"github.com/jhoicas/costeo-multimarca/internal/domain"
	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
	"github.com/jhoicas/costeo-multimarca/internal/domain/repository"
	"github.com/jhoicas/costeo-multimarca/pkg/logger"
)

// almacen guarda escenarios y registros en memoria e implementa los dos
// puertos que la transacción entrega al proyector.
type almacen struct {
	escenarios   map[string]*entity.Escenario
	personal     []*entity.RegistroPersonal
	vehiculos    []*entity.RegistroVehiculo
	gastos       []*entity.RegistroGasto
	zonas        []*entity.ZonaComercial
	rutas        []*entity.RutaLogistica
	proyecciones []*entity.ProyeccionVentas
	descuentos   []*entity.ConfigDescuentos
	lejanias     map[string]*entity.ConfiguracionLejania

	fallaCrearGasto bool
}

func nuevoAlmacen() *almacen {
	return &almacen{
		escenarios: map[string]*entity.Escenario{},
		lejanias:   map[string]*entity.ConfiguracionLejania{},
	}
}

func (a *almacen) GetActivo() (*entity.Escenario, error) { return nil, nil }
func (a *almacen) GetByID(id string) (*entity.Escenario, error) {
	return a.escenarios[id], nil
}
func (a *almacen) Create(e *entity.Escenario) error {
	a.escenarios[e.ID] = e
	return nil
}
func (a *almacen) ListByAnio(anio int) ([]*entity.Escenario, error) { return nil, nil }

func filtrar[T any](lista []*T, pred func(*T) bool) []*T {
	var out []*T
	for _, r := range lista {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func (a *almacen) ListPersonal(id string) ([]*entity.RegistroPersonal, error) {
	return filtrar(a.personal, func(r *entity.RegistroPersonal) bool { return r.EscenarioID == id }), nil
}
func (a *almacen) ListVehiculos(id string) ([]*entity.RegistroVehiculo, error) {
	return filtrar(a.vehiculos, func(r *entity.RegistroVehiculo) bool { return r.EscenarioID == id }), nil
}
func (a *almacen) ListGastos(id string) ([]*entity.RegistroGasto, error) {
	return filtrar(a.gastos, func(r *entity.RegistroGasto) bool { return r.EscenarioID == id }), nil
}
func (a *almacen) ListZonas(id string) ([]*entity.ZonaComercial, error) {
	return filtrar(a.zonas, func(r *entity.ZonaComercial) bool { return r.EscenarioID == id }), nil
}
func (a *almacen) ListRutas(id string) ([]*entity.RutaLogistica, error) {
	return filtrar(a.rutas, func(r *entity.RutaLogistica) bool { return r.EscenarioID == id }), nil
}
func (a *almacen) ListProyecciones(id string) ([]*entity.ProyeccionVentas, error) {
	return filtrar(a.proyecciones, func(r *entity.ProyeccionVentas) bool { return r.EscenarioID == id }), nil
}
func (a *almacen) ListConfigDescuentos(id string) ([]*entity.ConfigDescuentos, error) {
	return filtrar(a.descuentos, func(r *entity.ConfigDescuentos) bool { return r.EscenarioID == id }), nil
}
func (a *almacen) GetConfigLejania(id string) (*entity.ConfiguracionLejania, error) {
	return a.lejanias[id], nil
}

func (a *almacen) CreatePersonal(r *entity.RegistroPersonal) error {
	a.personal = append(a.personal, r)
	return nil
}
func (a *almacen) CreateVehiculo(r *entity.RegistroVehiculo) error {
	a.vehiculos = append(a.vehiculos, r)
	return nil
}
func (a *almacen) CreateGasto(r *entity.RegistroGasto) error {
	if a.fallaCrearGasto {
		return errors.New("disco lleno")
	}
	a.gastos = append(a.gastos, r)
	return nil
}
func (a *almacen) CreateZona(z *entity.ZonaComercial) error {
	a.zonas = append(a.zonas, z)
	return nil
}
func (a *almacen) CreateRuta(r *entity.RutaLogistica) error {
	a.rutas = append(a.rutas, r)
	return nil
}
func (a *almacen) CreateProyeccion(p *entity.ProyeccionVentas) error {
	a.proyecciones = append(a.proyecciones, p)
	return nil
}
func (a *almacen) CreateConfigDescuentos(c *entity.ConfigDescuentos) error {
	a.descuentos = append(a.descuentos, c)
	return nil
}
func (a *almacen) CreateConfigLejania(c *entity.ConfiguracionLejania) error {
	a.lejanias[c.EscenarioID] = c
	return nil
}

// parametrosFake entrega parámetros macro por año.
type parametrosFake struct {
	porAnio map[int]*entity.ParametrosMacro
}

func (p parametrosFake) GetByAnio(anio int) (*entity.ParametrosMacro, error) {
	return p.porAnio[anio], nil
}

// txFake simula la transacción: toma una copia del estado antes de fn y lo
// restaura si fn falla, emulando el rollback todo-o-nada.
type txFake struct{ a *almacen }

func (t txFake) Run(ctx context.Context, fn func(repository.EscenarioRepository, repository.RegistroRepository) error) error {
	antes := *t.a
	antesEscenarios := make(map[string]*entity.Escenario, len(t.a.escenarios))
	for k, v := range t.a.escenarios {
		antesEscenarios[k] = v
	}
	if err := fn(t.a, t.a); err != nil {
		*t.a = antes
		t.a.escenarios = antesEscenarios
		return err
	}
	return nil
}

func almacenPrueba() *almacen {
	a := nuevoAlmacen()
	a.escenarios["esc1"] = &entity.Escenario{
		ID: "esc1", Nombre: "plan 2025", Anio: 2025, Periodo: entity.PeriodoPlan,
	}
	a.personal = append(a.personal, &entity.RegistroPersonal{
		ID: "p1", EscenarioID: "esc1", MarcaID: "m1", Cargo: "vendedor",
		SalarioBase: decimal.NewFromInt(2_000_000),
		Extras:      decimal.NewFromInt(100_000),
		Cantidad:    decimal.NewFromInt(2),
		Indice:      entity.IndiceSalarial,
	})
	a.gastos = append(a.gastos, &entity.RegistroGasto{
		ID: "g1", EscenarioID: "esc1", Nombre: "arriendo",
		ValorUnitario: decimal.NewFromInt(1_000_000),
		Cantidad:      decimal.NewFromInt(1),
		Indice:        entity.IndiceIPC,
	})
	a.gastos = append(a.gastos, &entity.RegistroGasto{
		ID: "g2", EscenarioID: "esc1", Nombre: "poliza fija",
		ValorUnitario: decimal.NewFromInt(500_000),
		Cantidad:      decimal.NewFromInt(1),
		Indice:        entity.IndiceFijo,
	})
	a.proyecciones = append(a.proyecciones, &entity.ProyeccionVentas{
		ID: "pv1", EscenarioID: "esc1", MarcaID: "m1",
		VentasMes: decimal.NewFromInt(60_000_000),
		Indice:    entity.IndiceIPC,
	})
	return a
}

func proyectorDe(a *almacen, params map[int]*entity.ParametrosMacro) *proyeccion.Projector {
	return proyeccion.NewProjector(txFake{a}, parametrosFake{params}, logger.Nop())
}

func TestDuplicar_CopiaIdentica(t *testing.T) {
	a := almacenPrueba()
	proj := proyectorDe(a, nil)

	nuevo, err := proj.Duplicar(context.Background(), "esc1", "copia plan 2025")
	require.NoError(t, err)
	require.NotNil(t, nuevo)
	assert.Equal(t, 2025, nuevo.Anio, "duplicar conserva el año")
	assert.Equal(t, "esc1", nuevo.OrigenID)
	assert.NotEqual(t, "esc1", nuevo.ID)
	assert.False(t, nuevo.Activo, "el duplicado nace inactivo")

	copiados, err := a.ListPersonal(nuevo.ID)
	require.NoError(t, err)
	require.Len(t, copiados, 1)
	assert.True(t, copiados[0].SalarioBase.Equal(decimal.NewFromInt(2_000_000)),
		"incremento cero: valores idénticos")
	assert.NotEqual(t, "p1", copiados[0].ID, "el registro copiado tiene ID nuevo")
}

func TestProyectar_AplicaIndices(t *testing.T) {
	a := almacenPrueba()
	proj := proyectorDe(a, map[int]*entity.ParametrosMacro{
		2026: {
			Anio:               2026,
			IPC:                decimal.NewFromFloat(0.05),
			IncrementoSalarial: decimal.NewFromFloat(0.10),
		},
	})

	nuevo, err := proj.Proyectar(context.Background(), "esc1", 2026, "plan 2026")
	require.NoError(t, err)
	assert.Equal(t, 2026, nuevo.Anio)

	personal, _ := a.ListPersonal(nuevo.ID)
	require.Len(t, personal, 1)
	assert.True(t, personal[0].SalarioBase.Equal(decimal.NewFromInt(2_200_000)),
		"salario con incremento salarial del 10%%: %s", personal[0].SalarioBase)
	assert.True(t, personal[0].Extras.Equal(decimal.NewFromInt(110_000)))

	gastos, _ := a.ListGastos(nuevo.ID)
	require.Len(t, gastos, 2)
	porNombre := map[string]decimal.Decimal{}
	for _, g := range gastos {
		porNombre[g.Nombre] = g.ValorUnitario
	}
	assert.True(t, porNombre["arriendo"].Equal(decimal.NewFromInt(1_050_000)),
		"IPC 5%%: %s", porNombre["arriendo"])
	assert.True(t, porNombre["poliza fija"].Equal(decimal.NewFromInt(500_000)),
		"índice fijo no incrementa")

	ventas, _ := a.ListProyecciones(nuevo.ID)
	require.Len(t, ventas, 1)
	assert.True(t, ventas[0].VentasMes.Equal(decimal.NewFromInt(63_000_000)))
}

func TestProyectar_SinParametrosDestinoCopiaSinCambio(t *testing.T) {
	a := almacenPrueba()
	proj := proyectorDe(a, nil)

	nuevo, err := proj.Proyectar(context.Background(), "esc1", 2027, "plan 2027")
	require.NoError(t, err)

	gastos, _ := a.ListGastos(nuevo.ID)
	require.Len(t, gastos, 2)
	for _, g := range gastos {
		original := decimal.NewFromInt(1_000_000)
		if g.Nombre == "poliza fija" {
			original = decimal.NewFromInt(500_000)
		}
		assert.True(t, g.ValorUnitario.Equal(original), "%s: %s", g.Nombre, g.ValorUnitario)
	}
}

func TestProyectar_EscenarioInexistente(t *testing.T) {
	proj := proyectorDe(nuevoAlmacen(), nil)

	_, err := proj.Duplicar(context.Background(), "no-existe", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProyectar_FallaDeshaceTodo(t *testing.T) {
	a := almacenPrueba()
	a.fallaCrearGasto = true
	proj := proyectorDe(a, nil)

	_, err := proj.Duplicar(context.Background(), "esc1", "copia")
	require.Error(t, err)

	// La transacción revierte: no queda ni el escenario ni ningún hijo.
	assert.Len(t, a.escenarios, 1, "solo sobrevive el origen")
	personalCopiado := 0
	for _, p := range a.personal {
		if p.EscenarioID != "esc1" {
			personalCopiado++
		}
	}
	assert.Zero(t, personalCopiado, "todo o nada")
}
