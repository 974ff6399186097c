package repository

import "github.com/jhoicas/costeo-multimarca/internal/domain/entity"

// ComercialRepository entrega los datos comerciales de una marca en un
// escenario: personal de ventas, zonas de vendedores y configuración de
// descuentos.
type ComercialRepository interface {
	ListPersonal(escenarioID, marcaID string) ([]*entity.RegistroPersonal, error)
	ListZonas(escenarioID, marcaID string) ([]*entity.ZonaComercial, error)
	GetConfigDescuentos(escenarioID, marcaID string) (*entity.ConfigDescuentos, error)
}

// LogisticaRepository entrega los datos logísticos de una marca:
// flota, personal de bodega y reparto, gastos y rutas.
type LogisticaRepository interface {
	ListVehiculos(escenarioID, marcaID string) ([]*entity.RegistroVehiculo, error)
	ListPersonal(escenarioID, marcaID string) ([]*entity.RegistroPersonal, error)
	ListGastos(escenarioID, marcaID string) ([]*entity.RegistroGasto, error)
	ListRutas(escenarioID, marcaID string) ([]*entity.RutaLogistica, error)
}

// AdministrativoRepository entrega los registros administrativos que no
// pertenecen a una marca (siempre compartidos).
type AdministrativoRepository interface {
	ListPersonalCompartido(escenarioID string) ([]*entity.RegistroPersonal, error)
	ListGastosCompartidos(escenarioID string) ([]*entity.RegistroGasto, error)
}

// ProyeccionVentasRepository entrega las cifras mensuales proyectadas.
type ProyeccionVentasRepository interface {
	GetByMarca(escenarioID, marcaID string) (*entity.ProyeccionVentas, error)
}
