package repository

import "github.com/jhoicas/costeo-multimarca/internal/domain/entity"

// RegistroRepository lee y escribe los registros hijos de un escenario
// completo. Lo usa la proyección de escenarios, que copia todos los hijos
// dentro de una sola transacción; el adaptador debe poder atarse a una tx.
type RegistroRepository interface {
	ListPersonal(escenarioID string) ([]*entity.RegistroPersonal, error)
	ListVehiculos(escenarioID string) ([]*entity.RegistroVehiculo, error)
	ListGastos(escenarioID string) ([]*entity.RegistroGasto, error)
	ListZonas(escenarioID string) ([]*entity.ZonaComercial, error)
	ListRutas(escenarioID string) ([]*entity.RutaLogistica, error)
	ListProyecciones(escenarioID string) ([]*entity.ProyeccionVentas, error)
	ListConfigDescuentos(escenarioID string) ([]*entity.ConfigDescuentos, error)
	GetConfigLejania(escenarioID string) (*entity.ConfiguracionLejania, error)

	CreatePersonal(r *entity.RegistroPersonal) error
	CreateVehiculo(r *entity.RegistroVehiculo) error
	CreateGasto(r *entity.RegistroGasto) error
	CreateZona(z *entity.ZonaComercial) error
	CreateRuta(r *entity.RutaLogistica) error
	CreateProyeccion(p *entity.ProyeccionVentas) error
	CreateConfigDescuentos(c *entity.ConfigDescuentos) error
	CreateConfigLejania(c *entity.ConfiguracionLejania) error
}
