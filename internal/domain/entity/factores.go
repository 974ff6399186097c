package entity

import "github.com/shopspring/decimal"

// FactoresPrestacionales son las tasas de ley de un perfil laboral.
// Se distinguen las prestaciones que se liquidan sobre el salario base de
// las que se liquidan sobre salario base + subsidio de transporte.
// Tasas como fracción (0.085 = 8.5%).
type FactoresPrestacionales struct {
	Perfil string

	// Sobre salario base únicamente.
	Salud            decimal.Decimal
	Pension          decimal.Decimal
	ARL              decimal.Decimal
	CajaCompensacion decimal.Decimal
	Parafiscales     decimal.Decimal // SENA + ICBF
	Vacaciones       decimal.Decimal

	// Sobre salario base + subsidio de transporte.
	Cesantias          decimal.Decimal
	InteresesCesantias decimal.Decimal
	Prima              decimal.Decimal
}

// TasaSobreBase suma las tasas que se aplican solo al salario base.
func (f *FactoresPrestacionales) TasaSobreBase() decimal.Decimal {
	return f.Salud.Add(f.Pension).Add(f.ARL).
		Add(f.CajaCompensacion).Add(f.Parafiscales).Add(f.Vacaciones)
}

// TasaSobreBaseMasSubsidio suma las tasas que se aplican a base + subsidio.
func (f *FactoresPrestacionales) TasaSobreBaseMasSubsidio() decimal.Decimal {
	return f.Cesantias.Add(f.InteresesCesantias).Add(f.Prima)
}
