package repository

import "github.com/jhoicas/costeo-multimarca/internal/domain/entity"

// MarcaRepository define el puerto de persistencia para Marca.
type MarcaRepository interface {
	ListActivas() ([]*entity.Marca, error)
	GetByID(id string) (*entity.Marca, error)
}
