package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	CategoryID string // vacío = todas las categorías
	OnlyActive bool   // true = solo productos visibles en la tienda
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter, params ListParams) ([]*entity.Product, int, error)
	Delete(id string) error
	DeleteMany(ids []string) (int64, error)
}
