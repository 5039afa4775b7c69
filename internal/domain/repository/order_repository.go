package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// OrderFilter filtros de listado de órdenes.
type OrderFilter struct {
	UserID string // vacío = todas (back office)
	Status string // vacío = cualquier estado
}

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	UpdateStatus(id, status string) error
	List(filter OrderFilter, params ListParams) ([]*entity.Order, int, error)
	CountByStatus(userID string) (map[string]int, error)
	Delete(id string) error
	DeleteMany(ids []string) (int64, error)
}
