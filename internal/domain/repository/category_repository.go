package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(params ListParams) ([]*entity.Category, int, error)
	Delete(id string) error
	DeleteMany(ids []string) (int64, error)
}
