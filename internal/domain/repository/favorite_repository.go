package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// FavoriteRepository define el puerto de persistencia para Favorite (DIP).
type FavoriteRepository interface {
	Create(favorite *entity.Favorite) error
	GetByID(id string) (*entity.Favorite, error)
	GetByUserAndProduct(userID, productID string) (*entity.Favorite, error)
	ListByUser(userID string) ([]*entity.Favorite, error)
	CountByUser(userID string) (int, error)
	Delete(id string) error
}
