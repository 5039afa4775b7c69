package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// BannerRepository define el puerto de persistencia para Banner (DIP).
type BannerRepository interface {
	Create(banner *entity.Banner) error
	GetByID(id string) (*entity.Banner, error)
	Update(banner *entity.Banner) error
	List(params ListParams) ([]*entity.Banner, int, error)
	ListActive() ([]*entity.Banner, error)
	Delete(id string) error
	DeleteMany(ids []string) (int64, error)
}
