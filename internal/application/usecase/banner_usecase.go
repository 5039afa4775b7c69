package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// BannerUseCase casos de uso CRUD para banners de portada.
type BannerUseCase struct {
	repo repository.BannerRepository
}

// NewBannerUseCase construye el caso de uso.
func NewBannerUseCase(repo repository.BannerRepository) *BannerUseCase {
	return &BannerUseCase{repo: repo}
}

// Create crea un nuevo banner.
func (uc *BannerUseCase) Create(in dto.CreateBannerRequest) (*dto.BannerResponse, error) {
	status := true
	if in.Status != nil {
		status = *in.Status
	}
	now := time.Now()
	banner := &entity.Banner{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Image:     in.Image,
		Link:      in.Link,
		Sort:      in.Sort,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(banner); err != nil {
		return nil, err
	}
	return toBannerResponse(banner), nil
}

// GetByID obtiene un banner por ID. Devuelve nil si no existe.
func (uc *BannerUseCase) GetByID(id string) (*dto.BannerResponse, error) {
	banner, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, nil
	}
	return toBannerResponse(banner), nil
}

// Update actualiza un banner. Devuelve nil si no existe.
func (uc *BannerUseCase) Update(id string, in dto.UpdateBannerRequest) (*dto.BannerResponse, error) {
	banner, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, nil
	}
	if in.Title != nil {
		banner.Title = *in.Title
	}
	if in.Image != nil {
		banner.Image = *in.Image
	}
	if in.Link != nil {
		banner.Link = *in.Link
	}
	if in.Sort != nil {
		banner.Sort = *in.Sort
	}
	if in.Status != nil {
		banner.Status = *in.Status
	}
	banner.UpdatedAt = time.Now()
	if err := uc.repo.Update(banner); err != nil {
		return nil, err
	}
	return toBannerResponse(banner), nil
}

// List lista banners con paginación y orden del lado del servidor.
func (uc *BannerUseCase) List(page dto.PageRequest) (*dto.BannerListResponse, error) {
	page.Defaults()
	list, total, err := uc.repo.List(listParams(page))
	if err != nil {
		return nil, err
	}
	items := make([]dto.BannerResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBannerResponse(b))
	}
	return &dto.BannerListResponse{
		Data:       items,
		Pagination: dto.NewPageResponse(page.Page, page.PageSize, total),
	}, nil
}

// ListActive devuelve los banners visibles de la portada, ordenados por sort.
func (uc *BannerUseCase) ListActive() ([]dto.BannerResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BannerResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBannerResponse(b))
	}
	return items, nil
}

// Delete elimina un banner por ID. ErrNotFound si ya no existe.
func (uc *BannerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// DeleteMany elimina los banners seleccionados y devuelve cuántos borró.
func (uc *BannerUseCase) DeleteMany(ids []string) (int64, error) {
	return uc.repo.DeleteMany(ids)
}

func toBannerResponse(b *entity.Banner) *dto.BannerResponse {
	if b == nil {
		return nil
	}
	return &dto.BannerResponse{
		ID:        b.ID,
		Title:     b.Title,
		Image:     b.Image,
		Link:      b.Link,
		Sort:      b.Sort,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
