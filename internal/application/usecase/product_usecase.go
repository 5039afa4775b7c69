package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos, más favoritos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	favoriteRepo repository.FavoriteRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, favoriteRepo repository.FavoriteRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, favoriteRepo: favoriteRepo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := true
	if in.Status != nil {
		status = *in.Status
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Images:      in.Images,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. Devuelve nil si no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if len(in.Images) > 0 {
		product.Images = in.Images
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con filtros, paginación y orden del lado del servidor.
// onlyActive limita a productos visibles (vitrina pública).
func (uc *ProductUseCase) List(in dto.ProductListRequest, onlyActive bool) (*dto.ProductListResponse, error) {
	in.Defaults()
	filter := repository.ProductFilter{CategoryID: in.CategoryID, OnlyActive: onlyActive}
	list, total, err := uc.repo.List(filter, listParams(in.PageRequest))
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Data:       items,
		Pagination: dto.NewPageResponse(in.Page, in.PageSize, total),
	}, nil
}

// Delete elimina un producto por ID. ErrNotFound si ya no existe.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// DeleteMany elimina los productos seleccionados y devuelve cuántos borró.
func (uc *ProductUseCase) DeleteMany(ids []string) (int64, error) {
	return uc.repo.DeleteMany(ids)
}

// AddFavorite marca un producto como favorito del usuario. Es idempotente:
// si ya era favorito devuelve el existente.
func (uc *ProductUseCase) AddFavorite(userID, productID string) (*dto.FavoriteResponse, error) {
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.favoriteRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toFavoriteResponse(existing, product), nil
	}
	favorite := &entity.Favorite{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	if err := uc.favoriteRepo.Create(favorite); err != nil {
		// Carrera con otra petición del mismo usuario: leer el que ganó
		if errors.Is(err, domain.ErrDuplicate) {
			existing, err2 := uc.favoriteRepo.GetByUserAndProduct(userID, productID)
			if err2 == nil && existing != nil {
				return toFavoriteResponse(existing, product), nil
			}
		}
		return nil, err
	}
	return toFavoriteResponse(favorite, product), nil
}

// ListFavorites lista los favoritos del usuario con su producto.
func (uc *ProductUseCase) ListFavorites(userID string) ([]dto.FavoriteResponse, error) {
	favorites, err := uc.favoriteRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		product, err := uc.repo.GetByID(f.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			// Producto borrado después de marcarse favorito: omitir la fila
			continue
		}
		out = append(out, *toFavoriteResponse(f, product))
	}
	return out, nil
}

// DeleteFavorite elimina un favorito del usuario. Verifica pertenencia antes de borrar.
func (uc *ProductUseCase) DeleteFavorite(userID, favoriteID string) error {
	favorite, err := uc.favoriteRepo.GetByID(favoriteID)
	if err != nil {
		return err
	}
	if favorite == nil {
		return domain.ErrNotFound
	}
	if favorite.UserID != userID {
		return domain.ErrForbidden
	}
	return uc.favoriteRepo.Delete(favoriteID)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Images:      p.Images,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toFavoriteResponse(f *entity.Favorite, p *entity.Product) *dto.FavoriteResponse {
	return &dto.FavoriteResponse{
		ID:        f.ID,
		ProductID: f.ProductID,
		Product:   *toProductResponse(p),
		CreatedAt: f.CreatedAt,
	}
}
