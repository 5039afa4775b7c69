package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UserUseCase casos de uso de usuarios del back office, más los contadores
// de la pantalla "mi cuenta" de la tienda.
type UserUseCase struct {
	userRepo repository.UserRepository
	favRepo  repository.FavoriteRepository
	ordRepo  repository.OrderRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(
	userRepo repository.UserRepository,
	favRepo repository.FavoriteRepository,
	ordRepo repository.OrderRepository,
) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, favRepo: favRepo, ordRepo: ordRepo}
}

// Create crea un usuario desde el back office.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, in.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear contraseña: %w", err)
	}
	status := true
	if in.Status != nil {
		status = *in.Status
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Phone:        in.Phone,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         in.Role,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID. Devuelve nil si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update actualiza un usuario. Password vacío conserva la contraseña actual.
// Devuelve nil si no existe.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, *in.Role)
		}
		user.Role = *in.Role
	}
	if in.Status != nil {
		user.Status = *in.Status
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashear contraseña: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista usuarios con paginación y orden del lado del servidor.
func (uc *UserUseCase) List(page dto.PageRequest) (*dto.UserListResponse, error) {
	page.Defaults()
	list, total, err := uc.userRepo.List(listParams(page))
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Data:       items,
		Pagination: dto.NewPageResponse(page.Page, page.PageSize, total),
	}, nil
}

// Delete elimina un usuario por ID. ErrNotFound si ya no existe.
func (uc *UserUseCase) Delete(id string) error {
	return uc.userRepo.Delete(id)
}

// DeleteMany elimina los usuarios seleccionados y devuelve cuántos borró.
func (uc *UserUseCase) DeleteMany(ids []string) (int64, error) {
	return uc.userRepo.DeleteMany(ids)
}

// GetStats devuelve los contadores de favoritos y de órdenes por estado
// del usuario de la sesión.
func (uc *UserUseCase) GetStats(userID string) (*dto.UserStatsResponse, error) {
	favorites, err := uc.favRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	counts, err := uc.ordRepo.CountByStatus(userID)
	if err != nil {
		return nil, err
	}
	// Siempre se publican los cinco estados, con cero para los ausentes.
	full := make(map[string]int, len(entity.OrderStatuses))
	for _, s := range entity.OrderStatuses {
		full[s] = counts[s]
	}
	return &dto.UserStatsResponse{FavoriteCount: favorites, OrderCounts: full}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Phone:     u.Phone,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
