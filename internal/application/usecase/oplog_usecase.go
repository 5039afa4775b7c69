package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// OperationLogUseCase registra y consulta las mutaciones del back office.
type OperationLogUseCase struct {
	repo repository.OperationLogRepository
}

// NewOperationLogUseCase construye el caso de uso.
func NewOperationLogUseCase(repo repository.OperationLogRepository) *OperationLogUseCase {
	return &OperationLogUseCase{repo: repo}
}

// Record registra una operación. Se llama desde el middleware tras
// responder la petición, por lo que los errores solo se propagan para log.
func (uc *OperationLogUseCase) Record(userID, userName, method, path string, status int, detail string) error {
	return uc.repo.Create(&entity.OperationLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		UserName:  userName,
		Method:    method,
		Path:      path,
		Status:    status,
		Detail:    detail,
		CreatedAt: time.Now(),
	})
}

// List lista registros con paginación y orden del lado del servidor.
func (uc *OperationLogUseCase) List(page dto.PageRequest) (*dto.OperationLogListResponse, error) {
	page.Defaults()
	list, total, err := uc.repo.List(listParams(page))
	if err != nil {
		return nil, err
	}
	items := make([]dto.OperationLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.OperationLogResponse{
			ID:        l.ID,
			UserID:    l.UserID,
			UserName:  l.UserName,
			Method:    l.Method,
			Path:      l.Path,
			Status:    l.Status,
			Detail:    l.Detail,
			CreatedAt: l.CreatedAt,
		})
	}
	return &dto.OperationLogListResponse{
		Data:       items,
		Pagination: dto.NewPageResponse(page.Page, page.PageSize, total),
	}, nil
}

// DeleteMany elimina los registros seleccionados y devuelve cuántos borró.
func (uc *OperationLogUseCase) DeleteMany(ids []string) (int64, error) {
	return uc.repo.DeleteMany(ids)
}
