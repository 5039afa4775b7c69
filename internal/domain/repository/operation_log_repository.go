package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// OperationLogRepository define el puerto de persistencia para OperationLog (DIP).
type OperationLogRepository interface {
	Create(log *entity.OperationLog) error
	List(params ListParams) ([]*entity.OperationLog, int, error)
	DeleteMany(ids []string) (int64, error)
}
