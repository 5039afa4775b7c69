package dto

import "time"

// OperationLogResponse salida de un registro de operación del back office.
type OperationLogResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"createdAt"`
}

// OperationLogListResponse lista paginada de registros de operación.
type OperationLogListResponse struct {
	Data       []OperationLogResponse `json:"data"`
	Pagination PageResponse           `json:"pagination"`
}
