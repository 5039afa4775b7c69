package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para colocar una orden.
type CreateOrderRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Remark    string `json:"remark" validate:"max=500"`
}

// UpdateOrderStatusRequest entrada para cambiar el estado de una orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PAID CHECKED DELIVERED COMPLETED CANCELLED"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Remark    string          `json:"remark"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// OrderListRequest filtros propios del listado de órdenes.
type OrderListRequest struct {
	PageRequest
	Status string `query:"status" json:"status" validate:"omitempty,oneof=PAID CHECKED DELIVERED COMPLETED CANCELLED"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Data       []OrderResponse `json:"data"`
	Pagination PageResponse    `json:"pagination"`
}
