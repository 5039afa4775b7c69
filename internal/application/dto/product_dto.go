package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	CategoryID  string          `json:"categoryId" validate:"required"`
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Description string          `json:"description" validate:"max=2000"`
	Price       decimal.Decimal `json:"price"`
	Images      json.RawMessage `json:"images"`
	Status      *bool           `json:"status"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	CategoryID  *string          `json:"categoryId"`
	Name        *string          `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
	Images      json.RawMessage  `json:"images"`
	Status      *bool            `json:"status"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"categoryId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      json.RawMessage `json:"images"`
	Status      bool            `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductListRequest filtros propios del listado de productos.
type ProductListRequest struct {
	PageRequest
	CategoryID string `query:"categoryId" json:"categoryId"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Data       []ProductResponse `json:"data"`
	Pagination PageResponse      `json:"pagination"`
}
