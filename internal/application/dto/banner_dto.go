package dto

import "time"

// CreateBannerRequest entrada para crear un banner.
type CreateBannerRequest struct {
	Title  string `json:"title" validate:"required,min=2,max=100"`
	Image  string `json:"image" validate:"required"`
	Link   string `json:"link"`
	Sort   int    `json:"sort"`
	Status *bool  `json:"status"`
}

// UpdateBannerRequest entrada para actualizar un banner (campos opcionales).
type UpdateBannerRequest struct {
	Title  *string `json:"title" validate:"omitempty,min=2,max=100"`
	Image  *string `json:"image"`
	Link   *string `json:"link"`
	Sort   *int    `json:"sort"`
	Status *bool   `json:"status"`
}

// BannerResponse salida de un banner.
type BannerResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	Link      string    `json:"link"`
	Sort      int       `json:"sort"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BannerListResponse lista paginada de banners.
type BannerListResponse struct {
	Data       []BannerResponse `json:"data"`
	Pagination PageResponse     `json:"pagination"`
}
