package dto

import "time"

// AddFavoriteRequest entrada para marcar un producto como favorito.
type AddFavoriteRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// FavoriteResponse salida de un favorito con su producto embebido.
type FavoriteResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Product   ProductResponse `json:"product"`
	CreatedAt time.Time       `json:"createdAt"`
}
