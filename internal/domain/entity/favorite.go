package entity

import "time"

// Favorite marca un producto como favorito de un usuario.
// Único por (UserID, ProductID).
type Favorite struct {
	ID        string
	UserID    string
	ProductID string
	CreatedAt time.Time
}
