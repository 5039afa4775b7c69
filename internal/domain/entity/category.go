package entity

import "time"

// Category representa una categoría de productos del catálogo.
type Category struct {
	ID          string
	Name        string
	Description string
	Icon        string // URL de la imagen subida
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
