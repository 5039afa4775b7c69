package entity

import "time"

// Banner representa un banner de la portada (imagen + enlace opcional).
type Banner struct {
	ID        string
	Title     string
	Image     string // URL de la imagen subida
	Link      string // destino al tocar el banner, vacío si no enlaza
	Sort      int    // orden de aparición, menor primero
	Status    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
