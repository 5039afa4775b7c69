package entity

import "time"

// Payment es el código de pago (imagen QR) que escanean los compradores.
// Solo existe uno vigente: subir uno nuevo reemplaza al anterior.
type Payment struct {
	ID           string
	Image        string // URL de la imagen subida
	Filename     string // nombre generado en disco
	OriginalName string // nombre original enviado por el cliente
	CreatedAt    time.Time
}
