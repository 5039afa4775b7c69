package dto

import "time"

// UploadPaymentRequest entrada para subir el código de pago (imagen base64 data-URI).
type UploadPaymentRequest struct {
	Image    string `json:"image" validate:"required"`
	Filename string `json:"filename" validate:"required"`
}

// PaymentResponse salida del código de pago vigente.
type PaymentResponse struct {
	ID           string    `json:"id"`
	Image        string    `json:"image"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	CreatedAt    time.Time `json:"createdAt"`
}
