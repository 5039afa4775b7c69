package dto

// SendCodeRequest entrada para solicitar un código de verificación SMS.
type SendCodeRequest struct {
	Phone string `json:"phone" validate:"required,len=11"`
	Type  string `json:"type" validate:"required,oneof=REGISTER RESET"`
}

// SendCodeResponse salida del envío. Code solo se incluye en desarrollo,
// donde no hay proveedor SMS real.
type SendCodeResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
}
