package dto

// UploadImageRequest entrada para subir una imagen (base64 data-URI).
type UploadImageRequest struct {
	Image    string `json:"image" validate:"required"`
	Filename string `json:"filename" validate:"required"`
	Folder   string `json:"folder"`
}

// UploadImagesRequest entrada para subir varias imágenes a la misma carpeta.
type UploadImagesRequest struct {
	Images []UploadImageItem `json:"images" validate:"required,min=1,dive"`
	Folder string            `json:"folder"`
}

// UploadImageItem una imagen dentro de una subida múltiple.
type UploadImageItem struct {
	Image    string `json:"image" validate:"required"`
	Filename string `json:"filename" validate:"required"`
}

// UploadVideoRequest entrada para subir un video (base64 data-URI).
type UploadVideoRequest struct {
	Video    string `json:"video" validate:"required"`
	Filename string `json:"filename" validate:"required"`
	Folder   string `json:"folder"`
}

// UploadResponse salida de una subida: URL pública y nombres.
type UploadResponse struct {
	Success          bool   `json:"success"`
	URL              string `json:"url"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"originalFilename"`
}

// UploadMultipleResponse salida de una subida múltiple.
type UploadMultipleResponse struct {
	Success bool             `json:"success"`
	Results []UploadResponse `json:"results"`
}
