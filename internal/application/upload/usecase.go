// Package upload implementa la subida de medios: decodifica data-URIs base64,
// genera nombres únicos y delega la escritura al almacenamiento local.
package upload

import (
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/infrastructure/storage"
)

// Storage puerto de escritura de archivos.
type Storage interface {
	Save(relDir, filename string, data []byte) error
}

// UseCase casos de uso de subida de imágenes y videos.
type UseCase struct {
	store Storage
}

// NewUseCase construye el caso de uso.
func NewUseCase(store Storage) *UseCase {
	return &UseCase{store: store}
}

// UploadImage guarda una imagen enviada como data-URI y devuelve su URL pública.
func (uc *UseCase) UploadImage(in dto.UploadImageRequest) (*dto.UploadResponse, error) {
	return uc.saveMedia(in.Image, in.Filename, in.Folder, "image")
}

// UploadImages guarda varias imágenes en la misma carpeta. Falla completa
// al primer error: o se suben todas o ninguna queda reportada.
func (uc *UseCase) UploadImages(in dto.UploadImagesRequest) (*dto.UploadMultipleResponse, error) {
	results := make([]dto.UploadResponse, 0, len(in.Images))
	for _, item := range in.Images {
		res, err := uc.saveMedia(item.Image, item.Filename, in.Folder, "image")
		if err != nil {
			return nil, fmt.Errorf("subir %q: %w", item.Filename, err)
		}
		results = append(results, *res)
	}
	return &dto.UploadMultipleResponse{Success: true, Results: results}, nil
}

// UploadVideo guarda un video enviado como data-URI y devuelve su URL pública.
func (uc *UseCase) UploadVideo(in dto.UploadVideoRequest) (*dto.UploadResponse, error) {
	return uc.saveMedia(in.Video, in.Filename, in.Folder, "video")
}

// saveMedia valida el data-URI, decodifica y escribe el archivo.
// kind es "image" o "video"; determina el prefijo exigido, la tabla de
// extensiones y el directorio destino.
func (uc *UseCase) saveMedia(dataURI, originalName, folder, kind string) (*dto.UploadResponse, error) {
	mimeType, data, err := parseDataURI(dataURI, kind)
	if err != nil {
		return nil, err
	}

	var ext, baseDir string
	switch kind {
	case "video":
		ext = storage.VideoExtension(mimeType)
		baseDir = "videos"
	default:
		ext = storage.ImageExtension(mimeType)
		baseDir = "images"
	}

	folder = sanitizeFolder(folder)
	filename := storage.GenerateFilename(ext)
	if err := uc.store.Save(path.Join(baseDir, folder), filename, data); err != nil {
		return nil, fmt.Errorf("guardar archivo: %w", err)
	}
	return &dto.UploadResponse{
		Success:          true,
		URL:              "/uploads/" + path.Join(baseDir, folder, filename),
		Filename:         filename,
		OriginalFilename: originalName,
	}, nil
}

// parseDataURI extrae el MIME y los bytes de un data-URI base64.
// Exige el prefijo "data:image/" o "data:video/" según kind.
func parseDataURI(raw, kind string) (string, []byte, error) {
	prefix := "data:" + kind + "/"
	if !strings.HasPrefix(raw, prefix) {
		return "", nil, fmt.Errorf("%w: se esperaba un data-URI %s", domain.ErrInvalidMedia, kind)
	}
	idx := strings.Index(raw, ";base64,")
	if idx < 0 {
		return "", nil, fmt.Errorf("%w: falta la sección base64", domain.ErrInvalidMedia)
	}
	mimeType := raw[len("data:"):idx]
	data, err := base64.StdEncoding.DecodeString(raw[idx+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("%w: base64 corrupto", domain.ErrInvalidMedia)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("%w: archivo vacío", domain.ErrInvalidMedia)
	}
	return mimeType, data, nil
}

// sanitizeFolder acota la carpeta destino a un único segmento seguro.
func sanitizeFolder(folder string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" || strings.Contains(folder, "..") || strings.ContainsAny(folder, "/\\") {
		return "common"
	}
	return folder
}
