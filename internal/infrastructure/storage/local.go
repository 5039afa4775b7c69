// Package storage implementa el almacenamiento local de archivos subidos
// (imágenes y videos) bajo una raíz configurable.
package storage

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
)

// Mapeo MIME de imagen -> extensión de archivo.
var imageMIMEToExtension = map[string]string{
	"image/jpeg":               "jpg",
	"image/jpg":                "jpg",
	"image/png":                "png",
	"image/gif":                "gif",
	"image/svg+xml":            "svg",
	"image/webp":               "webp",
	"image/bmp":                "bmp",
	"image/x-icon":             "ico",
	"image/vnd.microsoft.icon": "ico",
	"image/tiff":               "tiff",
	"image/avif":               "avif",
}

// Mapeo MIME de video -> extensión de archivo.
var videoMIMEToExtension = map[string]string{
	"video/mp4":       "mp4",
	"video/mpeg":      "mpeg",
	"video/quicktime": "mov",
	"video/x-msvideo": "avi",
	"video/webm":      "webm",
	"video/ogg":       "ogv",
	"video/3gpp":      "3gp",
	"video/x-flv":     "flv",
}

// Mapeo inverso extensión -> Content-Type para servir los archivos.
var extensionToContentType = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"svg":  "image/svg+xml",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"ico":  "image/x-icon",
	"tiff": "image/tiff",
	"avif": "image/avif",
	"mp4":  "video/mp4",
	"mpeg": "video/mpeg",
	"mov":  "video/quicktime",
	"avi":  "video/x-msvideo",
	"webm": "video/webm",
	"ogv":  "video/ogg",
	"ogg":  "video/ogg",
	"3gp":  "video/3gpp",
	"flv":  "video/x-flv",
}

// ImageExtension devuelve la extensión para el MIME de imagen dado, con jpg como fallback.
func ImageExtension(mimeType string) string {
	if ext, ok := imageMIMEToExtension[mimeType]; ok {
		return ext
	}
	return "jpg"
}

// VideoExtension devuelve la extensión para el MIME de video dado, con mp4 como fallback.
func VideoExtension(mimeType string) string {
	if ext, ok := videoMIMEToExtension[mimeType]; ok {
		return ext
	}
	return "mp4"
}

// ContentTypeFor devuelve el Content-Type para servir un archivo según su extensión.
func ContentTypeFor(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ct, ok := extensionToContentType[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

const randomSuffixLen = 13

// GenerateFilename genera un nombre único: timestamp + sufijo aleatorio + extensión.
// Nunca reutiliza el nombre enviado por el cliente.
func GenerateFilename(ext string) string {
	return fmt.Sprintf("%d_%s.%s", time.Now().UnixMilli(), randomString(randomSuffixLen), ext)
}

const randomAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomString(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(randomAlphabet)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand solo falla si el sistema no tiene entropía; degradar al índice 0
			idx = big.NewInt(0)
		}
		b[i] = randomAlphabet[idx.Int64()]
	}
	return string(b)
}

// Local guarda y lee archivos bajo una raíz en disco.
type Local struct {
	root string
}

// NewLocal construye el almacén con la raíz dada (ej. ./public/uploads).
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Save escribe data en <root>/<relDir>/<filename>, creando directorios
// intermedios. La creación es idempotente y segura ante carreras entre
// subidas concurrentes a la misma carpeta.
func (l *Local) Save(relDir, filename string, data []byte) error {
	dir, err := l.safeJoin(relDir)
	if err != nil {
		return err
	}
	if err := ensureDir(dir); err != nil {
		return err
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o666); err != nil {
		return fmt.Errorf("escribir archivo: %w", err)
	}
	return nil
}

// Read lee el archivo en <root>/<relPath>. Devuelve domain.ErrNotFound si no existe.
func (l *Local) Read(relPath string) ([]byte, error) {
	path, err := l.safeJoin(relPath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	return data, nil
}

// safeJoin une la ruta relativa a la raíz rechazando escapes con "..".
func (l *Local) safeJoin(rel string) (string, error) {
	cleaned := filepath.Clean("/" + rel)
	if strings.Contains(rel, "..") {
		return "", domain.ErrInvalidInput
	}
	return filepath.Join(l.root, cleaned), nil
}

// ensureDir crea el directorio (y sus padres). Si MkdirAll falla, reintenta
// creando primero el padre y luego el hijo: cubre carreras de creación entre
// procesos concurrentes.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o777); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dir), 0o777); err != nil {
		return fmt.Errorf("crear directorio padre: %w", err)
	}
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return fmt.Errorf("crear directorio: %w", err)
	}
	return nil
}
