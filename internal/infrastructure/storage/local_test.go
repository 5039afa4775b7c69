package storage_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/infrastructure/storage"
)

func TestImageExtension(t *testing.T) {
	assert.Equal(t, "png", storage.ImageExtension("image/png"))
	assert.Equal(t, "jpg", storage.ImageExtension("image/jpeg"))
	assert.Equal(t, "webp", storage.ImageExtension("image/webp"))
	assert.Equal(t, "jpg", storage.ImageExtension("image/desconocido"), "fallback a jpg")
}

func TestVideoExtension(t *testing.T) {
	assert.Equal(t, "mp4", storage.VideoExtension("video/mp4"))
	assert.Equal(t, "webm", storage.VideoExtension("video/webm"))
	assert.Equal(t, "mp4", storage.VideoExtension("video/desconocido"), "fallback a mp4")
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", storage.ContentTypeFor("images/common/a.png"))
	assert.Equal(t, "video/mp4", storage.ContentTypeFor("videos/common/b.MP4"))
	assert.Equal(t, "application/octet-stream", storage.ContentTypeFor("raro.bin"))
}

// Formato: <unix-ms>_<13 caracteres aleatorios>.<ext>, siempre distinto.
func TestGenerateFilename(t *testing.T) {
	pattern := regexp.MustCompile(`^\d+_[a-z0-9]{13}\.png$`)

	a := storage.GenerateFilename("png")
	b := storage.GenerateFilename("png")

	assert.Regexp(t, pattern, a)
	assert.Regexp(t, pattern, b)
	assert.NotEqual(t, a, b, "dos llamadas nunca colisionan")
}

func TestLocal_SaveYRead(t *testing.T) {
	store := storage.NewLocal(t.TempDir())

	require.NoError(t, store.Save("images/banners", "a.png", []byte("contenido")))

	data, err := store.Read("images/banners/a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("contenido"), data)
}

// Guardar dos veces en la misma carpeta no falla (mkdir idempotente).
func TestLocal_SaveRepetidoMismaCarpeta(t *testing.T) {
	store := storage.NewLocal(t.TempDir())

	require.NoError(t, store.Save("images/x", "a.png", []byte("1")))
	require.NoError(t, store.Save("images/x", "b.png", []byte("2")))
}

func TestLocal_ReadInexistente(t *testing.T) {
	store := storage.NewLocal(t.TempDir())

	_, err := store.Read("images/no/existe.png")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Las rutas con traversal se rechazan sin tocar el disco.
func TestLocal_ReadConTraversal(t *testing.T) {
	store := storage.NewLocal(t.TempDir())

	_, err := store.Read("../../../etc/passwd")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
