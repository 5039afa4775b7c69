package upload_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/upload"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// fakeStorage captura las escrituras en memoria.
type fakeStorage struct {
	saved map[string][]byte // relDir/filename -> data
	err   error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte)}
}

func (f *fakeStorage) Save(relDir, filename string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.saved[relDir+"/"+filename] = data
	return nil
}

func dataURI(mime string, payload []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestUploadImage_PNG(t *testing.T) {
	store := newFakeStorage()
	uc := upload.NewUseCase(store)

	out, err := uc.UploadImage(dto.UploadImageRequest{
		Image:    dataURI("image/png", []byte("png-bytes")),
		Filename: "logo.png",
		Folder:   "banners",
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "logo.png", out.OriginalFilename)
	assert.True(t, strings.HasSuffix(out.Filename, ".png"), "MIME image/png debe mapear a .png")
	assert.True(t, strings.HasPrefix(out.URL, "/uploads/images/banners/"), "URL pública: %s", out.URL)

	require.Len(t, store.saved, 1)
	assert.Equal(t, []byte("png-bytes"), store.saved["images/banners/"+out.Filename])
}

// MIME de imagen desconocido cae a .jpg.
func TestUploadImage_MIMEDesconocidoCaeAJPG(t *testing.T) {
	uc := upload.NewUseCase(newFakeStorage())

	out, err := uc.UploadImage(dto.UploadImageRequest{
		Image:    dataURI("image/x-rara", []byte("bytes")),
		Filename: "foto",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.Filename, ".jpg"))
}

// Sin carpeta, o con una carpeta con traversal, se usa "common".
func TestUploadImage_CarpetaSaneada(t *testing.T) {
	store := newFakeStorage()
	uc := upload.NewUseCase(store)

	out, err := uc.UploadImage(dto.UploadImageRequest{
		Image:    dataURI("image/webp", []byte("w")),
		Filename: "a.webp",
		Folder:   "../etc",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.URL, "/uploads/images/common/"))
}

// Un data-URI que no es de imagen se rechaza.
func TestUploadImage_PrefijoInvalidoRechazado(t *testing.T) {
	uc := upload.NewUseCase(newFakeStorage())

	_, err := uc.UploadImage(dto.UploadImageRequest{
		Image:    dataURI("video/mp4", []byte("v")),
		Filename: "clip.mp4",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMedia)
}

func TestUploadImage_Base64Corrupto(t *testing.T) {
	uc := upload.NewUseCase(newFakeStorage())

	_, err := uc.UploadImage(dto.UploadImageRequest{
		Image:    "data:image/png;base64,###no-es-base64###",
		Filename: "x.png",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMedia)
}

func TestUploadImages_Lote(t *testing.T) {
	store := newFakeStorage()
	uc := upload.NewUseCase(store)

	out, err := uc.UploadImages(dto.UploadImagesRequest{
		Folder: "products",
		Images: []dto.UploadImageItem{
			{Image: dataURI("image/png", []byte("a")), Filename: "a.png"},
			{Image: dataURI("image/gif", []byte("b")), Filename: "b.gif"},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	assert.True(t, strings.HasSuffix(out.Results[0].Filename, ".png"))
	assert.True(t, strings.HasSuffix(out.Results[1].Filename, ".gif"))
	assert.Len(t, store.saved, 2)
}

// Un elemento inválido aborta el lote completo.
func TestUploadImages_ElementoInvalidoAbortaLote(t *testing.T) {
	uc := upload.NewUseCase(newFakeStorage())

	_, err := uc.UploadImages(dto.UploadImagesRequest{
		Images: []dto.UploadImageItem{
			{Image: dataURI("image/png", []byte("a")), Filename: "a.png"},
			{Image: "no-es-data-uri", Filename: "b"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMedia)
}

func TestUploadVideo_MP4(t *testing.T) {
	store := newFakeStorage()
	uc := upload.NewUseCase(store)

	out, err := uc.UploadVideo(dto.UploadVideoRequest{
		Video:    dataURI("video/mp4", []byte("mp4-bytes")),
		Filename: "demo.mp4",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.Filename, ".mp4"))
	assert.True(t, strings.HasPrefix(out.URL, "/uploads/videos/common/"))
}

// MIME de video desconocido cae a .mp4.
func TestUploadVideo_MIMEDesconocidoCaeAMP4(t *testing.T) {
	uc := upload.NewUseCase(newFakeStorage())

	out, err := uc.UploadVideo(dto.UploadVideoRequest{
		Video:    dataURI("video/x-raro", []byte("v")),
		Filename: "clip",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.Filename, ".mp4"))
}
