package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Uploader puerto de subida de imágenes, usado para guardar el código de pago.
type Uploader interface {
	UploadImage(in dto.UploadImageRequest) (*dto.UploadResponse, error)
}

// PaymentUseCase administra el código de pago (la imagen QR que escanean los
// compradores). Solo existe uno vigente: subir uno nuevo reemplaza al anterior.
type PaymentUseCase struct {
	repo     repository.PaymentRepository
	uploader Uploader
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository, uploader Uploader) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, uploader: uploader}
}

// Get devuelve el código de pago vigente, o nil si nunca se subió uno.
func (uc *PaymentUseCase) Get() (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetLatest()
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}
	return toPaymentResponse(payment), nil
}

// Upload guarda la imagen en disco y reemplaza el código vigente.
func (uc *PaymentUseCase) Upload(in dto.UploadPaymentRequest) (*dto.PaymentResponse, error) {
	uploaded, err := uc.uploader.UploadImage(dto.UploadImageRequest{
		Image:    in.Image,
		Filename: in.Filename,
		Folder:   "payment",
	})
	if err != nil {
		return nil, err
	}
	if err := uc.repo.DeleteAll(); err != nil {
		return nil, err
	}
	payment := &entity.Payment{
		ID:           uuid.New().String(),
		Image:        uploaded.URL,
		Filename:     uploaded.Filename,
		OriginalName: in.Filename,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// Delete elimina un código de pago por ID. ErrNotFound si ya no existe.
func (uc *PaymentUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:           p.ID,
		Image:        p.Image,
		Filename:     p.Filename,
		OriginalName: p.OriginalName,
		CreatedAt:    p.CreatedAt,
	}
}
