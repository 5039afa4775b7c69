package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment (DIP).
// Solo hay un código de pago vigente; Create se usa tras DeleteAll.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	GetLatest() (*entity.Payment, error)
	Delete(id string) error
	DeleteAll() error
}
