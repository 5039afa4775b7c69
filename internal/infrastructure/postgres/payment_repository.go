package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un código de pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, image, filename, original_name, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.Image, payment.Filename, payment.OriginalName, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un código de pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `
		SELECT id, image, filename, original_name, created_at
		FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Image, &p.Filename, &p.OriginalName, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// GetLatest devuelve el código de pago más reciente, o nil si no hay ninguno.
func (r *PaymentRepo) GetLatest() (*entity.Payment, error) {
	query := `
		SELECT id, image, filename, original_name, created_at
		FROM payments ORDER BY created_at DESC LIMIT 1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query).Scan(
		&p.ID, &p.Image, &p.Filename, &p.OriginalName, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest payment: %w", err)
	}
	return &p, nil
}

// Delete elimina un código de pago por ID. Devuelve ErrNotFound si ya no existe.
func (r *PaymentRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll elimina todos los códigos de pago (subir uno nuevo reemplaza al anterior).
func (r *PaymentRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM payments`); err != nil {
		return fmt.Errorf("delete payments: %w", err)
	}
	return nil
}
