// Package sms implementa el envío de códigos de verificación para registro
// y recuperación de contraseña. Los códigos viven en Redis con TTL y un
// intervalo mínimo entre reenvíos por teléfono.
package sms

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// Tipos de código soportados.
const (
	TypeRegister = "REGISTER"
	TypeReset    = "RESET"
)

var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// CodeStore puerto de almacenamiento de códigos (Redis en producción).
type CodeStore interface {
	Save(ctx context.Context, phone, codeType, code string, ttl time.Duration) error
	Verify(ctx context.Context, phone, codeType, code string) (bool, error)
	MarkSent(ctx context.Context, phone, codeType string, wait time.Duration) error
	CanSend(ctx context.Context, phone, codeType string) (bool, error)
}

// Config parámetros de emisión de códigos.
type Config struct {
	CodeTTL     time.Duration
	ResendWait  time.Duration
	Development bool // en desarrollo el código se devuelve en la respuesta
}

// UseCase emite y verifica códigos SMS.
type UseCase struct {
	store CodeStore
	cfg   Config
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(store CodeStore, cfg Config, log *logger.Logger) *UseCase {
	return &UseCase{store: store, cfg: cfg, log: log}
}

// SendCode genera un código de 6 dígitos y lo guarda con TTL. Respeta el
// intervalo mínimo entre reenvíos; ErrCodeThrottled si aún no pasó.
func (uc *UseCase) SendCode(ctx context.Context, in dto.SendCodeRequest) (*dto.SendCodeResponse, error) {
	if !ValidPhone(in.Phone) {
		return nil, fmt.Errorf("%w: teléfono inválido", domain.ErrInvalidInput)
	}
	ok, err := uc.store.CanSend(ctx, in.Phone, in.Type)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrCodeThrottled
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("generar código: %w", err)
	}
	if err := uc.store.Save(ctx, in.Phone, in.Type, code, uc.cfg.CodeTTL); err != nil {
		return nil, err
	}
	if err := uc.store.MarkSent(ctx, in.Phone, in.Type, uc.cfg.ResendWait); err != nil {
		return nil, err
	}

	// No hay proveedor SMS real conectado: el código queda en el log del
	// servidor y, en desarrollo, también en la respuesta.
	uc.log.Info().
		Str("phone", in.Phone).
		Str("type", in.Type).
		Msg("código de verificación emitido")

	resp := &dto.SendCodeResponse{Success: true}
	if uc.cfg.Development {
		resp.Code = code
	}
	return resp, nil
}

// VerifyCode verifica y consume un código. ErrInvalidCode si no coincide o expiró.
func (uc *UseCase) VerifyCode(ctx context.Context, phone, codeType, code string) error {
	ok, err := uc.store.Verify(ctx, phone, codeType, code)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidCode
	}
	return nil
}

// ValidPhone valida el formato de teléfono móvil aceptado (11 dígitos).
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// generateCode produce un código numérico de 6 dígitos con crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
