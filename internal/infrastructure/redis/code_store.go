package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CodeStore guarda códigos de verificación SMS en Redis con TTL.
// Claves: sms:code:<tipo>:<teléfono> (código vigente) y
// sms:resend:<tipo>:<teléfono> (ventana de espera entre reenvíos).
type CodeStore struct {
	client *redis.Client
}

// NewCodeStore construye el store sobre el cliente dado.
func NewCodeStore(client *redis.Client) *CodeStore {
	return &CodeStore{client: client}
}

// Save guarda el código con el TTL dado, reemplazando cualquier código anterior.
func (s *CodeStore) Save(ctx context.Context, phone, codeType, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.codeKey(phone, codeType), code, ttl).Err(); err != nil {
		return fmt.Errorf("guardar código sms: %w", err)
	}
	return nil
}

// Verify compara el código y, si coincide, lo consume (un código solo sirve una vez).
func (s *CodeStore) Verify(ctx context.Context, phone, codeType, code string) (bool, error) {
	key := s.codeKey(phone, codeType)
	stored, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("leer código sms: %w", err)
	}
	if stored != code {
		return false, nil
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return false, fmt.Errorf("consumir código sms: %w", err)
	}
	return true, nil
}

// MarkSent registra el envío para frenar reenvíos dentro de la ventana wait.
func (s *CodeStore) MarkSent(ctx context.Context, phone, codeType string, wait time.Duration) error {
	if err := s.client.Set(ctx, s.resendKey(phone, codeType), "1", wait).Err(); err != nil {
		return fmt.Errorf("marcar envío sms: %w", err)
	}
	return nil
}

// CanSend indica si ya pasó la ventana de espera desde el último envío.
func (s *CodeStore) CanSend(ctx context.Context, phone, codeType string) (bool, error) {
	n, err := s.client.Exists(ctx, s.resendKey(phone, codeType)).Result()
	if err != nil {
		return false, fmt.Errorf("verificar reenvío sms: %w", err)
	}
	return n == 0, nil
}

func (s *CodeStore) codeKey(phone, codeType string) string {
	return fmt.Sprintf("sms:code:%s:%s", codeType, phone)
}

func (s *CodeStore) resendKey(phone, codeType string) string {
	return fmt.Sprintf("sms:resend:%s:%s", codeType, phone)
}
