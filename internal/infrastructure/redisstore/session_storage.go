// Package redisstore implementa el almacenamiento durable key/value de sesión
// sobre Redis.
package redisstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/commodityhub/inventory-api/internal/domain/repository"
)

// SessionStorage adapta un cliente Redis al contrato key/value de sesión.
// Las llaves viven sin TTL: la sesión persiste hasta logout explícito, igual
// que el almacenamiento del cliente que reemplaza.
type SessionStorage struct {
	client *redis.Client
}

var _ repository.SessionStorage = (*SessionStorage)(nil)

// New construye el storage sobre el cliente dado.
func New(client *redis.Client) *SessionStorage {
	return &SessionStorage{client: client}
}

// Get retorna ok=false si la llave no existe.
func (s *SessionStorage) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

// Set escribe la llave sin expiración.
func (s *SessionStorage) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Delete borra las llaves indicadas; inexistentes no es error.
func (s *SessionStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
