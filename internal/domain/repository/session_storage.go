package repository

import "context"

// SessionStorage define el contrato key/value del almacenamiento durable de
// sesión (análogo al localStorage del cliente). Dos llaves fijas: token y
// usuario serializado. Los internos del mecanismo quedan fuera de este núcleo.
type SessionStorage interface {
	// Get retorna ok=false si la llave no existe.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete es idempotente: borrar llaves inexistentes no es error.
	Delete(ctx context.Context, keys ...string) error
}
