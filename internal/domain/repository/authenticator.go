package repository

import (
	"context"

	"github.com/commodityhub/inventory-api/internal/domain/entity"
)

// Authenticator define el puerto de autenticación contra el set fijo de
// credenciales. El token de la Session resultante es único por llamada.
type Authenticator interface {
	// Authenticate retorna domain.ErrInvalidCredentials si el par
	// email/password no coincide con ninguna credencial (match exacto,
	// sensible a mayúsculas en el email).
	Authenticate(ctx context.Context, email, password string) (*entity.Session, error)
}
