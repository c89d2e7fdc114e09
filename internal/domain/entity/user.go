package entity

// Roles válidos para User. Son mutuamente excluyentes: MANAGER puede ver el
// dashboard, STORE_KEEPER no.
const (
	RoleManager     = "MANAGER"
	RoleStoreKeeper = "STORE_KEEPER"
)

// User representa un usuario del sistema. Inmutable después de su creación.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // MANAGER | STORE_KEEPER
}

// Credential es una entrada del set fijo de credenciales del backend simulado.
// PasswordHash es bcrypt; el password en claro nunca sale del seed.
type Credential struct {
	User         User
	PasswordHash string
}
