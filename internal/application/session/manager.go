// Package session implementa el administrador de sesión: máquina de estados
// Unknown → Anonymous | Authenticated, con persistencia en el storage durable
// bajo exactamente dos llaves (token y usuario serializado).
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/commodityhub/inventory-api/internal/domain"
	"github.com/commodityhub/inventory-api/internal/domain/entity"
	"github.com/commodityhub/inventory-api/internal/domain/repository"
)

// Keys nombres de las dos llaves del layout persistido.
type Keys struct {
	Token string
	User  string
}

// DefaultKeys layout heredado del cliente original.
var DefaultKeys = Keys{Token: "commodityhub_token", User: "commodityhub_user"}

// Manager es el dueño del estado de sesión actual. Arranca en Unknown; Restore
// lo resuelve contra el storage. Login y Logout son las únicas transiciones
// posteriores. Seguro para uso concurrente.
type Manager struct {
	mu      sync.RWMutex
	state   State
	storage repository.SessionStorage
	auth    repository.Authenticator
	keys    Keys
}

// NewManager construye el manager en estado Unknown.
func NewManager(storage repository.SessionStorage, auth repository.Authenticator, keys Keys) *Manager {
	if keys.Token == "" || keys.User == "" {
		keys = DefaultKeys
	}
	return &Manager{
		state:   Unknown(),
		storage: storage,
		auth:    auth,
		keys:    keys,
	}
}

// Restore consulta el storage y resuelve el estado inicial. Si ambas llaves
// existen y el payload del usuario parsea como válido, la sesión se restaura;
// en cualquier otro caso (llave faltante o payload corrupto) se limpian ambas
// llaves y el estado queda Anonymous. El estado corrupto se auto-repara aquí:
// nunca llega al usuario como error.
func (m *Manager) Restore(ctx context.Context) error {
	token, tokenOK, err := m.storage.Get(ctx, m.keys.Token)
	if err != nil {
		return err
	}
	rawUser, userOK, err := m.storage.Get(ctx, m.keys.User)
	if err != nil {
		return err
	}

	if !tokenOK || !userOK || token == "" {
		return m.heal(ctx)
	}

	var user entity.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.ID == "" {
		// domain.ErrMalformedSession: recuperado localmente, no se propaga.
		return m.heal(ctx)
	}

	m.setState(Authenticated(entity.Session{Token: token, User: user}))
	return nil
}

// heal limpia ambas llaves y deja el estado en Anonymous.
func (m *Manager) heal(ctx context.Context) error {
	if err := m.storage.Delete(ctx, m.keys.Token, m.keys.User); err != nil {
		return err
	}
	m.setState(Anonymous())
	return nil
}

// Login delega en el autenticador del store. En éxito escribe ambas llaves y
// transiciona a Authenticated; en fallo el estado no cambia y el error se
// propaga al llamador sin reintentos.
func (m *Manager) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	sess, err := m.auth.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return nil, err
	}
	if err := m.storage.Set(ctx, m.keys.Token, sess.Token); err != nil {
		return nil, err
	}
	if err := m.storage.Set(ctx, m.keys.User, string(rawUser)); err != nil {
		return nil, err
	}

	m.setState(Authenticated(*sess))
	return sess, nil
}

// Logout transiciona a Anonymous y limpia ambas llaves. Incondicional: un
// fallo del storage no impide la transición.
func (m *Manager) Logout(ctx context.Context) {
	_ = m.storage.Delete(ctx, m.keys.Token, m.keys.User)
	m.setState(Anonymous())
}

// State devuelve el estado actual.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// IsAuthenticated derivado: el estado es Authenticated.
func (m *Manager) IsAuthenticated() bool { return m.State().IsAuthenticated() }

// IsLoading derivado: el storage aún no fue consultado.
func (m *Manager) IsLoading() bool { return m.State().IsLoading() }

// Matches indica si token corresponde a la sesión activa. Un token emitido
// antes de un logout deja de coincidir de inmediato.
func (m *Manager) Matches(token string) bool {
	sess, ok := m.State().Session()
	return ok && token != "" && sess.Token == token
}

// Current devuelve la sesión activa o domain.ErrUnauthorized.
func (m *Manager) Current() (*entity.Session, error) {
	sess, ok := m.State().Session()
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	out := sess
	return &out, nil
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}
