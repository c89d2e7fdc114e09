package session

import "github.com/commodityhub/inventory-api/internal/domain/entity"

type stateKind int

const (
	kindUnknown stateKind = iota
	kindAnonymous
	kindAuthenticated
)

// State es el tipo suma del estado de sesión: Unknown (antes de consultar el
// storage), Anonymous, o Authenticated con usuario y token. El par parcial
// token-sin-usuario (o viceversa) no es representable.
type State struct {
	kind    stateKind
	session entity.Session // válido solo cuando kind == kindAuthenticated
}

// Unknown estado inicial, antes de Restore.
func Unknown() State { return State{kind: kindUnknown} }

// Anonymous sin sesión activa.
func Anonymous() State { return State{kind: kindAnonymous} }

// Authenticated sesión activa con usuario y token.
func Authenticated(sess entity.Session) State {
	return State{kind: kindAuthenticated, session: sess}
}

// IsLoading indica que el storage aún no fue consultado.
func (s State) IsLoading() bool { return s.kind == kindUnknown }

// IsAuthenticated es verdadero únicamente cuando token y usuario existen juntos.
func (s State) IsAuthenticated() bool { return s.kind == kindAuthenticated }

// Session devuelve la sesión activa; ok=false si el estado no es Authenticated.
func (s State) Session() (entity.Session, bool) {
	if s.kind != kindAuthenticated {
		return entity.Session{}, false
	}
	return s.session, true
}
