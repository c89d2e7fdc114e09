package entity

// Session es el par token + usuario autenticado. El invariante del sistema es
// que ambos existen simultáneamente: nunca se construye una Session parcial.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
