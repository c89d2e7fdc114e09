package dto

// ErrorResponse cuerpo de error HTTP. Fields lleva errores de validación por
// campo; Notice el aviso transitorio que la vista debe mostrar, si aplica.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Notice  *Notice           `json:"notice,omitempty"`
}

// Duraciones fijas de la capa de vista, en milisegundos. El cliente las usa
// para auto-descartar avisos y temporizar redirecciones tras guardar.
const (
	NoticeDismissMillis        = 3000 // visualización de un aviso transitorio
	RedirectAfterSaveMillis    = 1500 // guardado exitoso → volver al listado
	RedirectAfterMissingMillis = 2000 // registro ausente en modo edición → volver al listado
)

// Notice aviso transitorio que la vista muestra y descarta sola. Los errores
// de datos se presentan así; nunca tumban la aplicación.
type Notice struct {
	Kind          string `json:"kind"` // "success" | "error"
	Message       string `json:"message"`
	DismissAfter  int    `json:"dismiss_after_ms"`
	Redirect      string `json:"redirect,omitempty"`
	RedirectAfter int    `json:"redirect_after_ms,omitempty"`
}

// SuccessNotice aviso de éxito con redirección al listado.
func SuccessNotice(message string) Notice {
	return Notice{
		Kind:          "success",
		Message:       message,
		DismissAfter:  NoticeDismissMillis,
		Redirect:      "/products",
		RedirectAfter: RedirectAfterSaveMillis,
	}
}

// ErrorNotice aviso de error sin redirección.
func ErrorNotice(message string) Notice {
	return Notice{Kind: "error", Message: message, DismissAfter: NoticeDismissMillis}
}
