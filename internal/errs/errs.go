// Package errs contiene los errores compartidos entre capas (store, servicios, handlers).
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indica que el registro pedido no existe en el store.
	ErrNotFound = errors.New("not found")

	// ErrNotConfigured indica que falta configuración de un servicio externo.
	ErrNotConfigured = errors.New("not configured")

	// ErrUnauthorized indica credenciales inválidas.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError: faltan campos obligatorios o vienen mal formados.
// Se reporta al caller, no se reintenta.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

// PersistenceError: falló una operación contra el store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("persistence: %v", e.Err)
	}
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NotificationError: falló el canal best-effort. Nunca llega al usuario final.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string { return fmt.Sprintf("notification: %v", e.Err) }

func (e *NotificationError) Unwrap() error { return e.Err }

// AuthGateError: falló el lookup de sesión en sí (red, proveedor caído).
type AuthGateError struct {
	Err error
}

func (e *AuthGateError) Error() string { return fmt.Sprintf("session lookup: %v", e.Err) }

func (e *AuthGateError) Unwrap() error { return e.Err }

// UploadError: falló la subida de imagen al CDN.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return fmt.Sprintf("upload: %v", e.Err) }

func (e *UploadError) Unwrap() error { return e.Err }

// Missing arma un ValidationError con los campos vacíos (después de trim).
// Devuelve nil si todos tienen valor.
func Missing(fields map[string]string, order ...string) error {
	var missing []string
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Fields: missing}
}
