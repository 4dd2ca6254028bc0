package supabase

import (
	"errors"
	"fmt"
)

// ErrNoRows consulta de fila única sin filas coincidentes. Es distinguible de
// un fallo de transporte o de un rechazo del backend.
var ErrNoRows = errors.New("supabase: sin filas coincidentes")

// TransportError fallo de red o timeout alcanzando el backend. Reintentable.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("supabase: transporte: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BackendError respuesta no-2xx del backend; conserva el status y el detalle
// devuelto (por ejemplo una violación de constraint en un insert).
type BackendError struct {
	Status int
	Detail string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("supabase: backend respondió %d: %s", e.Status, e.Detail)
}
