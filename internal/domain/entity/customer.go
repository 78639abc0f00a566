package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer representa un cliente gestionado por la API.
// ID y CreatedDate no cambian después de la creación.
type Customer struct {
	ID               uuid.UUID
	CustomerName     string
	Version          string // sello opaco de concurrencia optimista; no se valida
	CreatedDate      time.Time
	LastModifiedDate time.Time
}

// CustomerPatch payload disperso para actualización parcial (nil = ausente).
type CustomerPatch struct {
	CustomerName *string
	Version      *string
}

// HasText indica si s no es nil y contiene al menos un carácter que no sea espacio.
func HasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// Apply fusiona el patch sobre c: CustomerName solo si tiene texto, Version si no es nil.
// Devuelve true si se modificó algún campo.
func (p CustomerPatch) Apply(c *Customer) bool {
	changed := false
	if HasText(p.CustomerName) {
		c.CustomerName = *p.CustomerName
		changed = true
	}
	if p.Version != nil {
		c.Version = *p.Version
		changed = true
	}
	return changed
}
