package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/customer-api/internal/domain/entity"
)

// CustomerStore define el puerto de almacenamiento para Customer.
// La ausencia se reporta con found=false, nunca como error; el error queda
// reservado para fallos de infraestructura.
type CustomerStore interface {
	List(ctx context.Context) ([]entity.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (c entity.Customer, found bool, err error)
	// Create ignora ID y fechas del input; asigna un ID nuevo y sella las fechas.
	Create(ctx context.Context, in entity.Customer) (entity.Customer, error)
	// Update sobrescribe CustomerName y Version.
	Update(ctx context.Context, id uuid.UUID, in entity.Customer) (c entity.Customer, found bool, err error)
	Patch(ctx context.Context, id uuid.UUID, patch entity.CustomerPatch) (c entity.Customer, found bool, err error)
	// Delete elimina el cliente y reporta si existía.
	Delete(ctx context.Context, id uuid.UUID) (existed bool, err error)
}
