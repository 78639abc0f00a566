package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCustomerRequest body para POST /api/v1/customer.
// ID y fechas, si vienen, se ignoran: los asigna el store.
type CreateCustomerRequest struct {
	CustomerName string `json:"customerName" validate:"required,max=255"`
	Version      string `json:"version" validate:"max=64"`
}

// UpdateCustomerRequest body para PUT /api/v1/customer/{id} (reemplazo completo).
type UpdateCustomerRequest struct {
	CustomerName string `json:"customerName" validate:"max=255"`
	Version      string `json:"version" validate:"max=64"`
}

// PatchCustomerRequest body disperso para PATCH /api/v1/customer/{id}.
type PatchCustomerRequest struct {
	CustomerName *string `json:"customerName" validate:"omitempty,max=255"`
	Version      *string `json:"version" validate:"omitempty,max=64"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID               uuid.UUID `json:"id"`
	CustomerName     string    `json:"customerName"`
	Version          string    `json:"version"`
	CreatedDate      time.Time `json:"createdDate"`
	LastModifiedDate time.Time `json:"lastModifiedDate"`
}
