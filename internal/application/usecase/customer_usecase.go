package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/customer-api/internal/application/dto"
	"github.com/jhoicas/customer-api/internal/domain/entity"
	"github.com/jhoicas/customer-api/internal/domain/repository"
	"github.com/jhoicas/customer-api/pkg/optional"
)

// DeletePolicy decide qué reporta DeleteByID cuando el ID no existe.
type DeletePolicy string

const (
	// DeleteIdempotent: borrar siempre reporta éxito (reintentos seguros).
	DeleteIdempotent DeletePolicy = "idempotent"
	// DeleteStrict: borrar un ID inexistente reporta false (404 en la API).
	DeleteStrict DeletePolicy = "strict"
)

// ParseDeletePolicy interpreta el valor de configuración; vacío = idempotent.
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch DeletePolicy(s) {
	case "", DeleteIdempotent:
		return DeleteIdempotent, nil
	case DeleteStrict:
		return DeleteStrict, nil
	default:
		return "", fmt.Errorf("política de borrado desconocida: %q", s)
	}
}

// CustomerUseCase contrato que consume la capa HTTP. Las búsquedas devuelven
// optional.Optional para que "no encontrado" se maneje explícitamente.
type CustomerUseCase struct {
	store        repository.CustomerStore
	deletePolicy DeletePolicy
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(store repository.CustomerStore, policy DeletePolicy) *CustomerUseCase {
	if policy == "" {
		policy = DeleteIdempotent
	}
	return &CustomerUseCase{store: store, deletePolicy: policy}
}

// DeletePolicy política de borrado activa.
func (uc *CustomerUseCase) DeletePolicy() DeletePolicy { return uc.deletePolicy }

// ListCustomers lista todos los clientes. Nunca devuelve nil.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// GetCustomerByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetCustomerByID(ctx context.Context, id uuid.UUID) (optional.Optional[dto.CustomerResponse], error) {
	c, found, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return optional.Empty[dto.CustomerResponse](), err
	}
	return optional.Map(optional.FromPair(c, found), toCustomerResponse), nil
}

// SaveNewCustomer crea un cliente y devuelve el guardado, con su ID generado.
func (uc *CustomerUseCase) SaveNewCustomer(ctx context.Context, in dto.CreateCustomerRequest) (dto.CustomerResponse, error) {
	c, err := uc.store.Create(ctx, entity.Customer{
		CustomerName: in.CustomerName,
		Version:      in.Version,
	})
	if err != nil {
		return dto.CustomerResponse{}, err
	}
	return toCustomerResponse(c), nil
}

// UpdateCustomerByID reemplaza CustomerName y Version.
func (uc *CustomerUseCase) UpdateCustomerByID(ctx context.Context, id uuid.UUID, in dto.UpdateCustomerRequest) (optional.Optional[dto.CustomerResponse], error) {
	c, found, err := uc.store.Update(ctx, id, entity.Customer{
		CustomerName: in.CustomerName,
		Version:      in.Version,
	})
	if err != nil {
		return optional.Empty[dto.CustomerResponse](), err
	}
	return optional.Map(optional.FromPair(c, found), toCustomerResponse), nil
}

// PatchCustomerByID aplica solo los campos presentes (nombre en blanco se ignora).
func (uc *CustomerUseCase) PatchCustomerByID(ctx context.Context, id uuid.UUID, in dto.PatchCustomerRequest) (optional.Optional[dto.CustomerResponse], error) {
	c, found, err := uc.store.Patch(ctx, id, entity.CustomerPatch{
		CustomerName: in.CustomerName,
		Version:      in.Version,
	})
	if err != nil {
		return optional.Empty[dto.CustomerResponse](), err
	}
	return optional.Map(optional.FromPair(c, found), toCustomerResponse), nil
}

// DeleteByID elimina un cliente. Con DeleteIdempotent siempre devuelve true;
// con DeleteStrict devuelve false si el ID no existía.
func (uc *CustomerUseCase) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	existed, err := uc.store.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if uc.deletePolicy == DeleteStrict {
		return existed, nil
	}
	return true, nil
}

func toCustomerResponse(c entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:               c.ID,
		CustomerName:     c.CustomerName,
		Version:          c.Version,
		CreatedDate:      c.CreatedDate,
		LastModifiedDate: c.LastModifiedDate,
	}
}
