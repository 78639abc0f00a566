package memory

import (
	"context"

	"github.com/jhoicas/customer-api/internal/domain/entity"
	"github.com/jhoicas/customer-api/internal/domain/repository"
)

// DefaultCustomers datos iniciales de demostración.
func DefaultCustomers() []entity.Customer {
	return []entity.Customer{
		{CustomerName: "Albert", Version: "3542"},
		{CustomerName: "Felix", Version: "2458"},
		{CustomerName: "Wilson", Version: "8999"},
	}
}

// Seed crea cada cliente en el store y devuelve los clientes guardados.
func Seed(ctx context.Context, store repository.CustomerStore, customers []entity.Customer) ([]entity.Customer, error) {
	out := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		saved, err := store.Create(ctx, c)
		if err != nil {
			return out, err
		}
		out = append(out, saved)
	}
	return out, nil
}
