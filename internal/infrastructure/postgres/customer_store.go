package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/customer-api/internal/domain/entity"
	"github.com/jhoicas/customer-api/internal/domain/repository"
)

var _ repository.CustomerStore = (*CustomerStore)(nil)

// Schema DDL de la tabla customers.
const Schema = `
CREATE TABLE IF NOT EXISTS customers (
	id                 UUID PRIMARY KEY,
	customer_name      TEXT NOT NULL DEFAULT '',
	version            TEXT NOT NULL DEFAULT '',
	created_date       TIMESTAMPTZ NOT NULL,
	last_modified_date TIMESTAMPTZ NOT NULL
)`

const customerColumns = `id, customer_name, version, created_date, last_modified_date`

// maxInsertAttempts reintentos ante colisión de UUID.
const maxInsertAttempts = 3

// CustomerStore implementación de CustomerStore sobre PostgreSQL (usable con pool o tx).
// Cada operación es una sola sentencia, así que check-then-write es atómico.
type CustomerStore struct {
	q   Querier
	now func() time.Time
}

// NewCustomerStore construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerStore(q Querier) *CustomerStore {
	return &CustomerStore{q: q, now: time.Now}
}

// EnsureSchema crea la tabla si no existe.
func (s *CustomerStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("crear tabla customers: %w", err)
	}
	return nil
}

// List lista todos los clientes por fecha de creación.
func (s *CustomerStore) List(ctx context.Context) ([]entity.Customer, error) {
	rows, err := s.q.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY created_date, id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	list := make([]entity.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID obtiene un cliente por ID.
func (s *CustomerStore) GetByID(ctx context.Context, id uuid.UUID) (entity.Customer, bool, error) {
	row := s.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	return oneCustomer(row, "get customer")
}

// Create inserta un cliente con ID y fechas generados aquí.
func (s *CustomerStore) Create(ctx context.Context, in entity.Customer) (entity.Customer, error) {
	now := s.timestamp()
	c := entity.Customer{
		CustomerName:     in.CustomerName,
		Version:          in.Version,
		CreatedDate:      now,
		LastModifiedDate: now,
	}
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5)`

	var err error
	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		c.ID = uuid.New()
		_, err = s.q.Exec(ctx, query, c.ID, c.CustomerName, c.Version, c.CreatedDate, c.LastModifiedDate)
		if err == nil {
			return c, nil
		}
		if !isUniqueViolation(err) {
			break
		}
	}
	return entity.Customer{}, fmt.Errorf("insert customer: %w", err)
}

// Update sobrescribe customer_name y version.
func (s *CustomerStore) Update(ctx context.Context, id uuid.UUID, in entity.Customer) (entity.Customer, bool, error) {
	query := `
		UPDATE customers SET customer_name = $2, version = $3, last_modified_date = $4
		WHERE id = $1
		RETURNING ` + customerColumns
	row := s.q.QueryRow(ctx, query, id, in.CustomerName, in.Version, s.timestamp())
	return oneCustomer(row, "update customer")
}

// Patch aplica solo los campos presentes; NULL en un parámetro conserva la columna.
func (s *CustomerStore) Patch(ctx context.Context, id uuid.UUID, patch entity.CustomerPatch) (entity.Customer, bool, error) {
	var name *string
	if entity.HasText(patch.CustomerName) {
		name = patch.CustomerName
	}
	query := `
		UPDATE customers SET
			customer_name = COALESCE($2, customer_name),
			version = COALESCE($3, version),
			last_modified_date = $4
		WHERE id = $1
		RETURNING ` + customerColumns
	row := s.q.QueryRow(ctx, query, id, name, patch.Version, s.timestamp())
	return oneCustomer(row, "patch customer")
}

// Delete elimina un cliente; reporta si existía.
func (s *CustomerStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// timestamp recorta a microsegundos, la precisión de TIMESTAMPTZ.
func (s *CustomerStore) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func scanCustomer(row pgx.Row) (entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.CustomerName, &c.Version, &c.CreatedDate, &c.LastModifiedDate)
	return c, err
}

func oneCustomer(row pgx.Row, op string) (entity.Customer, bool, error) {
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Customer{}, false, nil
		}
		return entity.Customer{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return c, true, nil
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
