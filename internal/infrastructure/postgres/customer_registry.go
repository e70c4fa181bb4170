package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nongyiding-api/internal/application/ports"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

var _ ports.IdentityVerifier = (*CustomerRegistry)(nil)

// CustomerRegistry registro de clientes ERP. El teléfono se guarda como hash bcrypt.
type CustomerRegistry struct {
	q Querier
}

// NewCustomerRegistry construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRegistry(q Querier) *CustomerRegistry {
	return &CustomerRegistry{q: q}
}

// Verify busca el código de cliente y compara el teléfono con el hash guardado.
// Un teléfono que no coincide se reporta igual que un cliente inexistente.
func (r *CustomerRegistry) Verify(ctx context.Context, customerID, phone string) ports.Verification {
	query := `SELECT name, phone_hash, role FROM customers WHERE customer_id = $1`
	var name, hash, role string
	err := r.q.QueryRow(ctx, query, customerID).Scan(&name, &hash, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ports.NotFound()
		}
		return ports.TransientError(fmt.Errorf("get customer: %w", err))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(phone)); err != nil {
		return ports.NotFound()
	}
	return ports.Verified(name, parseRole(role))
}

// Register inserta o actualiza un cliente guardando el hash del teléfono.
func (r *CustomerRegistry) Register(ctx context.Context, customerID, phone, name string, role entity.Role) error {
	if !role.IsBound() {
		return fmt.Errorf("register customer %s: rol inválido %q", customerID, role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(phone), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash phone: %w", err)
	}
	query := `
		INSERT INTO customers (customer_id, name, phone_hash, role, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (customer_id) DO UPDATE SET
			name = EXCLUDED.name,
			phone_hash = EXCLUDED.phone_hash,
			role = EXCLUDED.role,
			updated_at = now()`
	if _, err := r.q.Exec(ctx, query, customerID, name, string(hash), string(role)); err != nil {
		return fmt.Errorf("upsert customer %s: %w", customerID, err)
	}
	return nil
}

func parseRole(s string) entity.Role {
	if entity.Role(s) == entity.RoleAdmin {
		return entity.RoleAdmin
	}
	return entity.RoleCustomer
}
