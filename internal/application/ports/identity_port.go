package ports

import (
	"context"

	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

// VerificationOutcome resultado posible de una verificación de identidad.
type VerificationOutcome int

const (
	VerificationVerified VerificationOutcome = iota + 1
	VerificationNotFound
	VerificationTransientError
)

// Verification resultado de IdentityVerifier: exactamente uno de Verified, NotFound o TransientError.
type Verification struct {
	Outcome VerificationOutcome
	Name    string      // solo con Verified
	Role    entity.Role // solo con Verified: CUSTOMER o ADMIN
	Err     error       // solo con TransientError
}

// Verified construye un resultado exitoso.
func Verified(name string, role entity.Role) Verification {
	return Verification{Outcome: VerificationVerified, Name: name, Role: role}
}

// NotFound construye el rechazo "cliente no encontrado".
func NotFound() Verification {
	return Verification{Outcome: VerificationNotFound}
}

// TransientError construye un fallo recuperable del sistema de registro.
func TransientError(err error) Verification {
	return Verification{Outcome: VerificationTransientError, Err: err}
}

// IdentityVerifier verifica un código de cliente ERP y un teléfono contra el sistema de registro.
type IdentityVerifier interface {
	Verify(ctx context.Context, customerID, phone string) Verification
}
