// Package identity contiene verificadores de identidad que no dependen de un registro externo.
package identity

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/nongyiding-api/internal/application/ports"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
)

var _ ports.IdentityVerifier = (*ConventionVerifier)(nil)

// ConventionVerifier verificador provisional basado en convenciones de nombre:
// códigos con el prefijo de administrador son ADMIN, el código centinela no existe
// y cualquier otro código es CUSTOMER.
type ConventionVerifier struct {
	adminPrefix string
	notFoundID  string
	displayName string
	latency     time.Duration
}

// ConventionConfig parámetros del verificador.
type ConventionConfig struct {
	AdminPrefix string        // por defecto "ADMIN"
	NotFoundID  string        // por defecto "ERR-123"
	DisplayName string        // nombre asignado a toda identidad verificada
	Latency     time.Duration // demora simulada del sistema de registro
}

// NewConventionVerifier construye el verificador aplicando valores por defecto.
func NewConventionVerifier(cfg ConventionConfig) *ConventionVerifier {
	if cfg.AdminPrefix == "" {
		cfg.AdminPrefix = "ADMIN"
	}
	if cfg.NotFoundID == "" {
		cfg.NotFoundID = "ERR-123"
	}
	if cfg.DisplayName == "" {
		cfg.DisplayName = "王小明老闆"
	}
	return &ConventionVerifier{
		adminPrefix: cfg.AdminPrefix,
		notFoundID:  cfg.NotFoundID,
		displayName: cfg.DisplayName,
		latency:     cfg.Latency,
	}
}

// Verify espera la latencia configurada (o la cancelación del contexto) y aplica la convención.
// El teléfono no se valida.
func (v *ConventionVerifier) Verify(ctx context.Context, customerID, _ string) ports.Verification {
	if v.latency > 0 {
		timer := time.NewTimer(v.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ports.TransientError(ctx.Err())
		case <-timer.C:
		}
	}

	switch {
	case customerID == v.notFoundID:
		return ports.NotFound()
	case strings.HasPrefix(customerID, v.adminPrefix):
		return ports.Verified(v.displayName, entity.RoleAdmin)
	default:
		return ports.Verified(v.displayName, entity.RoleCustomer)
	}
}
