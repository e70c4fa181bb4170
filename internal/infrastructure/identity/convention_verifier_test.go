package identity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/nongyiding-api/internal/application/ports"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/infrastructure/identity"
)

func TestConventionVerifier_PrefijoAdmin_EsAdmin(t *testing.T) {
	v := identity.NewConventionVerifier(identity.ConventionConfig{})

	got := v.Verify(context.Background(), "ADMIN-VIP", "0912345678")

	assert.Equal(t, ports.VerificationVerified, got.Outcome)
	assert.Equal(t, entity.RoleAdmin, got.Role)
	assert.Equal(t, "王小明老闆", got.Name)
}

func TestConventionVerifier_OtroCodigo_EsCliente(t *testing.T) {
	v := identity.NewConventionVerifier(identity.ConventionConfig{})

	got := v.Verify(context.Background(), "CUST001", "0912345678")

	assert.Equal(t, ports.VerificationVerified, got.Outcome)
	assert.Equal(t, entity.RoleCustomer, got.Role)
}

func TestConventionVerifier_Centinela_NoEncontrado(t *testing.T) {
	v := identity.NewConventionVerifier(identity.ConventionConfig{})

	got := v.Verify(context.Background(), "ERR-123", "0912345678")

	assert.Equal(t, ports.VerificationNotFound, got.Outcome)
	assert.Empty(t, got.Role)
}

func TestConventionVerifier_PrefijoEsSensibleAMayusculas(t *testing.T) {
	v := identity.NewConventionVerifier(identity.ConventionConfig{})

	got := v.Verify(context.Background(), "admin-1", "0912345678")

	assert.Equal(t, entity.RoleCustomer, got.Role)
}

func TestConventionVerifier_ConfigPersonalizada(t *testing.T) {
	v := identity.NewConventionVerifier(identity.ConventionConfig{
		AdminPrefix: "BOSS", NotFoundID: "NOPE", DisplayName: "陳老闆",
	})

	assert.Equal(t, entity.RoleAdmin, v.Verify(context.Background(), "BOSS-1", "x").Role)
	assert.Equal(t, entity.RoleCustomer, v.Verify(context.Background(), "ADMIN-1", "x").Role)
	assert.Equal(t, ports.VerificationNotFound, v.Verify(context.Background(), "NOPE", "x").Outcome)
	assert.Equal(t, "陳老闆", v.Verify(context.Background(), "C1", "x").Name)
}

func TestConventionVerifier_ContextoCancelado_ErrorTransitorio(t *testing.T) {
	v := identity.NewConventionVerifier(identity.ConventionConfig{Latency: time.Minute})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := v.Verify(ctx, "CUST001", "0912345678")

	assert.Equal(t, ports.VerificationTransientError, got.Outcome)
	assert.True(t, errors.Is(got.Err, context.Canceled))
}

func TestConventionVerifier_EsperaLaLatencia(t *testing.T) {
	v := identity.NewConventionVerifier(identity.ConventionConfig{Latency: 30 * time.Millisecond})

	start := time.Now()
	got := v.Verify(context.Background(), "CUST001", "0912345678")

	assert.Equal(t, ports.VerificationVerified, got.Outcome)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
