package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/nongyiding-api/internal/application/dto"
	"github.com/jhoicas/nongyiding-api/internal/application/ports"
	"github.com/jhoicas/nongyiding-api/internal/domain"
	"github.com/jhoicas/nongyiding-api/internal/domain/repository"
	"github.com/jhoicas/nongyiding-api/internal/domain/session"
	"github.com/jhoicas/nongyiding-api/pkg/logger"
)

// BindingUseCase vincula y desvincula la identidad de cliente de una sesión.
type BindingUseCase struct {
	repo     repository.SessionRepository
	machine  *session.Machine
	verifier ports.IdentityVerifier
	log      *logger.Logger
}

// NewBindingUseCase construye el caso de uso.
func NewBindingUseCase(
	repo repository.SessionRepository,
	machine *session.Machine,
	verifier ports.IdentityVerifier,
	log *logger.Logger,
) *BindingUseCase {
	return &BindingUseCase{repo: repo, machine: machine, verifier: verifier, log: log.Component("binding")}
}

// Bind verifica código de cliente y teléfono y, si el verificador los acepta, vincula la sesión.
// NotFound y TransientError no modifican el estado.
func (uc *BindingUseCase) Bind(ctx context.Context, sessionID string, in dto.BindRequest) (*dto.ProfileResponse, error) {
	current, err := uc.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	_, effects, err := uc.machine.Apply(*current, session.BindingRequested{CustomerID: in.CustomerID, Phone: in.Phone})
	if err != nil {
		return nil, err
	}
	var req session.VerifyIdentity
	for _, e := range effects {
		if v, ok := e.(session.VerifyIdentity); ok {
			req = v
		}
	}

	v := uc.verifier.Verify(ctx, req.CustomerID, req.Phone)
	switch v.Outcome {
	case ports.VerificationVerified:
	case ports.VerificationNotFound:
		return nil, domain.ErrCustomerNotFound
	default:
		uc.log.Warn().Err(v.Err).Str("session_id", sessionID).Msg("verificación de identidad no disponible")
		return nil, fmt.Errorf("%w: %v", domain.ErrVerificationUnavailable, v.Err)
	}

	state, err := uc.repo.Update(ctx, sessionID, func(s session.State) (session.State, error) {
		next, _, err := uc.machine.Apply(s, session.BindingVerified{
			CustomerID: req.CustomerID,
			Phone:      req.Phone,
			Name:       v.Name,
			Role:       v.Role,
			At:         time.Now().UTC(),
		})
		return next, err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("session_id", sessionID).Str("role", string(v.Role)).Msg("identidad vinculada")
	p := toProfileResponse(state.Profile)
	return &p, nil
}

// Unbind vuelve la sesión a invitado conservando la base de pedidos.
func (uc *BindingUseCase) Unbind(ctx context.Context, sessionID string) (*dto.ProfileResponse, error) {
	state, err := uc.repo.Update(ctx, sessionID, func(s session.State) (session.State, error) {
		next, _, err := uc.machine.Apply(s, session.Unbound{At: time.Now().UTC()})
		return next, err
	})
	if err != nil {
		return nil, err
	}
	p := toProfileResponse(state.Profile)
	return &p, nil
}
