package usecase

import (
	"context"

	"github.com/jhoicas/nongyiding-api/internal/application/ports"
	"github.com/jhoicas/nongyiding-api/internal/domain"
	"github.com/jhoicas/nongyiding-api/internal/domain/repository"
)

// SlipUseCase comprobante PDF de pedidos confirmados. Con generator nil responde ErrSlipUnavailable.
type SlipUseCase struct {
	repo      repository.SessionRepository
	generator ports.OrderSlipGenerator
}

func NewSlipUseCase(repo repository.SessionRepository, generator ports.OrderSlipGenerator) *SlipUseCase {
	return &SlipUseCase{repo: repo, generator: generator}
}

// Generate solo acepta mensajes de la propia sesión con el pedido ya confirmado.
func (uc *SlipUseCase) Generate(ctx context.Context, sessionID, messageID string) ([]byte, error) {
	if uc.generator == nil {
		return nil, domain.ErrSlipUnavailable
	}
	s, err := uc.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	msg, ok := s.Message(messageID)
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	if msg.Order == nil || !msg.Confirmed {
		return nil, domain.ErrOrderNotConfirmed
	}
	return uc.generator.GenerateOrderSlip(ctx, s.Profile, msg)
}
