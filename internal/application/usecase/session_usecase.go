package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nongyiding-api/internal/application/dto"
	"github.com/jhoicas/nongyiding-api/internal/domain/repository"
	"github.com/jhoicas/nongyiding-api/internal/domain/session"
	pkgjwt "github.com/jhoicas/nongyiding-api/pkg/jwt"
)

// SessionConfig parámetros de emisión de sesiones.
type SessionConfig struct {
	JWTSecret         string
	JWTIssuer         string
	ExpirationMinutes int
	InitialBaseline   decimal.Decimal
}

// SessionUseCase crea sesiones de invitado y emite su token.
type SessionUseCase struct {
	repo repository.SessionRepository
	cfg  SessionConfig
}

// NewSessionUseCase construye el caso de uso.
func NewSessionUseCase(repo repository.SessionRepository, cfg SessionConfig) *SessionUseCase {
	return &SessionUseCase{repo: repo, cfg: cfg}
}

// Start crea una sesión de invitado con la base sembrada y el saludo inicial.
func (uc *SessionUseCase) Start(ctx context.Context, in dto.StartSessionRequest) (*dto.StartSessionResponse, error) {
	uid := strings.TrimSpace(in.UID)
	if uid == "" {
		uid = "guest_" + uuid.NewString()[:8]
	}
	state := session.NewState(uuid.NewString(), uid, uuid.NewString(), uc.cfg.InitialBaseline, time.Now().UTC())
	if err := uc.repo.Create(ctx, state); err != nil {
		return nil, fmt.Errorf("crear sesión: %w", err)
	}
	token, err := pkgjwt.Generate(uc.cfg.JWTSecret, state.ID, uid, uc.cfg.JWTIssuer, uc.cfg.ExpirationMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.StartSessionResponse{Token: token, Session: *toSessionResponse(&state)}, nil
}

// Get devuelve la vista completa de la sesión.
func (uc *SessionUseCase) Get(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	s, err := uc.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(s), nil
}

// Exists devuelve domain.ErrSessionNotFound si la sesión ya no está guardada.
func (uc *SessionUseCase) Exists(ctx context.Context, sessionID string) error {
	_, err := uc.repo.Get(ctx, sessionID)
	return err
}
