package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/nongyiding-api/internal/domain"
	"github.com/jhoicas/nongyiding-api/internal/domain/repository"
	"github.com/jhoicas/nongyiding-api/internal/domain/session"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo sesiones en un mapa protegido por mutex. Se pierden al reiniciar.
type SessionRepo struct {
	mu       sync.Mutex
	sessions map[string]session.State
}

func NewSessionRepository() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]session.State)}
}

func (r *SessionRepo) Create(_ context.Context, state session.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[state.ID]; ok {
		return fmt.Errorf("%w: sesión %s ya existe", domain.ErrInvalidInput, state.ID)
	}
	r.sessions[state.ID] = state
	return nil
}

func (r *SessionRepo) Get(_ context.Context, id string) (*session.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &s, nil
}

// Update mantiene el lock mientras corre fn, así que fn no debe llamar al repositorio.
func (r *SessionRepo) Update(_ context.Context, id string, fn func(session.State) (session.State, error)) (*session.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	next, err := fn(cur)
	if err != nil {
		return nil, err
	}
	r.sessions[id] = next
	return &next, nil
}
