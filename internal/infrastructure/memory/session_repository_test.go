package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nongyiding-api/internal/domain"
	"github.com/jhoicas/nongyiding-api/internal/domain/session"
	"github.com/jhoicas/nongyiding-api/internal/infrastructure/memory"
)

func newState(id string) session.State {
	return session.NewState(id, "uid", "w-"+id, decimal.NewFromInt(5000), time.Now())
}

func TestSessionRepo_CreateYGet(t *testing.T) {
	repo := memory.NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newState("s1")))
	got, err := repo.Get(ctx, "s1")

	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Len(t, got.Transcript, 1)
}

func TestSessionRepo_CreateDuplicado_RetornaError(t *testing.T) {
	repo := memory.NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newState("s1")))
	err := repo.Create(ctx, newState("s1"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSessionRepo_GetInexistente(t *testing.T) {
	_, err := memory.NewSessionRepository().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepo_UpdateConError_NoGuarda(t *testing.T) {
	repo := memory.NewSessionRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newState("s1")))

	boom := errors.New("boom")
	_, err := repo.Update(ctx, "s1", func(s session.State) (session.State, error) {
		s.Pending = true
		return s, boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, got.Pending, "un fn con error no debe persistir cambios")
}

func TestSessionRepo_UpdateConcurrente_NoPierdeEscrituras(t *testing.T) {
	repo := memory.NewSessionRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newState("s1")))

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, "s1", func(s session.State) (session.State, error) {
				s.Profile.LastOrderTotal = s.Profile.LastOrderTotal.Add(decimal.NewFromInt(1))
				return s, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, got.Profile.LastOrderTotal.Equal(decimal.NewFromInt(5000+n)))
}

func TestCatalogRepo_SemillaPorDefecto(t *testing.T) {
	products, err := memory.NewCatalogRepository(nil).ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 5)
	assert.Equal(t, "大西洋鮭魚", products[0].Name)
}
