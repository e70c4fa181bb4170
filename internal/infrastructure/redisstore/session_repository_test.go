package redisstore_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nongyiding-api/internal/domain"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/domain/session"
	"github.com/jhoicas/nongyiding-api/internal/infrastructure/redisstore"
)

// newRepo requiere REDIS_TEST_ADDR (ej. localhost:6379); sin él el test se omite.
func newRepo(t *testing.T) *redisstore.SessionRepo {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR no definido")
	}
	client, err := redisstore.NewClient(context.Background(), addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return redisstore.NewSessionRepository(client, time.Minute)
}

func TestRedisSessionRepo_RoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	id := uuid.NewString()
	state := session.NewState(id, "uid", "w-1", decimal.NewFromInt(5000), time.Now().UTC())

	require.NoError(t, repo.Create(ctx, state))
	assert.ErrorIs(t, repo.Create(ctx, state), domain.ErrInvalidInput)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleGuest, got.Profile.Role)
	assert.True(t, got.Profile.LastOrderTotal.Equal(decimal.NewFromInt(5000)))
	require.Len(t, got.Transcript, 1)
}

func TestRedisSessionRepo_GetInexistente(t *testing.T) {
	repo := newRepo(t)
	_, err := repo.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRedisSessionRepo_UpdateConcurrente(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	id := uuid.NewString()
	require.NoError(t, repo.Create(ctx, session.NewState(id, "uid", "w-1", decimal.Zero, time.Now().UTC())))

	const n = 5
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, id, func(s session.State) (session.State, error) {
				s.Profile.LastOrderTotal = s.Profile.LastOrderTotal.Add(decimal.NewFromInt(1))
				return s, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Profile.LastOrderTotal.Equal(decimal.NewFromInt(n)))
}
