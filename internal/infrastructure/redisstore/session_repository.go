// Package redisstore guarda el estado de las sesiones en Redis para compartirlo entre réplicas.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/nongyiding-api/internal/domain"
	"github.com/jhoicas/nongyiding-api/internal/domain/repository"
	"github.com/jhoicas/nongyiding-api/internal/domain/session"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

const (
	keyPrefix  = "nongyiding:session:"
	maxRetries = 10
)

// SessionRepo sesiones serializadas en JSON, una clave por sesión con TTL renovado en cada escritura.
type SessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClient crea el cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// NewSessionRepository ttl <= 0 deja las claves sin expiración.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepo {
	if ttl < 0 {
		ttl = 0
	}
	return &SessionRepo{client: client, ttl: ttl}
}

func key(id string) string { return keyPrefix + id }

func (r *SessionRepo) Create(ctx context.Context, state session.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	ok, err := r.client.SetNX(ctx, key(state.ID), raw, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: sesión %s ya existe", domain.ErrInvalidInput, state.ID)
	}
	return nil
}

func (r *SessionRepo) Get(ctx context.Context, id string) (*session.State, error) {
	raw, err := r.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return decode(raw)
}

// Update usa WATCH/MULTI: si otra escritura toca la clave entre la lectura y el EXEC, se reintenta.
func (r *SessionRepo) Update(ctx context.Context, id string, fn func(session.State) (session.State, error)) (*session.State, error) {
	k := key(id)
	var result session.State

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, k).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return domain.ErrSessionNotFound
			}
			return fmt.Errorf("redis get: %w", err)
		}
		cur, err := decode(raw)
		if err != nil {
			return err
		}
		next, err := fn(*cur)
		if err != nil {
			return err
		}
		encoded, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("serializar sesión: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, encoded, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		result = next
		return nil
	}

	for i := 0; i < maxRetries; i++ {
		err := r.client.Watch(ctx, txf, k)
		if err == nil {
			return &result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("redis: sesión %s: demasiados conflictos de escritura", id)
}

func decode(raw []byte) (*session.State, error) {
	var s session.State
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("deserializar sesión: %w", err)
	}
	return &s, nil
}
