package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-clinic-site/internal/ports/kv"
)

var (
	ErrEmptyKey = errors.New("key required")
)

type kvStore struct {
	mu    sync.RWMutex
	byKey map[string]string
}

// NewKV crea un store in-memory. Se pierde al reiniciar (modo dev / tests).
func NewKV() kv.Store {
	return &kvStore{
		byKey: make(map[string]string),
	}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	if strings.TrimSpace(key) == "" {
		return "", false, ErrEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[key]
	return v, ok, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byKey[key] = value
	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byKey, key)
	return nil
}
