// Package kvrepo implementa los repositorios de dominio sobre un kv.Store.
// Cada colección vive completa bajo una sola key como array JSON.
package kvrepo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"pet-clinic-site/internal/platform/logger"
	"pet-clinic-site/internal/ports/kv"
)

const (
	DefaultNamespace = "petclinic"

	petsSuffix  = "_pets_v1"
	usersSuffix = "_users_v1"
	themeSuffix = "_theme"
)

func nsOrDefault(ns string) string {
	if ns == "" {
		return DefaultNamespace
	}
	return ns
}

// jsonList lee y escribe []T bajo key. Un valor que no es JSON se lee como vacío;
// un elemento que no decodifica se descarta con un warn.
type jsonList[T any] struct {
	store kv.Store
	key   string
	log   logger.Logger
}

func (l jsonList[T]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := l.store.Get(ctx, l.key)
	if err != nil {
		return nil, fmt.Errorf("kvrepo: get %s: %w", l.key, err)
	}
	if !ok || raw == "" {
		return []T{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		l.log.Warn("stored collection is not valid json, treating as empty", map[string]any{
			"key":   l.key,
			"error": err.Error(),
		})
		return []T{}, nil
	}

	// Un elemento que no encaja en T no invalida al resto.
	out := make([]T, 0, len(items))
	for i, item := range items {
		if bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			continue
		}
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			l.log.Warn("skipping stored record that does not decode", map[string]any{
				"key":   l.key,
				"index": i,
				"error": err.Error(),
			})
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (l jsonList[T]) save(ctx context.Context, list []T) error {
	if list == nil {
		list = []T{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("kvrepo: encode %s: %w", l.key, err)
	}
	if err := l.store.Set(ctx, l.key, string(b)); err != nil {
		return fmt.Errorf("kvrepo: set %s: %w", l.key, err)
	}
	return nil
}

func (l jsonList[T]) clear(ctx context.Context) error {
	if err := l.store.Delete(ctx, l.key); err != nil {
		return fmt.Errorf("kvrepo: delete %s: %w", l.key, err)
	}
	return nil
}
