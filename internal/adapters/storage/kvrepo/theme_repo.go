package kvrepo

import (
	"context"
	"fmt"

	"pet-clinic-site/internal/ports/kv"
)

type ThemeRepo struct {
	store kv.Store
	key   string
}

func NewThemeRepo(store kv.Store, namespace string) *ThemeRepo {
	return &ThemeRepo{store: store, key: ThemeKey(namespace)}
}

func ThemeKey(namespace string) string { return nsOrDefault(namespace) + themeSuffix }

func (r *ThemeRepo) Load(ctx context.Context) (string, bool, error) {
	v, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return "", false, fmt.Errorf("kvrepo: get %s: %w", r.key, err)
	}
	return v, ok, nil
}

func (r *ThemeRepo) Save(ctx context.Context, value string) error {
	if err := r.store.Set(ctx, r.key, value); err != nil {
		return fmt.Errorf("kvrepo: set %s: %w", r.key, err)
	}
	return nil
}
