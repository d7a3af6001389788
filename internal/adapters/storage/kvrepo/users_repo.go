package kvrepo

import (
	"context"

	"pet-clinic-site/internal/domain/users"
	"pet-clinic-site/internal/platform/logger"
	"pet-clinic-site/internal/ports/kv"
)

type UsersRepo struct {
	list jsonList[users.User]
}

func NewUsersRepo(store kv.Store, namespace string, log logger.Logger) *UsersRepo {
	return &UsersRepo{list: jsonList[users.User]{
		store: store,
		key:   UsersKey(namespace),
		log:   logger.OrNop(log),
	}}
}

func UsersKey(namespace string) string { return nsOrDefault(namespace) + usersSuffix }

func (r *UsersRepo) LoadAll(ctx context.Context) ([]users.User, error) { return r.list.load(ctx) }
func (r *UsersRepo) SaveAll(ctx context.Context, list []users.User) error {
	return r.list.save(ctx, list)
}
