package kvrepo

import (
	"context"

	"pet-clinic-site/internal/domain/pets"
	"pet-clinic-site/internal/platform/logger"
	"pet-clinic-site/internal/ports/kv"
)

type PetsRepo struct {
	list jsonList[pets.Pet]
}

func NewPetsRepo(store kv.Store, namespace string, log logger.Logger) *PetsRepo {
	return &PetsRepo{list: jsonList[pets.Pet]{
		store: store,
		key:   PetsKey(namespace),
		log:   logger.OrNop(log),
	}}
}

// PetsKey es la key donde se guarda la colección de mascotas.
func PetsKey(namespace string) string { return nsOrDefault(namespace) + petsSuffix }

func (r *PetsRepo) LoadAll(ctx context.Context) ([]pets.Pet, error) { return r.list.load(ctx) }
func (r *PetsRepo) SaveAll(ctx context.Context, list []pets.Pet) error {
	return r.list.save(ctx, list)
}
func (r *PetsRepo) Clear(ctx context.Context) error { return r.list.clear(ctx) }
