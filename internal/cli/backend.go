package cli

import (
	"context"
	"os"

	"pet-clinic-site/internal/adapters/storage"
	"pet-clinic-site/internal/adapters/storage/kvrepo"
	"pet-clinic-site/internal/client"
	"pet-clinic-site/internal/config"
	"pet-clinic-site/internal/domain/pets"
	"pet-clinic-site/internal/platform/logger"
	"pet-clinic-site/internal/ports/confirm"
)

// Backend es lo que necesitan los comandos. Lo implementan pets.Service
// (modo local) y client.Pets (modo remoto).
type Backend interface {
	List(ctx context.Context, f pets.Filter) ([]pets.Pet, error)
	Get(ctx context.Context, id int64) (pets.Pet, error)
	Create(ctx context.Context, in pets.CreateInput) (pets.Pet, error)
	Update(ctx context.Context, id int64, in pets.CreateInput) (pets.Pet, error)
	RemoveConfirmed(ctx context.Context, id int64, c confirm.Confirmer) error
	ClearAllConfirmed(ctx context.Context, c confirm.Confirmer) error
	Replace(ctx context.Context, list []pets.Pet) error
}

// Opener abre un Backend. server vacío => modo local.
type Opener func(ctx context.Context, server string) (Backend, func() error, error)

func openBackend(ctx context.Context, server string) (Backend, func() error, error) {
	cfg := config.Load()
	noop := func() error { return nil }

	if server == "" {
		server = cfg.ServerURL
	}
	if server != "" {
		c, err := client.NewPets(server, 0)
		if err != nil {
			return nil, noop, err
		}
		return c, noop, nil
	}

	// En el CLI los logs van a stderr y solo warn+ para no ensuciar la salida.
	log := logger.New(logger.Options{
		Level:  logger.Warn,
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "petsctl",
		Writer: os.Stderr,
	})

	store, closeFn, err := storage.Open(ctx, storage.OptionsFrom(cfg), log)
	if err != nil {
		return nil, noop, err
	}
	repo := kvrepo.NewPetsRepo(store, cfg.StoreNamespace, log)
	return pets.NewService(repo, log, nil), closeFn, nil
}
