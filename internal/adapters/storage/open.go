package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-clinic-site/internal/adapters/storage/memory"
	"pet-clinic-site/internal/adapters/storage/postgres"
	"pet-clinic-site/internal/adapters/storage/redisstore"
	"pet-clinic-site/internal/adapters/storage/sqlite"
	"pet-clinic-site/internal/config"
	"pet-clinic-site/internal/platform/logger"
	"pet-clinic-site/internal/ports/kv"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

var (
	ErrUnknownBackend = errors.New("unknown store backend")
)

type Options struct {
	Backend string

	SQLitePath string

	PostgresDSN string
	AutoMigrate bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// OptionsFrom toma las variables STORE_*/DB_*/REDIS_* ya cargadas.
func OptionsFrom(cfg *config.Config) Options {
	return Options{
		Backend:       cfg.StoreBackend,
		SQLitePath:    cfg.SQLitePath,
		PostgresDSN:   cfg.DatabaseDSN,
		AutoMigrate:   cfg.DBAutoMigrate,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	}
}

// Open construye el kv.Store del backend pedido. El closer siempre es no-nil.
func Open(ctx context.Context, opts Options, log logger.Logger) (kv.Store, func() error, error) {
	log = logger.OrNop(log)
	noop := func() error { return nil }

	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	switch backend {
	case "", BackendMemory:
		log.Info("using in-memory store", nil)
		return memory.NewKV(), noop, nil

	case BackendSQLite:
		s, err := sqlite.Open(opts.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		log.Info("using sqlite store", map[string]any{"path": opts.SQLitePath})
		return s, s.Close, nil

	case BackendPostgres:
		if strings.TrimSpace(opts.PostgresDSN) == "" {
			return nil, noop, fmt.Errorf("postgres backend requires DB_DSN")
		}
		db, err := postgres.Open(opts.PostgresDSN)
		if err != nil {
			return nil, noop, err
		}
		if opts.AutoMigrate {
			if err := postgres.Migrate(db); err != nil {
				_ = db.Close()
				return nil, noop, err
			}
		}
		log.Info("using postgres store", map[string]any{"auto_migrate": opts.AutoMigrate})
		return postgres.NewKVStore(db), db.Close, nil

	case BackendRedis:
		s, err := redisstore.Open(ctx, redisstore.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err != nil {
			return nil, noop, err
		}
		log.Info("using redis store", map[string]any{"addr": opts.RedisAddr, "db": opts.RedisDB})
		return s, s.Close, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
