package router

import (
	"encoding/json"
	"net/http"
	"time"

	"pet-clinic-site/internal/adapters/storage/kvrepo"
	mem "pet-clinic-site/internal/adapters/storage/memory"
	"pet-clinic-site/internal/domain/pets"
	"pet-clinic-site/internal/domain/theme"
	"pet-clinic-site/internal/domain/users"
	"pet-clinic-site/internal/middleware"
	"pet-clinic-site/internal/platform/logger"
	"pet-clinic-site/internal/platform/metrics"
	"pet-clinic-site/internal/platform/notify"
	"pet-clinic-site/internal/ports/kv"

	_ "pet-clinic-site/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, in-memory.
	Store     kv.Store
	Namespace string

	Logger logger.Logger

	// Opcional: registry propio para /metrics. Si no viene se crea uno
	// por router (los tests levantan varios).
	Registry *prometheus.Registry

	Notices        notify.Options
	SearchDebounce time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := logger.OrNop(opts.Logger)
	m := metrics.New(opts.Registry)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log, m))
	r.Use(chimw.Recoverer)

	r.Use(middleware.Confirmation)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	store := opts.Store
	if store == nil {
		store = mem.NewKV()
	}

	// Repos sobre el mismo store, una key por colección
	petRepo := kvrepo.NewPetsRepo(store, opts.Namespace, log)
	userRepo := kvrepo.NewUsersRepo(store, opts.Namespace, log)
	themeRepo := kvrepo.NewThemeRepo(store, opts.Namespace)

	notices := notify.New(opts.Notices)

	// Services por módulo
	petsSvc := pets.NewService(petRepo, log, m)
	usersSvc := users.NewService(userRepo, log)
	themeSvc := theme.NewService(themeRepo, log)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, notices, pets.NewSearchHandler(petsSvc, opts.SearchDebounce, log))
	users.RegisterRoutes(r, usersSvc, notices)
	theme.RegisterRoutes(r, themeSvc)

	r.Get("/notices", noticesHandler(notices))

	return r
}

// noticesHandler godoc
// @Summary  Avisos vigentes (línea de estado y toasts)
// @Tags     notices
// @Produce  json
// @Success  200  {array}  notify.Notice
// @Router   /notices [get]
func noticesHandler(c *notify.Center) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(c.Active())
	}
}
