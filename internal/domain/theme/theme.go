package theme

import (
	"context"
	"errors"
	"strings"

	"pet-clinic-site/internal/platform/logger"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

var ErrInvalidTheme = errors.New("invalid theme")

// Repository guarda la preferencia como un string suelto.
type Repository interface {
	Load(ctx context.Context) (string, bool, error)
	Save(ctx context.Context, value string) error
}

func Parse(raw string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", ErrInvalidTheme
	}
}

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  logger.OrNop(log).With(map[string]any{"component": "theme"}),
	}
}

// Get devuelve light si no hay nada guardado o el valor no se reconoce.
func (s *Service) Get(ctx context.Context) (Theme, error) {
	raw, ok, err := s.repo.Load(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return Light, nil
	}
	t, err := Parse(raw)
	if err != nil {
		s.log.Warn("unknown stored theme", map[string]any{"value": raw})
		return Light, nil
	}
	return t, nil
}

func (s *Service) Set(ctx context.Context, t Theme) (Theme, error) {
	t, err := Parse(string(t))
	if err != nil {
		return "", err
	}
	if err := s.repo.Save(ctx, string(t)); err != nil {
		return "", err
	}
	return t, nil
}

func (s *Service) Toggle(ctx context.Context) (Theme, error) {
	cur, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	next := Dark
	if cur == Dark {
		next = Light
	}
	return s.Set(ctx, next)
}
