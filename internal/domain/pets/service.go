package pets

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"pet-clinic-site/internal/platform/logger"
	"pet-clinic-site/internal/platform/metrics"
	"pet-clinic-site/internal/ports/confirm"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrNotConfirmed = errors.New("action not confirmed")
)

// MinTextLength aplica a nombre y dueño (después de trim).
const MinTextLength = 2

// ValidationError indica el primer campo inválido del formulario.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

type Service struct {
	repo    Repository
	now     func() time.Time
	log     logger.Logger
	metrics *metrics.Metrics

	// Serializa los read-modify-write dentro del proceso.
	// Entre procesos gana el último SaveAll.
	mu sync.Mutex
}

func NewService(repo Repository, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		now:     time.Now,
		log:     logger.OrNop(log).With(map[string]any{"component": "pets"}),
		metrics: m,
	}
}

// CreateInput son los campos crudos del formulario.
type CreateInput struct {
	Name    string
	Species string
	Age     string
	Owner   string
	Notes   string
}

func (s *Service) List(ctx context.Context, f Filter) ([]Pet, error) {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(all), nil
}

// Count devuelve el total de registros guardados.
func (s *Service) Count(ctx context.Context) (int, error) {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (s *Service) Get(ctx context.Context, id int64) (Pet, error) {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return Pet{}, err
	}
	if i := indexOf(all, id); i >= 0 {
		return all[i], nil
	}
	return Pet{}, ErrNotFound
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	name, owner, err := validate(in)
	if err != nil {
		s.metrics.ObserveStoreOp("create", "invalid")
		return Pet{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.metrics.ObserveStoreOp("create", "error")
		return Pet{}, err
	}

	p := Pet{
		ID:        NextID(all),
		Name:      name,
		Species:   normalizeSpecies(in.Species),
		Age:       ParseAge(in.Age),
		Owner:     owner,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: s.now().UTC(),
	}

	all = append(all, p)
	if err := s.save(ctx, "create", all); err != nil {
		return Pet{}, err
	}

	s.log.Info("pet created", map[string]any{"id": p.ID, "species": p.Species})
	return p, nil
}

// Update reemplaza los campos editables de un registro existente.
// id y createdAt no cambian.
func (s *Service) Update(ctx context.Context, id int64, in CreateInput) (Pet, error) {
	name, owner, err := validate(in)
	if err != nil {
		s.metrics.ObserveStoreOp("update", "invalid")
		return Pet{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.metrics.ObserveStoreOp("update", "error")
		return Pet{}, err
	}

	i := indexOf(all, id)
	if i < 0 {
		s.metrics.ObserveStoreOp("update", "not_found")
		return Pet{}, ErrNotFound
	}

	now := s.now().UTC()
	p := all[i]
	p.Name = name
	p.Species = normalizeSpecies(in.Species)
	p.Age = ParseAge(in.Age)
	p.Owner = owner
	p.Notes = strings.TrimSpace(in.Notes)
	p.UpdatedAt = &now
	all[i] = p

	if err := s.save(ctx, "update", all); err != nil {
		return Pet{}, err
	}

	s.log.Info("pet updated", map[string]any{"id": p.ID})
	return p, nil
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.metrics.ObserveStoreOp("remove", "error")
		return err
	}

	i := indexOf(all, id)
	if i < 0 {
		s.metrics.ObserveStoreOp("remove", "not_found")
		return ErrNotFound
	}

	rest := make([]Pet, 0, len(all)-1)
	rest = append(rest, all[:i]...)
	rest = append(rest, all[i+1:]...)

	if err := s.save(ctx, "remove", rest); err != nil {
		return err
	}

	s.log.Info("pet removed", map[string]any{"id": id})
	return nil
}

// RemoveConfirmed pide confirmación antes de borrar.
func (s *Service) RemoveConfirmed(ctx context.Context, id int64, c confirm.Confirmer) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.metrics.ObserveStoreOp("remove", "not_found")
		}
		return err
	}

	ok, err := ask(ctx, c, fmt.Sprintf("¿Eliminar a %s (#%d)?", p.Name, p.ID))
	if err != nil {
		return err
	}
	if !ok {
		s.metrics.ObserveStoreOp("remove", "not_confirmed")
		return ErrNotConfirmed
	}
	return s.Remove(ctx, id)
}

// ClearAll borra la colección completa.
func (s *Service) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		s.metrics.ObserveStoreOp("clear", "error")
		return err
	}
	s.metrics.ObserveStoreOp("clear", "ok")
	s.metrics.SetRecords(0)
	s.log.Warn("pet store cleared", nil)
	return nil
}

func (s *Service) ClearAllConfirmed(ctx context.Context, c confirm.Confirmer) error {
	ok, err := ask(ctx, c, "¿Eliminar todos los registros?")
	if err != nil {
		return err
	}
	if !ok {
		s.metrics.ObserveStoreOp("clear", "not_confirmed")
		return ErrNotConfirmed
	}
	return s.ClearAll(ctx)
}

// Replace reemplaza la colección completa (import). Valida cada registro
// y que los ids sean positivos y únicos.
func (s *Service) Replace(ctx context.Context, list []Pet) error {
	seen := make(map[int64]struct{}, len(list))
	out := make([]Pet, 0, len(list))
	now := s.now().UTC()

	for _, p := range list {
		if p.ID <= 0 {
			return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = struct{}{}

		name, owner, err := validate(CreateInput{Name: p.Name, Owner: p.Owner})
		if err != nil {
			return fmt.Errorf("pet %d: %w", p.ID, err)
		}
		p.Name = name
		p.Owner = owner
		p.Species = normalizeSpecies(string(p.Species))
		if p.Age < 0 || math.IsNaN(p.Age) || math.IsInf(p.Age, 0) {
			p.Age = 0
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		out = append(out, p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, "replace", out)
}

func (s *Service) save(ctx context.Context, op string, all []Pet) error {
	if err := s.repo.SaveAll(ctx, all); err != nil {
		s.metrics.ObserveStoreOp(op, "error")
		s.log.Error("pet store save failed", map[string]any{"op": op, "error": err.Error()})
		return err
	}
	s.metrics.ObserveStoreOp(op, "ok")
	s.metrics.SetRecords(len(all))
	return nil
}

// NextID es max(ids existentes, 0) + 1.
func NextID(all []Pet) int64 {
	var maxID int64
	for _, p := range all {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

// ParseAge convierte el valor del formulario. Lo no numérico o negativo vale 0.
func ParseAge(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func validate(in CreateInput) (string, string, error) {
	name := strings.TrimSpace(in.Name)
	if utf8.RuneCountInString(name) < MinTextLength {
		return "", "", &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("name must be at least %d characters", MinTextLength),
		}
	}
	owner := strings.TrimSpace(in.Owner)
	if utf8.RuneCountInString(owner) < MinTextLength {
		return "", "", &ValidationError{
			Field:   "owner",
			Message: fmt.Sprintf("owner must be at least %d characters", MinTextLength),
		}
	}
	return name, owner, nil
}

func normalizeSpecies(raw string) Species {
	sp := Species(strings.TrimSpace(raw))
	if sp == "" || sp == SpeciesAll {
		return SpeciesOther
	}
	return sp
}

func indexOf(all []Pet, id int64) int {
	for i, p := range all {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func ask(ctx context.Context, c confirm.Confirmer, prompt string) (bool, error) {
	if c == nil {
		return false, nil
	}
	return c.Confirm(ctx, prompt)
}
