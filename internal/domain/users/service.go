package users

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"sync"

	"pet-clinic-site/internal/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrDuplicateUser      = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooLong    = errors.New("password is too long")
)

// MaxPasswordBytes es el límite de bcrypt; más allá GenerateFromPassword falla.
const MaxPasswordBytes = 72

type Service struct {
	repo Repository
	log  logger.Logger
	cost int
	mu   sync.Mutex
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  logger.OrNop(log).With(map[string]any{"component": "users"}),
		cost: bcrypt.DefaultCost,
	}
}

// WithCost cambia el costo de bcrypt (los tests usan bcrypt.MinCost).
func (s *Service) WithCost(cost int) *Service {
	s.cost = cost
	return s
}

type RegisterInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	name := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}
	if in.Password != in.Confirm {
		return User{}, ErrPasswordMismatch
	}
	if len(in.Password) > MaxPasswordBytes {
		return User{}, ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return User{}, err
	}
	if indexByEmail(all, email) >= 0 {
		return User{}, ErrDuplicateUser
	}

	u := User{
		ID:       uuid.NewString(),
		FullName: name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.repo.SaveAll(ctx, append(all, u)); err != nil {
		return User{}, err
	}

	s.log.Info("user registered", map[string]any{"user_id": u.ID})
	return u, nil
}

// Login compara contra el hash guardado. Si la cuenta tenía la contraseña
// en claro y coincide, se guarda hasheada.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return User{}, err
	}

	i := indexByEmail(all, email)
	if i < 0 {
		return User{}, ErrInvalidCredentials
	}
	u := all[i]

	if _, err := bcrypt.Cost([]byte(u.Password)); err == nil {
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			return User{}, ErrInvalidCredentials
		}
		return u, nil
	}

	if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) != 1 {
		return User{}, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		// Queda en claro hasta el próximo login que sí se pueda hashear.
		s.log.Warn("password rehash failed", map[string]any{"user_id": u.ID, "error": err.Error()})
		return u, nil
	}
	u.Password = string(hash)
	all[i] = u
	if err := s.repo.SaveAll(ctx, all); err != nil {
		// El login es válido aunque no se pudo migrar el hash.
		s.log.Warn("password rehash failed", map[string]any{"user_id": u.ID, "error": err.Error()})
		return u, nil
	}
	s.log.Info("legacy password rehashed", map[string]any{"user_id": u.ID})
	return u, nil
}

func indexByEmail(all []User, email string) int {
	for i, u := range all {
		if strings.EqualFold(strings.TrimSpace(u.Email), email) {
			return i
		}
	}
	return -1
}
