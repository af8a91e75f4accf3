package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/akramarev/userreg/internal/models"
	"github.com/akramarev/userreg/internal/store"
)

// bcryptCost is the fixed work factor for password hashing.
const bcryptCost = 12

// Status tags the outcome of a registration attempt.
type Status int

const (
	StatusCreated Status = iota
	StatusInvalid
	StatusDuplicate
)

// RegisterResult is the outcome of Register. UserID is set when Status is
// StatusCreated; Errors holds the failed rules when Status is StatusInvalid.
type RegisterResult struct {
	Status Status
	UserID int64
	Errors []FieldError
}

// UserStore defines the persistence operations the service needs.
type UserStore interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error)
	FindByIdentity(ctx context.Context, username, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.PublicUser, error)
}

// Service implements registration and listing over a UserStore.
type Service struct {
	store UserStore
}

func NewService(store UserStore) *Service {
	return &Service{store: store}
}

// Register validates the request, rejects duplicate identities and inserts
// the new user with a hashed password. Expected outcomes come back as a
// tagged RegisterResult; the error return is reserved for store and
// hashing faults. Nothing is written on any non-created outcome.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (RegisterResult, error) {
	if errs := validate(req); len(errs) > 0 {
		return RegisterResult{Status: StatusInvalid, Errors: errs}, nil
	}

	email := normalizeEmail(req.Email)

	// Pre-check gives the friendly 409 on the common path. The UNIQUE
	// constraints remain the source of truth when inserts race.
	_, err := s.store.FindByIdentity(ctx, req.Username, email)
	if err == nil {
		return RegisterResult{Status: StatusDuplicate}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return RegisterResult{}, fmt.Errorf("duplicate check: %w", err)
	}

	// bcrypt reads at most 72 bytes of input and x/crypto errors beyond
	// that; longer passwords are truncated rather than rejected.
	password := []byte(req.Password)
	if len(password) > 72 {
		password = password[:72]
	}
	hash, err := bcrypt.GenerateFromPassword(password, bcryptCost)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.store.CreateUser(ctx, req.Username, email, string(hash))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return RegisterResult{Status: StatusDuplicate}, nil
		}
		return RegisterResult{}, fmt.Errorf("insert user: %w", err)
	}

	return RegisterResult{Status: StatusCreated, UserID: id}, nil
}

// List returns the public projection of every registered user.
func (s *Service) List(ctx context.Context) ([]models.PublicUser, error) {
	return s.store.ListUsers(ctx)
}
