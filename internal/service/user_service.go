package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/elitedriving/institute-api/internal/models"
	"github.com/elitedriving/institute-api/internal/store"
	appErrors "github.com/elitedriving/institute-api/pkg/errors"
)

type userStore interface {
	CreateUser(ctx context.Context, in store.NewUser) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

// CreateUserRequest is the intake payload for a legacy account.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

var errInvalidCredentials = appErrors.New("", http.StatusUnauthorized, "Invalid username or password")

// UserService manages the legacy user accounts kept for compatibility.
type UserService struct {
	store     userStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs the user service.
func NewUserService(st userStore, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{store: st, validator: validate, logger: logger}
}

// Create stores a new account with a bcrypt-hashed password. Usernames are
// unique.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.User{}, validationError(err, "Invalid user data")
	}

	if _, err := s.store.GetUserByUsername(ctx, req.Username); err == nil {
		return models.User{}, appErrors.New("", http.StatusConflict, "Username already taken")
	} else if !errors.Is(err, store.ErrNotFound) {
		s.logger.Error("username lookup failed", zap.Error(err))
		return models.User{}, appErrors.Clone(appErrors.ErrInternal, "Failed to create user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		return models.User{}, appErrors.Clone(appErrors.ErrInternal, "Failed to create user")
	}

	user, err := s.store.CreateUser(ctx, store.NewUser{Username: req.Username, Password: string(hash)})
	if err != nil {
		s.logger.Error("user create failed", zap.Error(err))
		return models.User{}, appErrors.Clone(appErrors.ErrInternal, "Failed to create user")
	}
	return user, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, appErrors.Clone(appErrors.ErrNotFound, "User not found")
		}
		s.logger.Error("user fetch failed", zap.Error(err))
		return models.User{}, appErrors.Clone(appErrors.ErrInternal, "Failed to fetch user")
	}
	return user, nil
}

// Authenticate checks a username/password pair against the stored hash.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, appErrors.Clone(errInvalidCredentials, "")
		}
		s.logger.Error("user fetch failed", zap.Error(err))
		return models.User{}, appErrors.Clone(appErrors.ErrInternal, "Failed to fetch user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, appErrors.Clone(errInvalidCredentials, "")
	}
	return user, nil
}
