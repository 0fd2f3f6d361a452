package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/domain/repository"
	"github.com/Kipkoech854/Real-estate-management/pkg/errors"
	"github.com/Kipkoech854/Real-estate-management/pkg/logger"
	"github.com/Kipkoech854/Real-estate-management/pkg/validation"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	limiter  RateLimiter
}

func NewAuthUseCase(userRepo repository.UserRepository, hasher PasswordHasher) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// SetLoginLimiter throttles login attempts per username.
func (uc *AuthUseCase) SetLoginLimiter(limiter RateLimiter) {
	uc.limiter = limiter
}

type RegisterInput struct {
	Username        string `label:"username" validate:"required,min=3,max=50"`
	Email           string `label:"email" validate:"omitempty,email"`
	Phone           string `label:"phone" validate:"omitempty,min=7,max=20"`
	Password        string `label:"password" validate:"required,min=6"`
	ConfirmPassword string `label:"password confirmation" validate:"eqfield=Password"`
	IsAgent         bool
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByUsername(ctx, input.Username)
	if err == nil && existing != nil {
		return nil, errors.Conflict("Username already taken", nil)
	}
	if err != nil && !errors.Is(err, errors.CodeNotFound) {
		logger.Error("Register Error: checking username %q: %v", input.Username, err)
		return nil, err
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        optional(input.Email),
		Phone:        optional(input.Phone),
		PasswordHash: hash,
		IsAgent:      input.IsAgent,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		logger.Error("Register Error: creating %q: %v", input.Username, err)
		return nil, err
	}

	logger.Info("user %s registered as %q", user.ID, user.Username)
	return user, nil
}

// Login checks the password and records the login as activity. Unknown
// users and wrong passwords get the same error.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if uc.limiter != nil {
		if ok, wait := uc.limiter.Allow(username, "login"); !ok {
			logger.Warn("login throttled for %q", username)
			return nil, errors.Forbidden(fmt.Sprintf("Too many login attempts, try again in %s", wait.Round(time.Second)), nil)
		}
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.Validation("Invalid username or password", nil)
		}
		return nil, err
	}

	if err := uc.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, errors.Validation("Invalid username or password", nil)
	}

	now := time.Now().UTC()
	if err := uc.userRepo.TouchLastActive(ctx, user.ID, now); err != nil {
		logger.LogStorageError("user", user.ID, "touch last active", err)
	} else {
		user.LastActive = &now
	}

	return user, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
