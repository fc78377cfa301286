package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/pkg/validator"
	"github.com/matcare/pregnancy-backend/internal/repository"
)

// AuthUsecase implements registration and login business logic
type AuthUsecase struct {
	userRepo  repository.UserRepository
	tokens    TokenManager
	validator *validator.Validator
	logger    *zap.Logger
}

// NewUsecase creates a new auth use case
func NewUsecase(
	userRepo repository.UserRepository,
	tokens TokenManager,
	validator *validator.Validator,
	logger *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:  userRepo,
		tokens:    tokens,
		validator: validator,
		logger:    logger,
	}
}

// Register creates a user account and returns an access token.
func (uc *AuthUsecase) Register(ctx context.Context, req *entity.RegisterRequest) (*entity.TokenResponse, error) {
	if err := uc.validator.ValidateRegister(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := uc.userRepo.CreateUser(ctx, entity.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Age:          req.Age,
	})
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "user registered", zap.String("user_id", user.ID))

	return uc.issueToken(user)
}

// Login verifies credentials and returns an access token. A missing
// user and a wrong password map to the same error so the response
// does not reveal which emails are registered.
func (uc *AuthUsecase) Login(ctx context.Context, req *entity.LoginRequest) (*entity.TokenResponse, error) {
	if err := uc.validator.ValidateLogin(req); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	if err := uc.userRepo.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		ctxzap.Warn(ctx, "failed to update last login", zap.Error(err))
	}

	ctxzap.Info(ctx, "user logged in", zap.String("user_id", user.ID))

	return uc.issueToken(user)
}

// GetUser returns the profile of an authenticated user.
func (uc *AuthUsecase) GetUser(ctx context.Context, userID string) (*entity.UserResponse, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entity.UserResponse{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Age:       user.Age,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (uc *AuthUsecase) issueToken(user *entity.User) (*entity.TokenResponse, error) {
	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &entity.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
		Email:       user.Email,
		Name:        user.Name,
	}, nil
}
