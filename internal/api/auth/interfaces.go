package auth

import (
	"context"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

type AuthUsecase interface {
	Register(ctx context.Context, req *entity.RegisterRequest) (*entity.TokenResponse, error)
	Login(ctx context.Context, req *entity.LoginRequest) (*entity.TokenResponse, error)
	GetUser(ctx context.Context, userID string) (*entity.UserResponse, error)
}
