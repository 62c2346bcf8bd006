package repository

import (
	"context"
	"net/http"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
)

// AuthRepository exposes the authentication endpoints.
type AuthRepository interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthLogin, error)
	SignUp(ctx context.Context, req domain.SignUpRequest) error
}

type authRepository struct {
	client *Client
}

// NewAuthRepository returns an API-backed implementation.
func NewAuthRepository(client *Client) AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthLogin, error) {
	var out domain.AuthLogin
	if err := r.client.do(ctx, http.MethodPost, pathLogin, pathLogin, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *authRepository) SignUp(ctx context.Context, req domain.SignUpRequest) error {
	return r.client.do(ctx, http.MethodPost, pathSignup, pathSignup, nil, req, nil)
}
