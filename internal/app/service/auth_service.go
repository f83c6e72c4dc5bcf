package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"memo_api/internal/common"
	"memo_api/internal/common/security"
	"memo_api/internal/domain/model"
	"memo_api/internal/domain/repository"
)

type AuthService struct {
	userRepo repository.UserRepository
	jwt      *security.JWT
	tokenTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, jwt *security.JWT, tokenTTL time.Duration) *AuthService {
	return &AuthService{userRepo: userRepo, jwt: jwt, tokenTTL: tokenTTL}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the wire shape of a user. The password hash has no field
// here, so it cannot leak through serialization.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func NewUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsActive: user.IsActive,
	}
}

// Register creates an active user with a freshly hashed password. A username
// or email collision surfaces as common.ErrConflict from the repository; no
// state is mutated in that case.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, common.Errorf("username, email and password are required: %w", common.ErrBadRequest)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		IsActive:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := NewUserResponse(user)
	return &resp, nil
}

// Login authenticates by username and password and issues a bearer token
// whose subject is the username. Unknown user and wrong password are
// deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("incorrect username or password: %w", common.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(password, user.HashedPassword) {
		return nil, common.Errorf("incorrect username or password: %w", common.ErrUnauthorized)
	}

	token, err := s.jwt.Issue(user.Username, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
