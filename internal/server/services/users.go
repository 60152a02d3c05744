package services

import (
	"context"
	"fmt"
	"time"

	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/common"
	"github.com/apetrenko/contentgen/internal/logging"
	"github.com/apetrenko/contentgen/internal/server/auth"
	"github.com/apetrenko/contentgen/internal/server/models"
	"github.com/apetrenko/contentgen/internal/server/repositories/users"
)

// UserService handles registration, login and account lookups.
type UserService struct {
	users     users.Repository
	secretKey []byte
	tokenTTL  time.Duration
	logger    logging.Logger
}

func NewUserService(repo users.Repository, secretKey []byte, tokenTTL time.Duration, logger logging.Logger) *UserService {
	return &UserService{users: repo, secretKey: secretKey, tokenTTL: tokenTTL, logger: logger}
}

func (s *UserService) Register(ctx context.Context, req *api.RegisterRequest) (*api.TokenResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u, err := s.users.Create(ctx, &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "user registered", "user_id", u.ID, "username", u.Username)

	return s.issueToken(u.ID, u.IsAdmin, toAPIUser(u))
}

func (s *UserService) Login(ctx context.Context, req *api.LoginRequest) (*api.TokenResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}

	u, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		// Same error for a missing user and a bad password.
		return nil, common.ErrUnauthorized
	}
	if !u.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", common.ErrForbidden)
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, common.ErrUnauthorized
	}
	s.logger.Info(ctx, "user logged in", "user_id", u.ID)

	return s.issueToken(u.ID, u.IsAdmin, toAPIUser(u))
}

// GetByID backs /auth/me.
func (s *UserService) GetByID(ctx context.Context, id int64) (*api.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toAPIUser(u)
	return &result, nil
}

func (s *UserService) issueToken(userID int64, isAdmin bool, user api.User) (*api.TokenResponse, error) {
	token, err := auth.GenerateToken(userID, isAdmin, s.secretKey, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &api.TokenResponse{AccessToken: token, TokenType: "bearer", User: user}, nil
}
