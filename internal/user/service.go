package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"ecowear-be/internal/apperr"
	"ecowear-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, name, email, password string, role Role) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	Sellers(ctx context.Context, caller Identity) ([]User, error)
	Verify(ctx context.Context, caller Identity, userID int) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, name, email, password string, role Role) (string, User, error) {
	log := logger.FromCtx(ctx)

	// ADMIN accounts are provisioned out of band, never self-registered.
	if role != RoleBuyer && role != RoleSeller {
		return "", User{}, apperr.Validation("role must be BUYER or SELLER")
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, apperr.Internal("failed to register user", err)
	}

	u, err := s.repo.Create(ctx, name, email, hashed, role)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return "", User{}, apperr.Validation(ErrEmailExists.Error())
		}
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return "", User{}, apperr.Internal("failed to register user", err)
	}

	token, err := GenerateJWT(u.ID, u.Role)
	if err != nil {
		log.Error("failed to generate jwt", zap.Int("user_id", u.ID), zap.Error(err))
		return "", User{}, apperr.Internal("failed to issue token", err)
	}

	log.Info("user registered",
		zap.Int("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error("failed to look up user", zap.Error(err))
			return "", User{}, apperr.Internal("failed to log in", err)
		}
		return "", User{}, apperr.Unauthorized("invalid email or password")
	}

	if !CheckPasswordHash(password, u.Password) {
		return "", User{}, apperr.Unauthorized("invalid email or password")
	}

	token, err := GenerateJWT(u.ID, u.Role)
	if err != nil {
		return "", User{}, apperr.Internal("failed to issue token", err)
	}

	return token, u, nil
}

func (s *service) Sellers(ctx context.Context, caller Identity) ([]User, error) {
	if caller.Role != RoleAdmin {
		return nil, apperr.Forbidden("admin access required")
	}

	sellers, err := s.repo.ListByRole(ctx, RoleSeller)
	if err != nil {
		return nil, apperr.Internal("failed to list sellers", err)
	}
	return sellers, nil
}

func (s *service) Verify(ctx context.Context, caller Identity, userID int) (User, error) {
	if caller.Role != RoleAdmin {
		return User{}, apperr.Forbidden("admin access required")
	}

	u, err := s.repo.SetVerified(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, apperr.NotFound("user not found")
		}
		return User{}, apperr.Internal("failed to verify user", err)
	}

	logger.FromCtx(ctx).Info("seller verified",
		zap.Int("user_id", u.ID),
		zap.Int("admin_id", caller.UserID),
	)

	return u, nil
}
