// Package auth 提供用户注册、登录与令牌管理
package auth

import (
	"context"

	"go.opentelemetry.io/otel"

	"gameforge-api/internal/config"
	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/domain/repository"
	"gameforge-api/pkg/errors"
	"gameforge-api/pkg/logger"
	"gameforge-api/pkg/utils"
)

var tracer = otel.Tracer("auth")

// Service 认证服务
type Service struct {
	users repository.UserRepository
	jwt   *utils.JWTManager
	cfg   *config.JWTConfig
}

// NewService 创建认证服务
func NewService(users repository.UserRepository, jwt *utils.JWTManager, cfg *config.JWTConfig) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}

// Register 注册新用户
func (s *Service) Register(ctx context.Context, email, name, password string) (*entity.User, error) {
	ctx, span := tracer.Start(ctx, "auth.Register")
	defer span.End()

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternalError, "failed to check email")
	}
	if exists {
		return nil, errors.ErrEmailTaken
	}

	user := entity.NewUser(email, name)
	if err := user.SetPassword(password); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternalError, "failed to hash password")
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternalError, "failed to create user")
	}

	logger.FromContext(ctx).Info("user registered", "user_id", user.ID, "email", email)
	return user, nil
}

// Login 校验凭据并签发令牌对
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, *utils.TokenPair, error) {
	ctx, span := tracer.Start(ctx, "auth.Login")
	defer span.End()

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.CodeInternalError, "failed to load user")
	}
	if user == nil || !user.CheckPassword(password) {
		return nil, nil, errors.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.FromContext(ctx).Warn("failed to update last login", "error", err)
	}

	logger.FromContext(ctx).Info("user logged in", "user_id", user.ID)
	return user, pair, nil
}

// Refresh 校验刷新令牌并签发新的令牌对
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	ctx, span := tracer.Start(ctx, "auth.Refresh")
	defer span.End()

	claims, err := s.jwt.ParseToken(refreshToken)
	if err != nil {
		if err == utils.ErrExpiredToken {
			return nil, errors.ErrTokenExpired
		}
		return nil, errors.ErrTokenInvalid
	}
	if claims.Type != "refresh" {
		return nil, errors.ErrTokenInvalid
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternalError, "failed to load user")
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	return s.issueTokens(user)
}

// Me 获取当前用户
func (s *Service) Me(ctx context.Context, userID string) (*entity.User, error) {
	ctx, span := tracer.Start(ctx, "auth.Me")
	defer span.End()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternalError, "failed to load user")
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

func (s *Service) issueTokens(user *entity.User) (*utils.TokenPair, error) {
	pair, err := s.jwt.GenerateTokenPair(user.ID, user.IsAdmin, s.cfg.Expiration, s.cfg.RefreshExpiration)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternalError, "failed to issue tokens")
	}
	return pair, nil
}
