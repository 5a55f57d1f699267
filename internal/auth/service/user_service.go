package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Brunera17/TCC/config"
	"github.com/Brunera17/TCC/internal/auth/domain"
	"github.com/Brunera17/TCC/internal/auth/dto"
	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/Brunera17/TCC/internal/logger"
	"github.com/Brunera17/TCC/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
	policy       domain.LoginPolicy
	log          *zap.Logger
	// Now is the clock used for lockout windows and audit timestamps.
	Now func() time.Time
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, cfg *config.Config) *UserService {
	policy := domain.DefaultLoginPolicy()
	if cfg.LoginMaxAttempts > 0 {
		policy.MaxAttempts = cfg.LoginMaxAttempts
	}
	if cfg.LoginLockoutMinutes > 0 {
		policy.Lockout = time.Duration(cfg.LoginLockoutMinutes) * time.Minute
	}

	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		policy:       policy,
		log:          logger.Named("user_service"),
		Now:          time.Now,
	}
}

// Register creates an employee account. The requested role is ignored.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	return s.create(ctx, input, domain.RoleEmployee)
}

// CreateUser is the admin path and honours the requested role.
func (s *UserService) CreateUser(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if !domain.IsValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", autherror.ErrValidation, role)
	}
	return s.create(ctx, input, role)
}

func (s *UserService) create(ctx context.Context, input dto.RegisterInput, role string) (*domain.User, error) {
	if err := s.ensureUnique(ctx, input); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.CPF != "" {
		cpf := input.CPF
		user.CPF = &cpf
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user created", zap.String("user_id", user.ID), zap.String("role", role))
	return user, nil
}

func (s *UserService) ensureUnique(ctx context.Context, input dto.RegisterInput) error {
	existing, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return autherror.ErrUsernameAlreadyInUse
	}

	existing, err = s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return autherror.ErrEmailAlreadyInUse
	}

	if input.CPF == "" {
		return nil
	}
	existing, err = s.repo.GetByCPF(ctx, input.CPF)
	if err != nil {
		return err
	}
	if existing != nil {
		return autherror.ErrCPFAlreadyInUse
	}
	return nil
}

// Authenticate resolves the identifier as username, then email, then CPF and
// checks the password. A locked account is rejected before the password is
// looked at, and the failure that reaches the threshold already reports the
// lock.
func (s *UserService) Authenticate(ctx context.Context, identifier, password, ip string) (*domain.User, error) {
	user, err := s.resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if user == nil {
		s.recordAttempt(ctx, identifier, ip, false)
		return nil, autherror.ErrInvalidCredentials
	}

	now := s.Now()
	if s.policy.IsLocked(user, now) {
		s.recordAttempt(ctx, identifier, ip, false)
		return nil, autherror.ErrAccountLocked
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if err := s.repo.RegisterLoginFailure(ctx, user, s.policy.MaxAttempts, s.policy.LockUntil(now)); err != nil {
			return nil, err
		}
		s.recordAttempt(ctx, identifier, ip, false)
		if s.policy.IsLocked(user, now) {
			s.log.Warn("account locked after repeated failures",
				zap.String("user_id", user.ID), zap.Timep("locked_until", user.LockedUntil))
			return nil, autherror.ErrAccountLocked
		}
		return nil, autherror.ErrInvalidCredentials
	}

	s.policy.RegisterSuccess(user, now)
	if err := s.repo.UpdateLoginState(ctx, user); err != nil {
		return nil, err
	}
	s.recordAttempt(ctx, identifier, ip, true)

	return user, nil
}

func (s *UserService) resolve(ctx context.Context, identifier string) (*domain.User, error) {
	lookups := []func(context.Context, string) (*domain.User, error){
		s.repo.GetByUsername,
		s.repo.GetByEmail,
		s.repo.GetByCPF,
	}
	for _, lookup := range lookups {
		user, err := lookup(ctx, identifier)
		if err != nil {
			return nil, err
		}
		if user != nil {
			return user, nil
		}
	}
	return nil, nil
}

// recordAttempt writes the audit row. A failing audit write never changes the
// login outcome.
func (s *UserService) recordAttempt(ctx context.Context, identifier, ip string, success bool) {
	attempt := &domain.LoginAttempt{
		Identifier:  identifier,
		IPAddress:   ip,
		AttemptTime: s.Now(),
		Successful:  success,
	}
	if err := s.repo.RecordLoginAttempt(ctx, attempt); err != nil {
		s.log.Warn("failed to record login attempt", zap.String("identifier", identifier), zap.Error(err))
	}
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.Authenticate(ctx, input.Identifier, input.Password, input.IPAddress)
	metrics.LoginAttempts.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		return nil, err
	}

	claims := UserClaims{UserID: user.ID, Email: user.Email, Role: user.Role}
	accessToken, err := s.tokenService.GenerateAccessToken(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokenService.GenerateRefreshToken(ctx, claims)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return s.tokenResponse(accessToken, refreshToken), nil
}

// Refresh issues a new access token and hands the same refresh token back.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	accessToken, err := s.tokenService.RenewAccessToken(ctx, input.RefreshToken)
	metrics.TokenVerifications.WithLabelValues("refresh", metrics.Outcome(err)).Inc()
	if err != nil {
		return nil, err
	}
	return s.tokenResponse(accessToken, input.RefreshToken), nil
}

func (s *UserService) Logout(ctx context.Context, input dto.RefreshInput) error {
	return s.tokenService.RevokeRefreshToken(ctx, input.RefreshToken)
}

// Me returns the active user behind an access token's subject.
func (s *UserService) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) tokenResponse(accessToken, refreshToken string) *dto.TokenResponse {
	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.tokenService.GetAccessTokenExpiry() / time.Second),
	}
}

