package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	domainErrors "github.com/shettypp/ai-syllabus-planner/internal/domain/errors"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/repository"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase/dto"
	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	Issue(userID uuid.UUID, email, name string, now time.Time) (string, time.Time, error)
}

// AuthOptions tunes password handling
type AuthOptions struct {
	PasswordMinLength int
	HashCost          int
}

// AuthUsecase registers and logs in users
type AuthUsecase struct {
	userRepo repository.UserRepository
	issuer   TokenIssuer
	clock    Clock
	opts     AuthOptions
	logger   *zap.Logger
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repository.UserRepository, issuer TokenIssuer, clock Clock, opts AuthOptions, logger *zap.Logger) *AuthUsecase {
	if opts.HashCost == 0 {
		opts.HashCost = bcrypt.DefaultCost
	}
	if opts.PasswordMinLength <= 0 {
		opts.PasswordMinLength = 8
	}
	return &AuthUsecase{
		userRepo: userRepo,
		issuer:   issuer,
		clock:    clock,
		opts:     opts,
		logger:   logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account
func (u *AuthUsecase) Register(ctx context.Context, input dto.RegisterInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errors.InvalidArgument("invalid email address", err)
	}
	if name == "" {
		return nil, errors.InvalidArgument("name is required", nil)
	}
	if len(input.Password) < u.opts.PasswordMinLength {
		return nil, errors.InvalidArgument(
			fmt.Sprintf("password must be at least %d characters", u.opts.PasswordMinLength), nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), u.opts.HashCost)
	if err != nil {
		return nil, errors.Internal("failed to hash password", err)
	}

	user := &entity.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainErrors.ErrEmailTaken) {
			return nil, errors.Conflict("Email address already exists", err)
		}
		return nil, errors.Wrap(err, "failed to create user")
	}

	u.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Login verifies credentials and issues an access token
func (u *AuthUsecase) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResult, error) {
	user, err := u.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			return nil, errors.Unauthenticated(domainErrors.ErrInvalidCredentials.Error())
		}
		return nil, errors.Wrap(err, "failed to load user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		u.logger.Debug("password mismatch", zap.String("user_id", user.ID.String()))
		return nil, errors.Unauthenticated(domainErrors.ErrInvalidCredentials.Error())
	}

	token, expiresAt, err := u.issuer.Issue(user.ID, user.Email, user.Name, u.clock.Now())
	if err != nil {
		return nil, errors.Internal("failed to issue token", err)
	}

	return &dto.TokenResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
