package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"nika-sop.backend/internal/domain/entities"
	domainerrors "nika-sop.backend/internal/domain/errors"
	"nika-sop.backend/internal/domain/repositories"
	"nika-sop.backend/internal/infrastructure/mailer"
	"nika-sop.backend/internal/metrics"
	"nika-sop.backend/pkg/crypto"
	"nika-sop.backend/pkg/jwt"
	"nika-sop.backend/pkg/logger"
)

// AuthUsecase handles registration, activation and login
type AuthUsecase struct {
	userRepo repositories.UserRepository
	mail     mailer.Sender
	session  *jwt.SessionService
	baseURL  string
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	mail mailer.Sender,
	session *jwt.SessionService,
	baseURL string,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo: userRepo,
		mail:     mail,
		session:  session,
		baseURL:  baseURL,
	}
}

// Register creates an inactive account and emails the activation link.
// A mail failure is logged but does not undo the insert: the account exists
// in an activatable-but-unnotified state.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	token := crypto.GenerateActivationToken()
	now := time.Now()
	user := &entities.User{
		ID:              uuid.New(),
		Email:           input.Email,
		PasswordHash:    passwordHash,
		IsActive:        false,
		ActivationToken: null.StringFrom(token),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	link := u.baseURL + "/activate?token=" + token
	if err := u.mail.SendActivation(ctx, user.Email, link); err != nil {
		metrics.EmailsTotal.WithLabelValues("activation", "error").Inc()
		logger.Error(ctx, "failed to send activation email",
			zap.String("email", user.Email), zap.Error(err))
	} else {
		metrics.EmailsTotal.WithLabelValues("activation", "success").Inc()
	}

	return user, nil
}

// Activate consumes an activation token. The first use marks the account
// active and clears the token; any later use fails.
func (u *AuthUsecase) Activate(ctx context.Context, token string) error {
	if err := u.userRepo.Activate(ctx, token); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrInvalidToken
		}
		return err
	}
	return nil
}

// Login verifies the credentials and issues a signed session token. Missing
// account, wrong password and inactive account all collapse into
// ErrInvalidCredentials so the rendered message leaks nothing.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (string, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.ErrInvalidCredentials
		}
		return "", err
	}

	if !user.IsActive {
		return "", domainerrors.ErrInvalidCredentials
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return "", domainerrors.ErrInvalidCredentials
	}

	return u.session.GenerateToken(user.Email)
}
