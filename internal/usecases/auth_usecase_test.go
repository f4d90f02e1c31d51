package usecases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"nika-sop.backend/internal/domain/entities"
	domainerrors "nika-sop.backend/internal/domain/errors"
	"nika-sop.backend/internal/usecases"
	"nika-sop.backend/pkg/crypto"
	"nika-sop.backend/pkg/jwt"
	"nika-sop.backend/pkg/logger"
)

func newAuthUsecase(userRepo *MockUserRepository, sender *MockSender) *usecases.AuthUsecase {
	logger.Init("development")
	session := jwt.NewSessionService("test-secret", time.Hour)
	return usecases.NewAuthUsecase(userRepo, sender, session, "http://127.0.0.1:8000")
}

func TestAuthUsecase_Register_SendsActivationLink(t *testing.T) {
	userRepo := new(MockUserRepository)
	sender := new(MockSender)
	u := newAuthUsecase(userRepo, sender)
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, domainerrors.ErrNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entities.User")).Return(nil)
	sender.On("SendActivation", ctx, "a@x.com", mock.MatchedBy(func(link string) bool {
		return len(link) > len("http://127.0.0.1:8000/activate?token=")
	})).Return(nil)

	user, err := u.Register(ctx, &entities.RegisterInput{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	require.False(t, user.IsActive)
	require.True(t, user.ActivationToken.Valid)
	require.NotEqual(t, "pw1", user.PasswordHash)

	// The emailed link embeds the stored token.
	sender.AssertCalled(t, "SendActivation", ctx, "a@x.com",
		"http://127.0.0.1:8000/activate?token="+user.ActivationToken.String)
	userRepo.AssertExpectations(t)
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	sender := new(MockSender)
	u := newAuthUsecase(userRepo, sender)
	ctx := context.Background()

	existing := &entities.User{Email: "a@x.com"}
	userRepo.On("GetByEmail", ctx, "a@x.com").Return(existing, nil)

	_, err := u.Register(ctx, &entities.RegisterInput{Email: "a@x.com", Password: "pw1"})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	sender.AssertNotCalled(t, "SendActivation", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthUsecase_Register_MailFailureDoesNotRollBack(t *testing.T) {
	userRepo := new(MockUserRepository)
	sender := new(MockSender)
	u := newAuthUsecase(userRepo, sender)
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, domainerrors.ErrNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entities.User")).Return(nil)
	sender.On("SendActivation", ctx, "a@x.com", mock.Anything).Return(errors.New("relay down"))

	user, err := u.Register(ctx, &entities.RegisterInput{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestAuthUsecase_Activate(t *testing.T) {
	userRepo := new(MockUserRepository)
	u := newAuthUsecase(userRepo, new(MockSender))
	ctx := context.Background()

	userRepo.On("Activate", ctx, "good-token").Return(nil)
	require.NoError(t, u.Activate(ctx, "good-token"))

	userRepo.On("Activate", ctx, "used-token").Return(domainerrors.ErrNotFound)
	require.ErrorIs(t, u.Activate(ctx, "used-token"), domainerrors.ErrInvalidToken)
}

func TestAuthUsecase_Login(t *testing.T) {
	hash, err := crypto.HashPassword("pw1")
	require.NoError(t, err)

	active := &entities.User{Email: "a@x.com", PasswordHash: hash, IsActive: true}
	inactive := &entities.User{Email: "b@x.com", PasswordHash: hash, IsActive: false}

	userRepo := new(MockUserRepository)
	u := newAuthUsecase(userRepo, new(MockSender))
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "a@x.com").Return(active, nil)
	userRepo.On("GetByEmail", ctx, "b@x.com").Return(inactive, nil)
	userRepo.On("GetByEmail", ctx, "missing@x.com").Return(nil, domainerrors.ErrNotFound)

	token, err := u.Login(ctx, &entities.LoginInput{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Session token carries the verified email claim.
	claims, err := jwt.NewSessionService("test-secret", time.Hour).ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", claims.Email)

	_, err = u.Login(ctx, &entities.LoginInput{Email: "a@x.com", Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = u.Login(ctx, &entities.LoginInput{Email: "b@x.com", Password: "pw1"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = u.Login(ctx, &entities.LoginInput{Email: "missing@x.com", Password: "pw1"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
