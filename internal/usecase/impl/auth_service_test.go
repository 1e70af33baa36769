package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"million/internal/domain/entity"
	domainerrors "million/internal/domain/errors"
	"million/internal/domain/repository"
	mockRepo "million/internal/mocks/repository"
	mockSvc "million/internal/mocks/service"
	"million/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	ownerRepo    *mockRepo.MockOwnerRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	now          time.Time
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	ownerRepo := mockRepo.NewMockOwnerRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		OwnerRepo:    ownerRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	service.(*authService).now = func() time.Time { return now }

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		ownerRepo:    ownerRepo,
		hasher:       hasher,
		tokenService: tokenService,
		now:          now,
	}
}

func TestAuthService_Register_ProvisionsOwnerProfile(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "ana@example.com",
		Password: "Password123!",
		FullName: "Ana García",
		Role:     entity.RoleOwner,
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", input.Password).Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = "u1"
		}).
		Return(nil)
	fx.ownerRepo.On("Create", ctx, mock.MatchedBy(func(owner *entity.Owner) bool {
		return owner.ID == "u1" &&
			owner.Name == "Ana García" &&
			owner.Address == "Sin dirección" &&
			owner.Birthday.Equal(fx.now.AddDate(-30, 0, 0))
	})).Return(nil)
	fx.tokenService.On("GenerateToken", "u1", "Ana García", entity.RoleOwner, input.Email).
		Return("token-abc", fx.now.Add(time.Hour), nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token-abc", output.Token)
	assert.Equal(t, "u1", output.User.ID)
	assert.Equal(t, fx.now.Add(time.Hour), output.ExpiresAt)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "taken@example.com").
		Return(&entity.User{ID: "u9", Email: "taken@example.com"}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Password123!",
		FullName: "Someone",
		Role:     entity.RoleOwner,
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_DuplicateEmailRace(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	// The pre-check passes but the unique index catches a concurrent insert.
	fx.userRepo.On("FindByEmail", ctx, "raced@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", mock.Anything).Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.Anything).
		Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "raced@example.com",
		Password: "Password123!",
		FullName: "Someone",
		Role:     entity.RoleOwner,
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, mock.Anything).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", mock.Anything).Return("", assert.AnError)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "ana@example.com",
		Password: "Password123!",
		FullName: "Ana",
		Role:     entity.RoleOwner,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Register_NonOwnerSkipsProvisioning(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, mock.Anything).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", mock.Anything).Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = "u2"
		}).
		Return(nil)
	fx.tokenService.On("GenerateToken", "u2", mock.Anything, "Viewer", mock.Anything).
		Return("token-xyz", fx.now.Add(time.Hour), nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "viewer@example.com",
		Password: "Password123!",
		FullName: "Viewer",
		Role:     "Viewer",
	})

	require.NoError(t, err)
	fx.ownerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           "u1",
		Email:        "ana@example.com",
		PasswordHash: "hashed",
		FullName:     "Ana García",
		Role:         entity.RoleOwner,
	}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "Password123!", "hashed").Return(true)
	fx.tokenService.On("GenerateToken", "u1", "Ana García", entity.RoleOwner, user.Email).
		Return("token-abc", fx.now.Add(time.Hour), nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", output.Token)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByEmail", ctx, "ana@example.com").
		Return(&entity.User{ID: "u1", Email: "ana@example.com", PasswordHash: "hashed"}, nil)
	fx.hasher.On("Check", "wrong", "hashed").Return(false)

	_, unknownEmailErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, wrongPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, unknownEmailErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, domainerrors.ErrInvalidCredentials)

	// Same user-facing message either way.
	var appErr1, appErr2 domainerrors.AppError
	require.ErrorAs(t, unknownEmailErr, &appErr1)
	require.ErrorAs(t, wrongPasswordErr, &appErr2)
	assert.Equal(t, appErr1.Message(), appErr2.Message())
	assert.Equal(t, appErr1.HTTPCode(), appErr2.HTTPCode())
}
