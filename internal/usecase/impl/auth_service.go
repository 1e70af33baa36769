package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "million/internal/delivery/context"
	"million/internal/domain/entity"
	domainerrors "million/internal/domain/errors"
	"million/internal/domain/repository"
	"million/internal/domain/service"
	"million/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultOwnerAddress is the placeholder address assigned to a provisioned
// owner profile until the user fills in a real one.
const defaultOwnerAddress = "Sin dirección"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	ownerRepo    repository.OwnerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	OwnerRepo    repository.OwnerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		ownerRepo:    params.OwnerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and, for owner accounts, provisions the Owner
// profile that property mutations will be authorized against. The owner
// profile reuses the user id so the two stay correlated without a join table.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Photo:        input.Photo,
		Role:         input.Role,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email already registered")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	if user.IsOwner() {
		owner := &entity.Owner{
			ID:       user.ID,
			Name:     user.FullName,
			Address:  defaultOwnerAddress,
			Photo:    user.Photo,
			Birthday: srv.now().AddDate(-30, 0, 0),
		}

		if err := srv.ownerRepo.Create(ctx, owner); err != nil {
			srv.log(ctx).Error("Failed to provision owner profile",
				slog.String("userID", user.ID),
				slog.Any("error", err),
			)

			return nil, errors.Wrap(err, "failed to provision owner profile")
		}
	}

	srv.log(ctx).Info("User registered",
		slog.String("userID", user.ID),
		slog.String("role", user.Role),
	)

	return srv.issueToken(user)
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.String("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID))

	return srv.issueToken(user)
}

func (srv *authService) issueToken(user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateToken(user.ID, user.FullName, user.Role, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}
