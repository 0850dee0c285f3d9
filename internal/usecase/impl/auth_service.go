// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"

	"campuskart/config"
	deliverycontext "campuskart/internal/delivery/context"
	"campuskart/internal/domain/entity"
	domainerrors "campuskart/internal/domain/errors"
	"campuskart/internal/domain/repository"
	"campuskart/internal/domain/service"
	"campuskart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	buyerRepo    repository.BuyerRepository
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	emailPattern *regexp.Regexp
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BuyerRepo    repository.BuyerRepository
	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	var emailPattern *regexp.Regexp
	if params.Config != nil && params.Config.Signup != nil && params.Config.Signup.EmailPattern != "" {
		compiled, err := regexp.Compile(params.Config.Signup.EmailPattern)
		if err != nil {
			return nil, errors.Wrap(err, "failed to compile signup email pattern")
		}
		emailPattern = compiled
	}

	return &authService{
		txManager:    params.TxManager,
		buyerRepo:    params.BuyerRepo,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		emailPattern: emailPattern,
		logger:       params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) validateSignup(input *usecase.SignupInput) error {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "all signup fields are required")
	}

	if srv.emailPattern != nil && !srv.emailPattern.MatchString(input.Email) {
		return domainerrors.ErrValidationFailed.WrapMessage("email is not a valid campus address")
	}

	return nil
}

// SignupBuyer registers a new buyer account. No session token is issued;
// the account logs in separately.
func (srv *authService) SignupBuyer(ctx context.Context, input *usecase.SignupInput) (*entity.Buyer, error) {
	srv.log(ctx).Info("Starting buyer signup", slog.String("email", input.Email))

	if err := srv.validateSignup(input); err != nil {
		srv.log(ctx).Warn("Buyer signup validation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during buyer signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newBuyer := &entity.Buyer{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buyerRepo := repoFactory.NewBuyerRepository()

		_, findErr := buyerRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrBuyerAlreadyExists, "buyer signup rejected")
		}
		if !errors.Is(findErr, repository.ErrBuyerNotFound) {
			return errors.Wrap(findErr, "failed to check existing buyer")
		}

		return buyerRepo.Create(ctx, newBuyer)
	})

	if err != nil {
		srv.log(ctx).Warn("Buyer signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute buyer signup transaction")
	}

	srv.log(ctx).Debug("Buyer signup completed", slog.Any("buyerID", newBuyer.ID))

	return newBuyer, nil
}

// LoginBuyer verifies buyer credentials and issues a buyer-kind session token.
func (srv *authService) LoginBuyer(ctx context.Context, input *usecase.LoginInput) (*usecase.BuyerAuthOutput, error) {
	srv.log(ctx).Debug("Starting buyer login", slog.String("email", input.Email))

	buyer, err := srv.buyerRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Buyer login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrBuyerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "buyer login failed")
		}

		return nil, errors.Wrap(err, "failed to find buyer by email")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, buyer.PasswordHash) {
		srv.log(ctx).Warn("Buyer login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "buyer login failed")
	}

	token, err := srv.tokenService.GenerateToken(buyer.ID, entity.PrincipalBuyer)
	if err != nil {
		srv.log(ctx).Error("Failed to generate buyer token", slog.Any("buyerID", buyer.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Buyer logged in successfully", slog.Any("buyerID", buyer.ID))

	return &usecase.BuyerAuthOutput{
		Token: token,
		Buyer: buyer,
	}, nil
}

// SignupAdmin registers a new admin account.
func (srv *authService) SignupAdmin(ctx context.Context, input *usecase.SignupInput) (*entity.Admin, error) {
	srv.log(ctx).Info("Starting admin signup", slog.String("email", input.Email))

	if err := srv.validateSignup(input); err != nil {
		srv.log(ctx).Warn("Admin signup validation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during admin signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newAdmin := &entity.Admin{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.NewAdminRepository()

		_, findErr := adminRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrAdminAlreadyExists, "admin signup rejected")
		}
		if !errors.Is(findErr, repository.ErrAdminNotFound) {
			return errors.Wrap(findErr, "failed to check existing admin")
		}

		return adminRepo.Create(ctx, newAdmin)
	})

	if err != nil {
		srv.log(ctx).Warn("Admin signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute admin signup transaction")
	}

	srv.log(ctx).Debug("Admin signup completed", slog.Any("adminID", newAdmin.ID))

	return newAdmin, nil
}

// LoginAdmin verifies admin credentials and issues an admin-kind session token.
func (srv *authService) LoginAdmin(ctx context.Context, input *usecase.LoginInput) (*usecase.AdminAuthOutput, error) {
	srv.log(ctx).Debug("Starting admin login", slog.String("email", input.Email))

	admin, err := srv.adminRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Admin login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
	}

	token, err := srv.tokenService.GenerateToken(admin.ID, entity.PrincipalAdmin)
	if err != nil {
		srv.log(ctx).Error("Failed to generate admin token", slog.Any("adminID", admin.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Admin logged in successfully", slog.Any("adminID", admin.ID))

	return &usecase.AdminAuthOutput{
		Token: token,
		Admin: admin,
	}, nil
}
