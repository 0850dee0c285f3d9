package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"campuskart/config"
	"campuskart/internal/domain/entity"
	domainerrors "campuskart/internal/domain/errors"
	"campuskart/internal/domain/repository"
	mockRepo "campuskart/internal/mocks/repository"
	mockSvc "campuskart/internal/mocks/service"
	"campuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSignupEmailPattern = `^[a-zA-Z0-9.]+@campus\.test$`

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	buyerRepo    *mockRepo.MockBuyerRepository
	adminRepo    *mockRepo.MockAdminRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	buyerRepo := mockRepo.NewMockBuyerRepository(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service, err := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		BuyerRepo:    buyerRepo,
		AdminRepo:    adminRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config: &config.Config{
			Signup: &config.SignupConfig{EmailPattern: testSignupEmailPattern},
		},
		Logger: logger,
	})
	require.NoError(t, err)

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		buyerRepo:    buyerRepo,
		adminRepo:    adminRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_SignupBuyer_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		FirstName: "Asha",
		LastName:  "Patil",
		Email:     "asha.patil@campus.test",
		Password:  "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBuyerRepo := mockRepo.NewMockBuyerRepository(t)

			mockFactory.EXPECT().NewBuyerRepository().Return(mockBuyerRepo)

			mockBuyerRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrBuyerNotFound)

			mockBuyerRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Buyer")).
				Run(func(ctx context.Context, buyer *entity.Buyer) {
					buyer.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	buyer, err := fx.service.SignupBuyer(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, buyer)
	assert.NotEqual(t, uuid.Nil, buyer.ID)
	assert.Equal(t, input.Email, buyer.Email)
	assert.Equal(t, "hashed_password", buyer.PasswordHash)
}

func TestAuthService_SignupBuyer_AlreadyExists(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		FirstName: "Asha",
		LastName:  "Patil",
		Email:     "asha.patil@campus.test",
		Password:  "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBuyerRepo := mockRepo.NewMockBuyerRepository(t)

			mockFactory.EXPECT().NewBuyerRepository().Return(mockBuyerRepo)

			mockBuyerRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.Buyer{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	buyer, err := fx.service.SignupBuyer(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, buyer)
	assert.True(t, errors.Is(err, domainerrors.ErrBuyerAlreadyExists))
}

func TestAuthService_SignupBuyer_RejectsForeignEmail(t *testing.T) {
	fx := createTestAuthService(t)

	buyer, err := fx.service.SignupBuyer(context.Background(), &usecase.SignupInput{
		FirstName: "Asha",
		LastName:  "Patil",
		Email:     "asha.patil@gmail.com",
		Password:  "Password123!",
	})

	assert.Error(t, err)
	assert.Nil(t, buyer)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_SignupBuyer_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	buyer, err := fx.service.SignupBuyer(context.Background(), &usecase.SignupInput{
		FirstName: "Asha",
		Email:     "asha.patil@campus.test",
	})

	assert.Error(t, err)
	assert.Nil(t, buyer)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_LoginBuyer_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	buyer := &entity.Buyer{
		ID:           uuid.New(),
		FirstName:    "Asha",
		LastName:     "Patil",
		Email:        "asha.patil@campus.test",
		PasswordHash: "hashed_password",
	}

	fx.buyerRepo.EXPECT().FindByEmail(ctx, buyer.Email).Return(buyer, nil)
	fx.hasher.EXPECT().Check("Password123!", buyer.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(buyer.ID, entity.PrincipalBuyer).Return("session-token", nil)

	output, err := fx.service.LoginBuyer(ctx, &usecase.LoginInput{
		Email:    buyer.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, buyer, output.Buyer)
}

func TestAuthService_LoginBuyer_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	buyer := &entity.Buyer{
		ID:           uuid.New(),
		Email:        "asha.patil@campus.test",
		PasswordHash: "hashed_password",
	}

	fx.buyerRepo.EXPECT().FindByEmail(ctx, buyer.Email).Return(buyer, nil)
	fx.hasher.EXPECT().Check("wrong", buyer.PasswordHash).Return(false)

	output, err := fx.service.LoginBuyer(ctx, &usecase.LoginInput{
		Email:    buyer.Email,
		Password: "wrong",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_LoginBuyer_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.buyerRepo.EXPECT().
		FindByEmail(ctx, "ghost@campus.test").
		Return(nil, repository.ErrBuyerNotFound)

	output, err := fx.service.LoginBuyer(ctx, &usecase.LoginInput{
		Email:    "ghost@campus.test",
		Password: "Password123!",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_SignupAdmin_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		FirstName: "Rohan",
		LastName:  "Deshmukh",
		Email:     "rohan.deshmukh@campus.test",
		Password:  "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAdminRepo := mockRepo.NewMockAdminRepository(t)

			mockFactory.EXPECT().NewAdminRepository().Return(mockAdminRepo)

			mockAdminRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrAdminNotFound)

			mockAdminRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Admin")).
				Run(func(ctx context.Context, admin *entity.Admin) {
					admin.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	admin, err := fx.service.SignupAdmin(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, input.Email, admin.Email)
}

func TestAuthService_SignupAdmin_AlreadyExists(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		FirstName: "Rohan",
		LastName:  "Deshmukh",
		Email:     "rohan.deshmukh@campus.test",
		Password:  "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAdminRepo := mockRepo.NewMockAdminRepository(t)

			mockFactory.EXPECT().NewAdminRepository().Return(mockAdminRepo)

			mockAdminRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.Admin{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	admin, err := fx.service.SignupAdmin(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, admin)
	assert.True(t, errors.Is(err, domainerrors.ErrAdminAlreadyExists))
}

func TestAuthService_LoginAdmin_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	admin := &entity.Admin{
		ID:           uuid.New(),
		FirstName:    "Rohan",
		LastName:     "Deshmukh",
		Email:        "rohan.deshmukh@campus.test",
		PasswordHash: "hashed_password",
	}

	fx.adminRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
	fx.hasher.EXPECT().Check("Password123!", admin.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(admin.ID, entity.PrincipalAdmin).Return("admin-token", nil)

	output, err := fx.service.LoginAdmin(ctx, &usecase.LoginInput{
		Email:    admin.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "admin-token", output.Token)
	assert.Equal(t, admin, output.Admin)
}

func TestNewAuthService_BadEmailPattern(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service, err := NewAuthService(AuthServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		BuyerRepo:    mockRepo.NewMockBuyerRepository(t),
		AdminRepo:    mockRepo.NewMockAdminRepository(t),
		Hasher:       mockSvc.NewMockPasswordHasher(t),
		TokenService: mockSvc.NewMockTokenService(t),
		Config: &config.Config{
			Signup: &config.SignupConfig{EmailPattern: `([`},
		},
		Logger: logger,
	})

	assert.Error(t, err)
	assert.Nil(t, service)
}
