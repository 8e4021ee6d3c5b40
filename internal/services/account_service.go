package services

import (
	"context"
	"strings"

	"github.com/recipebox/server/internal/models"
	"github.com/recipebox/server/internal/repository"
	appErr "github.com/recipebox/server/pkg/errors"
	"github.com/recipebox/server/pkg/logger"
	"go.uber.org/zap"
)

// MinPasswordLength is the minimum accepted password length for signup and
// profile updates.
const MinPasswordLength = 5

type ProfileUpdate struct {
	Name     *string
	Password *string
}

type AccountService interface {
	// Register creates a regular account. The email domain is normalized to
	// lower case and only a bcrypt hash of the password is stored.
	Register(ctx context.Context, email, password, name string) (*models.Account, error)
	// CreateSuperuser creates an account with staff and superuser flags set.
	CreateSuperuser(ctx context.Context, email, password string) (*models.Account, error)
	// UpdateProfile applies a partial update to the caller's own account.
	// A new password is re-hashed before persisting.
	UpdateProfile(ctx context.Context, account *models.Account, upd ProfileUpdate) (*models.Account, error)
}

type accountService struct {
	accounts   repository.AccountRepository
	bcryptCost int
}

func NewAccountService(accounts repository.AccountRepository, bcryptCost int) AccountService {
	return &accountService{accounts: accounts, bcryptCost: bcryptCost}
}

var _ AccountService = (*accountService)(nil)

func (s *accountService) Register(ctx context.Context, email, password, name string) (*models.Account, error) {
	return s.create(ctx, email, password, name, false)
}

func (s *accountService) CreateSuperuser(ctx context.Context, email, password string) (*models.Account, error) {
	return s.create(ctx, email, password, "", true)
}

func (s *accountService) create(ctx context.Context, email, password, name string, super bool) (*models.Account, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return nil, appErr.New(appErr.CodeInvalid, "email is required").WithField("email", "this field is required")
	}
	if len(password) < MinPasswordLength {
		return nil, appErr.New(appErr.CodeInvalid, "password too short").
			WithField("password", "ensure this field has at least 5 characters")
	}

	a := &models.Account{
		Email:       email,
		Name:        name,
		IsActive:    true,
		IsStaff:     super,
		IsSuperuser: super,
	}
	if err := a.SetPassword(password, s.bcryptCost); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}

	if err := s.accounts.Create(ctx, a); err != nil {
		if appErr.IsCode(err, appErr.CodeAlreadyExists) {
			return nil, appErr.New(appErr.CodeAlreadyExists, "account already exists").
				WithField("email", "account with this email already exists")
		}
		return nil, err
	}

	logger.L().Info("account created", zap.String("account_id", a.ID.String()), zap.Bool("superuser", super))
	return a, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, account *models.Account, upd ProfileUpdate) (*models.Account, error) {
	if upd.Name != nil {
		account.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Password != nil {
		if len(*upd.Password) < MinPasswordLength {
			return nil, appErr.New(appErr.CodeInvalid, "password too short").
				WithField("password", "ensure this field has at least 5 characters")
		}
		if err := account.SetPassword(*upd.Password, s.bcryptCost); err != nil {
			return nil, appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
		}
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	logger.L().Info("profile updated", zap.String("account_id", account.ID.String()))
	return account, nil
}
