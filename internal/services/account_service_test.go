package services

import (
	"context"
	"testing"

	"github.com/recipebox/server/internal/models"
	"github.com/recipebox/server/internal/repository/repositorytest"
	appErr "github.com/recipebox/server/pkg/errors"
	"github.com/recipebox/server/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	if _, err := logger.Init("error", "console"); err != nil {
		panic(err)
	}
}

func newAccountService(t *testing.T) (AccountService, *repositorytest.AccountRepo) {
	t.Helper()
	repo := repositorytest.NewAccountRepo()
	return NewAccountService(repo, bcrypt.MinCost), repo
}

func TestRegister(t *testing.T) {
	svc, _ := newAccountService(t)

	a, err := svc.Register(context.Background(), "test@gmail.com", "testpassword", "Test Name")
	require.NoError(t, err)

	assert.Equal(t, "test@gmail.com", a.Email)
	assert.Equal(t, "Test Name", a.Name)
	assert.True(t, a.CheckPassword("testpassword"))
	assert.True(t, a.IsActive)
	assert.False(t, a.IsStaff)
	assert.False(t, a.IsSuperuser)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, _ := newAccountService(t)

	a, err := svc.Register(context.Background(), "test@GMAIL.COM", "testpassword", "")
	require.NoError(t, err)
	assert.Equal(t, "test@gmail.com", a.Email)
}

func TestRegisterEmptyEmail(t *testing.T) {
	svc, repo := newAccountService(t)

	_, err := svc.Register(context.Background(), "", "testpassword", "")
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
	assert.Zero(t, repo.Len(), "no row should be persisted")
}

func TestRegisterShortPassword(t *testing.T) {
	svc, repo := newAccountService(t)

	_, err := svc.Register(context.Background(), "test@gmail.com", "1234", "Test Name")
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
	assert.Zero(t, repo.Len(), "no row should be persisted")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo := newAccountService(t)

	_, err := svc.Register(context.Background(), "test@gmail.com", "testpassword", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "test@gmail.com", "otherpassword", "")
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeAlreadyExists))
	assert.Equal(t, 1, repo.Len())
}

func TestCreateSuperuser(t *testing.T) {
	svc, _ := newAccountService(t)

	a, err := svc.CreateSuperuser(context.Background(), "admin@gmail.com", "adminpassword")
	require.NoError(t, err)
	assert.True(t, a.IsStaff)
	assert.True(t, a.IsSuperuser)
	assert.True(t, a.CheckPassword("adminpassword"))
}

func TestUpdateProfile(t *testing.T) {
	svc, repo := newAccountService(t)

	a, err := svc.Register(context.Background(), "test@gmail.com", "testpassword", "Old Name")
	require.NoError(t, err)

	newName := "New Name"
	newPassword := "newtestpassword"
	updated, err := svc.UpdateProfile(context.Background(), a, ProfileUpdate{Name: &newName, Password: &newPassword})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.True(t, updated.CheckPassword("newtestpassword"))
	assert.False(t, updated.CheckPassword("testpassword"))

	var stored models.Account
	require.NoError(t, repo.GetByID(context.Background(), a.ID, &stored))
	assert.Equal(t, "New Name", stored.Name)
	assert.True(t, stored.CheckPassword("newtestpassword"))
}

func TestUpdateProfileShortPassword(t *testing.T) {
	svc, _ := newAccountService(t)

	a, err := svc.Register(context.Background(), "test@gmail.com", "testpassword", "")
	require.NoError(t, err)

	short := "1234"
	_, err = svc.UpdateProfile(context.Background(), a, ProfileUpdate{Password: &short})
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}
