package usecase

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopcore/shopcore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewCreateUserUseCase(repo)

	resp, err := uc.Execute(context.Background(), CreateUserRequest{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Password:  "secret123",
		IsActive:  true,
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.True(t, resp.IsActive)
	assert.Equal(t, 1, repo.createCalls)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&domain.User{Email: "jane@example.com"})

	uc := NewCreateUserUseCase(repo)
	_, err := uc.Execute(context.Background(), CreateUserRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.True(t, errors.Is(err, domain.ErrEmailTaken))
}

func TestGetUserById(t *testing.T) {
	repo := newFakeUserRepo()
	created := repo.add(&domain.User{Email: "jane@example.com"})

	uc := NewGetUserByIdUseCase(repo)
	resp, err := uc.Execute(context.Background(), GetUserByIdRequest{UserID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)

	_, err = uc.Execute(context.Background(), GetUserByIdRequest{UserID: 9999})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetUserByEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&domain.User{Email: "jane@example.com"})

	uc := NewGetUserByEmailUseCase(repo)
	resp, err := uc.Execute(context.Background(), GetUserByEmailRequest{UserEmail: "jane@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Email)

	_, err = uc.Execute(context.Background(), GetUserByEmailRequest{UserEmail: "nobody@example.com"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestListUsers(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&domain.User{Email: "a@example.com"})
	repo.add(&domain.User{Email: "b@example.com"})

	uc := NewListUsersUseCase(repo)
	resp, err := uc.Execute(context.Background(), ListUsersRequest{Offset: 0, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, resp.Users, 2)
	assert.Equal(t, int64(2), resp.TotalItems)
}

func TestLoginUser(t *testing.T) {
	repo := newFakeUserRepo()
	user := repo.add(&domain.User{Email: "jane@example.com", IsActive: true})

	gateway := newFakeAuthGateway()
	gateway.passwords[user.ID] = "secret123"

	uc := NewLoginUserUseCase(repo, gateway)
	resp, err := uc.Execute(context.Background(), LoginUserRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "access-token", resp.AccessToken)
	assert.Equal(t, "refresh-token", resp.RefreshToken)
}

// A wrong password and an unknown email must be indistinguishable.
func TestLoginUserUndifferentiatedFailure(t *testing.T) {
	repo := newFakeUserRepo()
	user := repo.add(&domain.User{Email: "jane@example.com"})

	gateway := newFakeAuthGateway()
	gateway.passwords[user.ID] = "secret123"

	uc := NewLoginUserUseCase(repo, gateway)

	_, wrongPass := uc.Execute(context.Background(), LoginUserRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	_, unknownEmail := uc.Execute(context.Background(), LoginUserRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	assert.True(t, errors.Is(wrongPass, domain.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownEmail, domain.ErrInvalidCredentials))
	assert.Equal(t, wrongPass.Error(), unknownEmail.Error())
}

func TestChangeUserPassword(t *testing.T) {
	repo := newFakeUserRepo()
	user := repo.add(&domain.User{Email: "jane@example.com"})

	gateway := newFakeAuthGateway()
	gateway.passwords[user.ID] = "oldpass"

	uc := NewChangeUserPasswordUseCase(repo, gateway)
	resp, err := uc.Execute(context.Background(), ChangeUserPasswordRequest{
		UserID:      user.ID,
		OldPassword: "oldpass",
		NewPassword: "newpass",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "newpass", gateway.passwords[user.ID])
}

// The old credential is verified before the account is even resolved, so a
// wrong old password fails the same way for existing and missing users.
func TestChangeUserPasswordWrongOldPassword(t *testing.T) {
	repo := newFakeUserRepo()
	user := repo.add(&domain.User{Email: "jane@example.com"})

	gateway := newFakeAuthGateway()
	gateway.passwords[user.ID] = "oldpass"

	uc := NewChangeUserPasswordUseCase(repo, gateway)
	_, err := uc.Execute(context.Background(), ChangeUserPasswordRequest{
		UserID:      user.ID,
		OldPassword: "wrong",
		NewPassword: "newpass",
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
	assert.Empty(t, gateway.setPasswordCalls)
	assert.Equal(t, "oldpass", gateway.passwords[user.ID])
}
