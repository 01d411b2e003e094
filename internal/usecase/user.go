package usecase

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopcore/shopcore/internal/domain"
)

type CreateUserRequest struct {
	Email       string
	FirstName   string
	LastName    string
	Password    string
	IsActive    bool
	IsStaff     bool
	IsSuperuser bool
}

// UserResponse carries the public account fields; the credential never
// crosses the use-case boundary outward.
type UserResponse struct {
	ID          int64  `json:"id,string"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	IsActive    bool   `json:"is_active"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

func newUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
	}
}

// CreateUserUseCase builds the account entity and delegates persistence.
// Email uniqueness and credential hashing are the repository's job.
type CreateUserUseCase struct {
	users UserRepository
}

func NewCreateUserUseCase(users UserRepository) *CreateUserUseCase {
	return &CreateUserUseCase{users: users}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	user := &domain.User{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Password:    req.Password,
		IsActive:    req.IsActive,
		IsStaff:     req.IsStaff,
		IsSuperuser: req.IsSuperuser,
	}

	created, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return newUserResponse(created), nil
}

type ListUsersRequest struct {
	Offset      int
	Limit       int
	SearchQuery string
}

type ListUsersResponse struct {
	Users      []UserResponse `json:"users"`
	TotalItems int64          `json:"total_items"`
	Offset     int            `json:"offset"`
	Limit      int            `json:"limit"`
}

type ListUsersUseCase struct {
	users UserRepository
}

func NewListUsersUseCase(users UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{users: users}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, req ListUsersRequest) (*ListUsersResponse, error) {
	users, total, err := uc.users.GetAllPaginatedFiltered(ctx, req.Offset, req.Limit, req.SearchQuery)
	if err != nil {
		return nil, err
	}

	resp := &ListUsersResponse{
		Users:      make([]UserResponse, 0, len(users)),
		TotalItems: total,
		Offset:     req.Offset,
		Limit:      req.Limit,
	}
	for i := range users {
		resp.Users = append(resp.Users, *newUserResponse(&users[i]))
	}
	return resp, nil
}

type GetUserByIdRequest struct {
	UserID int64
}

// GetUserByIdUseCase is a read-through. It deliberately performs no
// missing-user check of its own and relies on the repository to fail.
type GetUserByIdUseCase struct {
	users UserRepository
}

func NewGetUserByIdUseCase(users UserRepository) *GetUserByIdUseCase {
	return &GetUserByIdUseCase{users: users}
}

func (uc *GetUserByIdUseCase) Execute(ctx context.Context, req GetUserByIdRequest) (*UserResponse, error) {
	user, err := uc.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	return newUserResponse(user), nil
}

type GetUserByEmailRequest struct {
	UserEmail string
}

type GetUserByEmailUseCase struct {
	users UserRepository
}

func NewGetUserByEmailUseCase(users UserRepository) *GetUserByEmailUseCase {
	return &GetUserByEmailUseCase{users: users}
}

func (uc *GetUserByEmailUseCase) Execute(ctx context.Context, req GetUserByEmailRequest) (*UserResponse, error) {
	user, err := uc.users.GetByEmail(ctx, req.UserEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.Wrap(domain.ErrNotFound, "user not found")
	}
	return newUserResponse(user), nil
}

type LoginUserRequest struct {
	Email    string
	Password string
}

type LoginUserResponse struct {
	ID           int64  `json:"id,string"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginUserUseCase authenticates by email and password. The failure is the
// same whether the account is missing or the password is wrong, so the
// response leaks neither.
type LoginUserUseCase struct {
	users UserRepository
	auth  AuthGateway
}

func NewLoginUserUseCase(users UserRepository, auth AuthGateway) *LoginUserUseCase {
	return &LoginUserUseCase{users: users, auth: auth}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, req LoginUserRequest) (*LoginUserResponse, error) {
	user, err := uc.users.GetByEmail(ctx, req.Email)
	if err != nil || user == nil {
		return nil, errors.Wrap(domain.ErrInvalidCredentials, "invalid email or password")
	}

	if !uc.auth.CheckPassword(ctx, user.ID, req.Password) {
		return nil, errors.Wrap(domain.ErrInvalidCredentials, "invalid email or password")
	}

	access, refresh, err := uc.auth.CreateTokens(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginUserResponse{
		ID:           user.ID,
		Email:        user.Email,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

type ChangeUserPasswordRequest struct {
	UserID      int64
	OldPassword string
	NewPassword string
}

type ChangeUserPasswordResponse struct {
	Success bool `json:"success"`
}

// ChangeUserPasswordUseCase verifies the old credential before anything
// else, then resolves the account, then sets the new credential.
type ChangeUserPasswordUseCase struct {
	users UserRepository
	auth  AuthGateway
}

func NewChangeUserPasswordUseCase(users UserRepository, auth AuthGateway) *ChangeUserPasswordUseCase {
	return &ChangeUserPasswordUseCase{users: users, auth: auth}
}

func (uc *ChangeUserPasswordUseCase) Execute(ctx context.Context, req ChangeUserPasswordRequest) (*ChangeUserPasswordResponse, error) {
	if !uc.auth.CheckPassword(ctx, req.UserID, req.OldPassword) {
		return nil, errors.Wrap(domain.ErrInvalidCredentials, "old password is incorrect")
	}

	user, err := uc.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.Wrap(domain.ErrNotFound, "user not found")
	}

	if err := uc.auth.SetPassword(ctx, user.ID, req.NewPassword); err != nil {
		return nil, err
	}
	return &ChangeUserPasswordResponse{Success: true}, nil
}
