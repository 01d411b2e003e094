package domain

import "github.com/pkg/errors"

// Failure taxonomy shared by the use-case core. Adapters translate these
// to transport-level representations; the core never logs or retries.
var (
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUserHasOrders      = errors.New("user has orders")
)
