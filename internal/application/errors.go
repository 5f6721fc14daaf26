package application

import "errors"

// Service-level error kinds. Handlers translate these into HTTP statuses;
// raw storage or crypto errors never cross this boundary.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateSlug      = errors.New("slug already exists")
	ErrInvalidRole        = errors.New("invalid role")
)
