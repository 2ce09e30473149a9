package service

import "errors"

// Domain errors returned by the service layer. Handlers translate these
// into HTTP statuses; anything unrecognized becomes a 500.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("acting user is not the owner of this resource")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSelfFollow         = errors.New("users cannot follow themselves")
	ErrAlreadyFollowing   = errors.New("already following this user")
	ErrNotFollowing       = errors.New("not following this user")
)
