package staff

import "errors"

var (
	// -- Authentication --
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")

	// -- Validation & Input --
	ErrNameRequired     = errors.New("staff name is required")
	ErrEmailRequired    = errors.New("staff email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrInvalidRole      = errors.New("invalid staff role")
	ErrInvalidStatus    = errors.New("invalid staff status")
	ErrEmailExists      = errors.New("email already registered")

	// -- Resource State --
	ErrUserNotFound = errors.New("staff user not found")

	// -- Store Failures --
	ErrFailedFetchUsers = errors.New("failed to fetch staff users")
	ErrFailedCreateUser = errors.New("failed to create staff user")
	ErrFailedUpdateUser = errors.New("failed to update staff user")
	ErrFailedDeleteUser = errors.New("failed to delete staff user")
)
