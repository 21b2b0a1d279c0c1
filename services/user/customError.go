package user

import "errors"

// ErrEmailRequired is returned when a profile is saved without an email.
var ErrEmailRequired = errors.New("email is required")
