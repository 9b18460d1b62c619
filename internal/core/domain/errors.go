package domain

import "errors"

// ErrInvalidCredentials covers both an unknown identifier and a wrong
// password; callers must not distinguish the two, to avoid user enumeration.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrMissingFields is returned when an empty identifier or password is
// submitted, before any directory lookup takes place.
var ErrMissingFields = errors.New("email and password are required")

// ErrLoginSuperseded is returned to a login call whose completion was
// overtaken by a login started later; the later call's outcome wins.
var ErrLoginSuperseded = errors.New("login superseded by a newer attempt")

var ErrUnknownRole = errors.New("unknown role")
