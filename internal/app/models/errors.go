package models

import "errors"

// Domain specific errors.
var (
	// ErrNotAuthenticated is the routing signal returned by a session gate
	// when nobody is logged in. Views turn it into a redirect or a login
	// prompt; it is never shown to visitors as a failure.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotFound         = errors.New("requested item not found")
	ErrValidation       = errors.New("validation failed")
	ErrSpam             = errors.New("message rejected as spam")
)
