package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// User errors
var (
	ErrLoginTaken       = errors.New("the login is already in use")
	ErrLoginFormat      = errors.New("the login must be 5-20 characters long and only contain latin letters, digits and _")
	ErrPasswordTooShort = errors.New("the password must be at least 8 characters long")
)

// Budget errors
var (
	ErrInviteExhausted = errors.New("could not generate an unused budget invite")
)
