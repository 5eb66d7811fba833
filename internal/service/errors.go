package service

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("username or password is invalid")
	ErrContactNotFound    = errors.New("contact is not found")
	ErrAddressNotFound    = errors.New("address is not found")
	ErrFirstNameRequired  = errors.New("first name is required")
)
