package utils

import "github.com/google/uuid"

// NewSessionToken returns a fresh opaque session token
func NewSessionToken() string {
	return uuid.NewString()
}
