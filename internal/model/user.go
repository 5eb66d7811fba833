package model

import "time"

const (
	RoleUser     = "user"
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// User represents an account of the contact API
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash, never exposed
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Token     *string   `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) RoleName() string { return u.Role }

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

type LoginUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
}

// UpdateUserRequest is a partial patch, nil fields are left untouched
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1,max=100"`
}

type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{Username: u.Username, Name: u.Name}
}
