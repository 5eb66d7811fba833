package model

// SampleUser is the record behind the basics demo app
type SampleUser struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role,omitempty"`
	Token     *string `json:"-"`
}

// RoleName returns the role, or "" when none is assigned
func (u *SampleUser) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return *u.Role
}

type SampleLoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
}
