package model

import "time"

// Contact belongs to exactly one user, referenced by username
type Contact struct {
	ID        int64     `json:"id"`
	Username  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"-"`
}

type CreateContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,max=100,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type UpdateContactRequest struct {
	ID        int64   `json:"-" uri:"contactId" validate:"min=1"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,max=100,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// SearchContactRequest holds the optional substring filters of a contact search.
// Supplied filters are combined with AND; Name matches first or last name.
type SearchContactRequest struct {
	Name  *string `form:"name" validate:"omitempty,min=1"`
	Email *string `form:"email" validate:"omitempty,min=1"`
	Phone *string `form:"phone" validate:"omitempty,min=1"`
	Page  int     `form:"page,default=1" validate:"min=1,max=1000000"`
	Size  int     `form:"size,default=10" validate:"min=1,max=100"`
}

type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

func ToContactResponse(c *Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}
