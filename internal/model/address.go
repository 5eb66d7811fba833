package model

// Address belongs to a contact; it is reachable only through that contact's owner
type Address struct {
	ID         int64   `json:"id"`
	ContactID  int64   `json:"-"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

type CreateAddressRequest struct {
	ContactID  int64   `json:"-" uri:"contactId" validate:"min=1"`
	Street     *string `json:"street,omitempty" validate:"omitempty,min=1,max=255"`
	City       *string `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
	Province   *string `json:"province,omitempty" validate:"omitempty,min=1,max=100"`
	Country    string  `json:"country" validate:"required,min=1,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,min=1,max=10"`
}

type UpdateAddressRequest struct {
	ID         int64   `json:"-" uri:"addressId" validate:"min=1"`
	ContactID  int64   `json:"-" uri:"contactId" validate:"min=1"`
	Street     *string `json:"street,omitempty" validate:"omitempty,min=1,max=255"`
	City       *string `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
	Province   *string `json:"province,omitempty" validate:"omitempty,min=1,max=100"`
	Country    string  `json:"country" validate:"required,min=1,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,min=1,max=10"`
}

// AddressRef identifies an address through its parent contact
type AddressRef struct {
	ContactID int64 `uri:"contactId" validate:"min=1"`
	AddressID int64 `uri:"addressId" validate:"min=1"`
}

type AddressResponse struct {
	ID         int64   `json:"id"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

func ToAddressResponse(a *Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}
