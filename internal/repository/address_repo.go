package repository

import (
	"context"
	"errors"
	"fmt"

	"contact_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// AddressRepository defines operations for address data, always scoped by
// the parent contact
type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) error
	FindByContact(ctx context.Context, contactID, id int64) (*model.Address, error)
	ListByContact(ctx context.Context, contactID int64) ([]model.Address, error)
	Update(ctx context.Context, address *model.Address) error
	Delete(ctx context.Context, contactID, id int64) error
}

type addressRepository struct {
	db DBTX
}

// NewAddressRepository creates a new AddressRepository
func NewAddressRepository(db DBTX) AddressRepository {
	return &addressRepository{db: db}
}

const addressColumns = `id, contact_id, street, city, province, country, postal_code`

func scanAddress(row pgx.Row) (*model.Address, error) {
	a := &model.Address{}
	err := row.Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode)
	return a, err
}

// Create inserts a new address
func (r *addressRepository) Create(ctx context.Context, a *model.Address) error {
	sql := `INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRow(ctx, sql, a.ContactID, a.Street, a.City, a.Province, a.Country, a.PostalCode).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// FindByContact retrieves an address only if it belongs to contactID, nil otherwise
func (r *addressRepository) FindByContact(ctx context.Context, contactID, id int64) (*model.Address, error) {
	sql := `SELECT ` + addressColumns + ` FROM addresses WHERE contact_id = $1 AND id = $2`
	a, err := scanAddress(r.db.QueryRow(ctx, sql, contactID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find address by contact: %w", err)
	}
	return a, nil
}

// ListByContact retrieves every address of a contact
func (r *addressRepository) ListByContact(ctx context.Context, contactID int64) ([]model.Address, error) {
	sql := `SELECT ` + addressColumns + ` FROM addresses WHERE contact_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, sql, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to query addresses by contact: %w", err)
	}
	defer rows.Close()

	addresses := []model.Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan address row: %w", err)
		}
		addresses = append(addresses, *a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating address rows: %w", err)
	}
	return addresses, nil
}

// Update modifies an existing address
func (r *addressRepository) Update(ctx context.Context, a *model.Address) error {
	sql := `UPDATE addresses
            SET street = $1, city = $2, province = $3, country = $4, postal_code = $5
            WHERE id = $6 AND contact_id = $7`
	cmdTag, err := r.db.Exec(ctx, sql, a.Street, a.City, a.Province, a.Country, a.PostalCode, a.ID, a.ContactID)
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("address not found under contact for update")
	}
	return nil
}

// Delete removes an address of contactID
func (r *addressRepository) Delete(ctx context.Context, contactID, id int64) error {
	sql := `DELETE FROM addresses WHERE id = $1 AND contact_id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, id, contactID)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("address not found under contact for deletion")
	}
	return nil
}
