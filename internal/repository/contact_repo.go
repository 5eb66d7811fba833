package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contact_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// ContactRepository defines operations for contact data. Every lookup and
// mutation is scoped by the owning username.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	FindByOwner(ctx context.Context, username string, id int64) (*model.Contact, error)
	Update(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, username string, id int64) error
	Search(ctx context.Context, username string, filter model.SearchContactRequest) ([]model.Contact, error)
	Count(ctx context.Context, username string, filter model.SearchContactRequest) (int64, error)
}

type contactRepository struct {
	db DBTX
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db DBTX) ContactRepository {
	return &contactRepository{db: db}
}

const contactColumns = `id, username, first_name, last_name, email, phone, created_at`

func scanContact(row pgx.Row) (*model.Contact, error) {
	c := &model.Contact{}
	err := row.Scan(&c.ID, &c.Username, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt)
	return c, err
}

// Create inserts a new contact
func (r *contactRepository) Create(ctx context.Context, c *model.Contact) error {
	sql := `INSERT INTO contacts (username, first_name, last_name, email, phone, created_at)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRow(ctx, sql, c.Username, c.FirstName, c.LastName, c.Email, c.Phone, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// FindByOwner retrieves a contact only if it belongs to username, nil otherwise
func (r *contactRepository) FindByOwner(ctx context.Context, username string, id int64) (*model.Contact, error) {
	sql := `SELECT ` + contactColumns + ` FROM contacts WHERE username = $1 AND id = $2`
	c, err := scanContact(r.db.QueryRow(ctx, sql, username, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contact by owner: %w", err)
	}
	return c, nil
}

// Update modifies an existing contact
func (r *contactRepository) Update(ctx context.Context, c *model.Contact) error {
	sql := `UPDATE contacts
            SET first_name = $1, last_name = $2, email = $3, phone = $4
            WHERE id = $5 AND username = $6` // ensure username matches for ownership
	cmdTag, err := r.db.Exec(ctx, sql, c.FirstName, c.LastName, c.Email, c.Phone, c.ID, c.Username)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("contact not found or not owned by user for update")
	}
	return nil
}

// Delete removes a contact owned by username
func (r *contactRepository) Delete(ctx context.Context, username string, id int64) error {
	sql := `DELETE FROM contacts WHERE id = $1 AND username = $2`
	cmdTag, err := r.db.Exec(ctx, sql, id, username)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("contact not found or not owned by user for deletion")
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns raw input into a LIKE pattern matching it as a literal substring
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// buildContactFilter renders the WHERE clause shared by Search and Count:
// owner, then each supplied filter, all ANDed. Matching is a case-sensitive substring test.
func buildContactFilter(username string, f model.SearchContactRequest) (string, []any) {
	conditions := []string{"username = $1"}
	args := []any{username}
	argCount := 2

	if f.Name != nil && *f.Name != "" {
		conditions = append(conditions, fmt.Sprintf(`(first_name LIKE $%d ESCAPE '\' OR last_name LIKE $%d ESCAPE '\')`, argCount, argCount))
		args = append(args, containsPattern(*f.Name))
		argCount++
	}
	if f.Email != nil && *f.Email != "" {
		conditions = append(conditions, fmt.Sprintf(`email LIKE $%d ESCAPE '\'`, argCount))
		args = append(args, containsPattern(*f.Email))
		argCount++
	}
	if f.Phone != nil && *f.Phone != "" {
		conditions = append(conditions, fmt.Sprintf(`phone LIKE $%d ESCAPE '\'`, argCount))
		args = append(args, containsPattern(*f.Phone))
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

// Search returns one page of the user's contacts matching the filter
func (r *contactRepository) Search(ctx context.Context, username string, f model.SearchContactRequest) ([]model.Contact, error) {
	where, args := buildContactFilter(username, f)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + contactColumns + ` FROM contacts`)
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, f.Size, (f.Page-1)*f.Size)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}
	return contacts, nil
}

// Count returns the number of the user's contacts matching the filter
func (r *contactRepository) Count(ctx context.Context, username string, f model.SearchContactRequest) (int64, error) {
	where, args := buildContactFilter(username, f)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return total, nil
}
