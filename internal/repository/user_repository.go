package repository

import (
	"database/sql"
	"fmt"

	"snipr-be/internal/entities"
)

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(firstName, lastName, username, email, hashedPassword string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	List(skip, limit int) ([]*entities.User, error)
	Update(id string, firstName, lastName, username *string) (*entities.User, error)
	Delete(id string) error
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = "id, first_name, last_name, username, email_address, hashed_password, created_at"

func scanUser(row *sql.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Username,
		&user.EmailAddress,
		&user.HashedPassword,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

// Create inserts a new user into the database
func (r *userRepository) Create(firstName, lastName, username, email, hashedPassword string) (*entities.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, username, email_address, hashed_password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	row := r.db.QueryRow(query, firstName, lastName, username, email, hashedPassword)
	user, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// FindByID finds a user by ID (UUID)
func (r *userRepository) FindByID(id string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(query, id))
}

// FindByEmail finds a user by email address
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email_address = $1`
	return scanUser(r.db.QueryRow(query, email))
}

// FindByUsername finds a user by username
func (r *userRepository) FindByUsername(username string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRow(query, username))
}

// List returns users ordered newest first, with skip/limit pagination
func (r *userRepository) List(skip, limit int) ([]*entities.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		var user entities.User
		err := rows.Scan(
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Username,
			&user.EmailAddress,
			&user.HashedPassword,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// Update applies a partial update: nil fields keep their stored values
func (r *userRepository) Update(id string, firstName, lastName, username *string) (*entities.User, error) {
	query := `
		UPDATE users
		SET first_name = COALESCE($2, first_name),
		    last_name  = COALESCE($3, last_name),
		    username   = COALESCE($4, username)
		WHERE id = $1
		RETURNING ` + userColumns

	row := r.db.QueryRow(query, id, firstName, lastName, username)
	user, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return user, nil
}

// Delete removes a user. Owned URLs are orphaned, not deleted; the foreign
// key is declared ON DELETE SET NULL.
func (r *userRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
