package repository

import (
	"database/sql"
	"fmt"
	"time"

	"snipr-be/internal/entities"
)

// URLRepository defines the interface for URL database operations
type URLRepository interface {
	Create(shortCode, originalURL string, userID *string, expiresAt *time.Time) (*entities.URL, error)
	FindByShortCode(shortCode string) (*entities.URL, error)
	ExistsByShortCode(shortCode string) (bool, error)
	IncrementClickCount(shortCode string) error
	ListByUserID(userID string) ([]*entities.URL, error)
}

type urlRepository struct {
	db *sql.DB
}

// NewURLRepository creates a new URL repository
func NewURLRepository(db *sql.DB) URLRepository {
	return &urlRepository{db: db}
}

const urlColumns = "id, original_url, short_code, user_id, created_at, expires_at, click_count, is_active"

// Create inserts a new URL into the database. A unique constraint violation
// on short_code surfaces as ErrDuplicate: callers pre-check availability but
// can still lose the race to a concurrent insert.
func (r *urlRepository) Create(shortCode, originalURL string, userID *string, expiresAt *time.Time) (*entities.URL, error) {
	// Ensure expiresAt is stored in UTC
	var expiresAtValue interface{}
	if expiresAt != nil {
		expiresAtValue = expiresAt.UTC()
	}

	query := `
		INSERT INTO urls (short_code, original_url, user_id, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + urlColumns

	var url entities.URL
	err := r.db.QueryRow(query, shortCode, originalURL, userID, expiresAtValue).Scan(
		&url.ID,
		&url.OriginalURL,
		&url.ShortCode,
		&url.UserID,
		&url.CreatedAt,
		&url.ExpiresAt,
		&url.ClickCount,
		&url.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create URL: %w", err)
	}

	return &url, nil
}

// FindByShortCode finds a URL by its short code regardless of expiry or
// active state; callers decide how to treat expired or disabled records.
func (r *urlRepository) FindByShortCode(shortCode string) (*entities.URL, error) {
	query := `SELECT ` + urlColumns + ` FROM urls WHERE short_code = $1`

	var url entities.URL
	err := r.db.QueryRow(query, shortCode).Scan(
		&url.ID,
		&url.OriginalURL,
		&url.ShortCode,
		&url.UserID,
		&url.CreatedAt,
		&url.ExpiresAt,
		&url.ClickCount,
		&url.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find URL: %w", err)
	}

	return &url, nil
}

// ExistsByShortCode reports whether any URL record uses the given code
func (r *urlRepository) ExistsByShortCode(shortCode string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM urls WHERE short_code = $1)`, shortCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check short code: %w", err)
	}
	return exists, nil
}

// IncrementClickCount atomically increments the click count for a URL.
// The increment happens in SQL so concurrent redirects never lose updates.
func (r *urlRepository) IncrementClickCount(shortCode string) error {
	result, err := r.db.Exec(`
		UPDATE urls
		SET click_count = click_count + 1
		WHERE short_code = $1
	`, shortCode)
	if err != nil {
		return fmt.Errorf("failed to increment click count: %w", err)
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

// ListByUserID retrieves all URLs for a specific user, newest first
func (r *urlRepository) ListByUserID(userID string) ([]*entities.URL, error) {
	query := `
		SELECT ` + urlColumns + `
		FROM urls
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get URLs: %w", err)
	}
	defer rows.Close()

	var urls []*entities.URL
	for rows.Next() {
		var url entities.URL
		err := rows.Scan(
			&url.ID,
			&url.OriginalURL,
			&url.ShortCode,
			&url.UserID,
			&url.CreatedAt,
			&url.ExpiresAt,
			&url.ClickCount,
			&url.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan URL: %w", err)
		}
		urls = append(urls, &url)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating URLs: %w", err)
	}

	return urls, nil
}
