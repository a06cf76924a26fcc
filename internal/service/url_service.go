package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"snipr-be/internal/cache"
	"snipr-be/internal/entities"
	"snipr-be/internal/models"
	"snipr-be/internal/repository"
)

// URLService defines the interface for URL business logic
type URLService interface {
	Create(req *models.CreateURLRequest, userID string) (*models.URLResponse, error)
	ListByUser(userID string) ([]*models.URLResponse, error)
	Resolve(shortCode string) (string, error)
}

type urlService struct {
	repo       repository.URLRepository
	cache      cache.Cache
	baseURL    string
	defaultTTL time.Duration
	codeLength int
	ctx        context.Context
}

// NewURLService creates a new URL service. cacheClient may be nil, in which
// case every redirect goes straight to the database.
func NewURLService(repo repository.URLRepository, cacheClient cache.Cache, baseURL string, defaultTTL time.Duration, codeLength int) URLService {
	return &urlService{
		repo:       repo,
		cache:      cacheClient,
		baseURL:    baseURL,
		defaultTTL: defaultTTL,
		codeLength: codeLength,
		ctx:        context.Background(),
	}
}

var shortCodeFormat = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Short codes that would shadow API routes
var reservedCodes = map[string]bool{
	"api":    true,
	"auth":   true,
	"health": true,
	"urls":   true,
	"users":  true,
	"qr":     true,
}

// validateCustomShortCode validates a caller-supplied short code
func validateCustomShortCode(shortCode string) error {
	if len(shortCode) < 3 || len(shortCode) > 20 {
		return fmt.Errorf("short code must be between 3 and 20 characters long")
	}
	if !shortCodeFormat.MatchString(shortCode) {
		return fmt.Errorf("short code can only contain letters, numbers, hyphens, and underscores")
	}
	if reservedCodes[strings.ToLower(shortCode)] {
		return fmt.Errorf("short code '%s' is reserved and cannot be used", shortCode)
	}
	return nil
}

// uniqueShortCode samples codes until one is free. There is no retry cap:
// at length 8 over a 62-character alphabet collisions are vanishingly rare,
// and each attempt touches only the existence check, never a lock.
func (s *urlService) uniqueShortCode() (string, error) {
	for {
		code, err := GenerateShortCode(s.codeLength)
		if err != nil {
			return "", err
		}

		exists, err := s.repo.ExistsByShortCode(code)
		if err != nil {
			return "", fmt.Errorf("failed to check short code availability: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
}

// Create creates a new short URL owned by the given user. Expiry defaults
// to creation time plus the configured TTL.
func (s *urlService) Create(req *models.CreateURLRequest, userID string) (*models.URLResponse, error) {
	var shortCode string

	if req.ShortCode != nil && *req.ShortCode != "" {
		customCode := strings.TrimSpace(*req.ShortCode)

		if err := validateCustomShortCode(customCode); err != nil {
			return nil, err
		}

		exists, err := s.repo.ExistsByShortCode(customCode)
		if err != nil {
			return nil, fmt.Errorf("failed to check short code availability: %w", err)
		}
		if exists {
			return nil, ErrCodeTaken
		}

		shortCode = customCode
	} else {
		code, err := s.uniqueShortCode()
		if err != nil {
			return nil, err
		}
		shortCode = code
	}

	expiresAt := time.Now().UTC().Add(s.defaultTTL)

	url, err := s.repo.Create(shortCode, req.OriginalURL, &userID, &expiresAt)
	if err != nil {
		// A concurrent insert can win the code between the pre-check and here
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCodeTaken
		}
		return nil, fmt.Errorf("failed to create URL: %w", err)
	}

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, redirectCacheKey(url.ShortCode), newRedirectEntry(url), time.Hour)
	}

	return s.toResponse(url), nil
}

// redirectEntry is the slice of a URL record the redirect path needs
type redirectEntry struct {
	OriginalURL string     `json:"original_url"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	IsActive    bool       `json:"is_active"`
}

func newRedirectEntry(url *entities.URL) *redirectEntry {
	return &redirectEntry{
		OriginalURL: url.OriginalURL,
		ExpiresAt:   url.ExpiresAt,
		IsActive:    url.IsActive,
	}
}

func redirectCacheKey(shortCode string) string {
	return fmt.Sprintf("url:%s", shortCode)
}

// Resolve returns the original URL for a short code and increments its
// click count. Unknown or inactive codes fail with ErrURLNotFound, expired
// ones with ErrURLExpired without touching the counter.
func (s *urlService) Resolve(shortCode string) (string, error) {
	entry, err := s.lookupRedirect(shortCode)
	if err != nil {
		return "", err
	}

	if !entry.IsActive {
		return "", ErrURLNotFound
	}
	if entry.ExpiresAt != nil && entry.ExpiresAt.Before(time.Now()) {
		return "", ErrURLExpired
	}

	if err := s.repo.IncrementClickCount(shortCode); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Row vanished between lookup and increment
			if s.cache != nil {
				s.cache.Delete(s.ctx, redirectCacheKey(shortCode))
			}
			return "", ErrURLNotFound
		}
		// Don't fail the redirect over a lost click
		log.Printf("Warning: failed to increment click count for %s: %v", shortCode, err)
	}

	return entry.OriginalURL, nil
}

func (s *urlService) lookupRedirect(shortCode string) (*redirectEntry, error) {
	if s.cache != nil {
		var cached redirectEntry
		if err := s.cache.GetJSON(s.ctx, redirectCacheKey(shortCode), &cached); err == nil {
			return &cached, nil
		}
	}

	url, err := s.repo.FindByShortCode(shortCode)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrURLNotFound
	}
	if err != nil {
		return nil, err
	}

	entry := newRedirectEntry(url)
	if s.cache != nil {
		s.cache.SetJSON(s.ctx, redirectCacheKey(shortCode), entry, time.Hour)
	}
	return entry, nil
}

// ListByUser retrieves all URLs belonging to a user, newest first
func (s *urlService) ListByUser(userID string) ([]*models.URLResponse, error) {
	urls, err := s.repo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.URLResponse, len(urls))
	for i, url := range urls {
		responses[i] = s.toResponse(url)
	}
	return responses, nil
}

func (s *urlService) toResponse(url *entities.URL) *models.URLResponse {
	return &models.URLResponse{
		ID:          url.ID,
		OriginalURL: url.OriginalURL,
		ShortCode:   url.ShortCode,
		ShortURL:    fmt.Sprintf("%s/api/v1/urls/%s", s.baseURL, url.ShortCode),
		UserID:      url.UserID,
		CreatedAt:   url.CreatedAt,
		ExpiresAt:   url.ExpiresAt,
		ClickCount:  url.ClickCount,
		IsActive:    url.IsActive,
	}
}
