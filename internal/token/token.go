package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrExpiredToken      = errors.New("token has expired")
	ErrMalformedToken    = errors.New("malformed token")
	ErrTokenKindMismatch = errors.New("token kind mismatch")
)

// Identity is the snapshot of a user embedded in every token.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Claims is the payload carried by both access and refresh tokens. The
// Refresh flag is the only thing that distinguishes the two kinds; callers
// dispatch on it explicitly rather than through separate claim types.
type Claims struct {
	User    Identity `json:"user"`
	Refresh bool     `json:"refresh"`
	jwt.RegisteredClaims
}

// Service issues and verifies signed tokens. It is a pure function of its
// inputs and the process-wide signing secret; safe for concurrent use.
type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(secret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccessToken signs a short-lived access token for the given identity.
func (s *Service) IssueAccessToken(identity Identity) (string, error) {
	return s.issue(identity, false, s.accessTTL)
}

// IssueRefreshToken signs a refresh token for the given identity.
func (s *Service) IssueRefreshToken(identity Identity) (string, error) {
	return s.issue(identity, true, s.refreshTTL)
}

func (s *Service) issue(identity Identity, refresh bool, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		User:    identity,
		Refresh: refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates the signature and expiry of a token and returns its
// claims. A token without a JTI is treated as malformed.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrMalformedToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrMalformedToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.ID == "" {
		return nil, ErrMalformedToken
	}

	return claims, nil
}

// Decode extracts claims without validating the signature or expiry. Used
// when revoking: an already-expired token can still be blacklisted, only a
// structurally broken one cannot.
func (s *Service) Decode(tokenString string) (*Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(tokenString, &Claims{})
	if err != nil {
		return nil, ErrMalformedToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrMalformedToken
	}

	return claims, nil
}
