package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"snipr-be/internal/entities"
	"snipr-be/internal/repository"
	"snipr-be/internal/service"
	"snipr-be/internal/token"
)

// Context keys set by the gate for downstream handlers
const (
	ContextUser   = "user"
	ContextUserID = "user_id"
	ContextClaims = "claims"
)

// AuthMiddleware is the authentication gate for protected routes: it
// extracts the bearer token, verifies it, checks the blacklist, dispatches
// on token kind, and resolves the embedded identity against the user store.
type AuthMiddleware struct {
	tokens    *token.Service
	blacklist service.BlacklistService
	users     repository.UserRepository
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens *token.Service, blacklist service.BlacklistService, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:    tokens,
		blacklist: blacklist,
		users:     users,
	}
}

// RequireAccessToken gates routes that need a valid access token
func (m *AuthMiddleware) RequireAccessToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.authenticate(c, false)
	}
}

// RequireRefreshToken gates routes that need a valid refresh token
func (m *AuthMiddleware) RequireRefreshToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.authenticate(c, true)
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context, wantRefresh bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		abortUnauthorized(c, "Missing authorization token")
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		abortUnauthorized(c, "Invalid authorization format")
		return
	}
	tokenString := parts[1]

	claims, err := m.tokens.Verify(tokenString)
	if err != nil {
		if errors.Is(err, token.ErrExpiredToken) {
			abortUnauthorized(c, "Token has expired")
			return
		}
		abortUnauthorized(c, "Invalid token")
		return
	}

	revoked, err := m.blacklist.IsRevoked(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to check token status",
		})
		return
	}
	if revoked {
		abortUnauthorized(c, "Token has been revoked")
		return
	}

	if claims.Refresh != wantRefresh {
		if wantRefresh {
			abortUnauthorized(c, "Invalid refresh token. Please provide a valid refresh token")
		} else {
			abortUnauthorized(c, "Invalid access token. Please provide a valid access token")
		}
		return
	}

	user, err := m.users.FindByEmail(claims.User.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortUnauthorized(c, "Invalid credentials")
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load user",
		})
		return
	}

	c.Set(ContextUser, user)
	c.Set(ContextUserID, user.ID)
	c.Set(ContextClaims, claims)
	c.Next()
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": message,
	})
}

// CurrentUser extracts the authenticated user placed in the context by the
// gate.
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entities.User)
	return user, ok
}

// CurrentClaims extracts the verified token claims from the context
func CurrentClaims(c *gin.Context) (*token.Claims, bool) {
	value, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*token.Claims)
	return claims, ok
}
