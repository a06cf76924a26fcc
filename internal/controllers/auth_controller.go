package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"snipr-be/internal/middleware"
	"snipr-be/internal/models"
	"snipr-be/internal/service"
	"snipr-be/internal/token"
)

type AuthController struct {
	authService service.AuthService
	blacklist   service.BlacklistService
	tokens      *token.Service
}

func NewAuthController(authService service.AuthService, blacklist service.BlacklistService, tokens *token.Service) *AuthController {
	return &AuthController{
		authService: authService,
		blacklist:   blacklist,
		tokens:      tokens,
	}
}

// Signup handles POST /api/v1/auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := ac.authService.Signup(&req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "User already exists!",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	// entities.User never serializes the password hash
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/v1/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := ac.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout handles POST /api/v1/auth/logout?token=...
//
// The blacklist purge runs as a detached goroutine: it is not awaited by
// the request and its failure never reaches the caller.
func (ac *AuthController) Logout(c *gin.Context) {
	tokenString := c.Query("token")

	if err := ac.blacklist.Revoke(tokenString); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid Token",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	go func() {
		if _, err := ac.blacklist.PurgeExpired(); err != nil {
			log.Printf("Warning: blacklist purge failed: %v", err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully!",
	})
}

// NewAccessToken handles GET /api/v1/auth/access_token (refresh token gated)
func (ac *AuthController) NewAccessToken(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok || claims.ExpiresAt == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid refresh token",
		})
		return
	}

	if !claims.ExpiresAt.Time.After(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid refresh token",
		})
		return
	}

	accessToken, err := ac.tokens.IssueAccessToken(claims.User)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to issue access token",
		})
		return
	}

	c.JSON(http.StatusOK, models.AccessTokenResponse{
		AccessToken: accessToken,
	})
}

// Me handles GET /api/v1/auth/me (access token gated)
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}
