package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"snipr-be/internal/middleware"
	"snipr-be/internal/models"
	"snipr-be/internal/service"
)

type ShortenerController struct {
	urlService service.URLService
}

func NewShortenerController(urlService service.URLService) *ShortenerController {
	return &ShortenerController{
		urlService: urlService,
	}
}

// CreateShortURL handles POST /api/v1/urls (access token required)
func (sc *ShortenerController) CreateShortURL(c *gin.Context) {
	var req models.CreateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	response, err := sc.urlService.Create(&req, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrCodeTaken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Shortcode already exists. Please choose another or autogenerate.",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetUserURLs handles GET /api/v1/urls - the caller's URLs, newest first
func (sc *ShortenerController) GetUserURLs(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	urls, err := sc.urlService.ListByUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, urls)
}

// RedirectToURL handles GET /api/v1/urls/:shortCode - redirects to the
// original URL and counts the click
func (sc *ShortenerController) RedirectToURL(c *gin.Context) {
	shortCode := c.Param("shortCode")

	originalURL, err := sc.urlService.Resolve(shortCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrURLNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Shortcode does not exist or no longer active.",
			})
		case errors.Is(err, service.ErrURLExpired):
			c.JSON(http.StatusGone, gin.H{
				"error": "URL expired.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
			})
		}
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, originalURL)
}
