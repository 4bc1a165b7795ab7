// Package handlers contains the gin HTTP handlers for the API.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smerla/milkbook/internal/auth"
	"github.com/smerla/milkbook/internal/models"
)

// respondError maps service errors onto HTTP statuses: validation failures
// are 400 (409 for duplicate farmer ids), missing records 404, auth
// failures 401, everything else 500.
func respondError(c *gin.Context, err error) {
	c.Error(err)

	switch {
	case errors.Is(err, models.ErrDuplicateFarmerID):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case models.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case strings.Contains(err.Error(), "not found"):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}
