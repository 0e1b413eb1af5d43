package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/esit/ecommerce-api/internal/repository"
)

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// respondError maps a service error onto an HTTP status: 404 for the given
// not-found sentinel, 409 for constraint violations, 503 for store timeouts,
// 500 otherwise.
func respondError(c *gin.Context, err, notFound error, notFoundMsg string) {
	var integrity *repository.IntegrityError
	switch {
	case errors.Is(err, notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.As(err, &integrity):
		c.JSON(http.StatusConflict, gin.H{"error": integrity.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable, retry later"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
