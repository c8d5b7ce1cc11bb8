package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"looncamp-backend/services"
	"looncamp-backend/utils"

	"github.com/gin-gonic/gin"
)

// uploadTooLargeMessage names the configured ceiling, e.g. "max 50MB".
func uploadTooLargeMessage(maxBytes int64) string {
	limit := "the allowed size"
	switch {
	case maxBytes <= 0:
	case maxBytes%(1<<20) == 0:
		limit = fmt.Sprintf("%dMB", maxBytes>>20)
	case maxBytes%(1<<10) == 0:
		limit = fmt.Sprintf("%dKB", maxBytes>>10)
	default:
		limit = fmt.Sprintf("%d bytes", maxBytes)
	}
	return "Image file size is too large (max " + limit + "). Please compress the image or use a smaller file."
}

// respondError maps a service error onto the JSON error envelope. Internal
// errors are logged in full and reported with the generic fallback.
func respondError(c *gin.Context, err error, fallback string) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, services.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password.")
	case errors.Is(err, services.ErrUnauthorized):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token.")
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, fallbackNotFound(c))
	case errors.Is(err, services.ErrDuplicateTitle):
		utils.JSONError(c, http.StatusBadRequest, "Property with this title already exists.")
	case services.IsUploadTooLarge(err):
		utils.JSONError(c, http.StatusBadRequest, uploadTooLargeMessage(0))
	default:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusInternalServerError, fallback)
	}
}

func fallbackNotFound(c *gin.Context) string {
	if c.Param("category") != "" {
		return "Category not found."
	}
	return "Property not found."
}

// bindError reports a malformed body, keeping validation messages raised
// while decoding list fields.
func bindError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONError(c, http.StatusBadRequest, vErr.Message)
		return
	}
	utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
}

// parseID reads a positive numeric :id. A malformed id cannot match a row.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusNotFound, "Property not found.")
		return 0, false
	}
	return uint(id), true
}
