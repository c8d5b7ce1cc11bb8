package controllers

import (
	"net/http"

	"looncamp-backend/services"
	"looncamp-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Categories *services.CategoryService
}

func NewSettingsController(svc *services.CategoryService) *SettingsController {
	return &SettingsController{Categories: svc}
}

// GET /api/properties/settings/categories
func (sc *SettingsController) GetCategorySettings(c *gin.Context) {
	settings, err := sc.Categories.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch settings.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, settings)
}

// PUT /api/properties/settings/categories/:category
func (sc *SettingsController) UpdateCategorySettings(c *gin.Context) {
	var payload services.CategorySettingsInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}

	setting, err := sc.Categories.Update(c.Request.Context(), c.Param("category"), payload)
	if err != nil {
		respondError(c, err, "Failed to update settings.")
		return
	}
	utils.JSONSuccessMessage(c, http.StatusOK, "Settings updated successfully.", setting)
}
