package controllers

import (
	"net/http"

	"looncamp-backend/services"
	"looncamp-backend/utils"

	"github.com/gin-gonic/gin"
)

type togglePayload struct {
	Field string `json:"field"`
	Value *bool  `json:"value"`
}

type PropertyController struct {
	Properties *services.PropertyService
}

func NewPropertyController(svc *services.PropertyService) *PropertyController {
	return &PropertyController{Properties: svc}
}

// GET /api/properties/list
func (pc *PropertyController) List(c *gin.Context) {
	properties, err := pc.Properties.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch properties.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, properties)
}

// GET /api/properties/public-list
func (pc *PropertyController) PublicList(c *gin.Context) {
	listing, err := pc.Properties.ListPublic(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch properties.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"data":             listing.Properties,
		"categorySettings": listing.CategorySettings,
	})
}

// GET /api/properties/:id
func (pc *PropertyController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	property, err := pc.Properties.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch property.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

// GET /api/properties/public/:slug
func (pc *PropertyController) GetPublicBySlug(c *gin.Context) {
	property, err := pc.Properties.GetPublicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to fetch property.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

// POST /api/properties/create
func (pc *PropertyController) Create(c *gin.Context) {
	var input services.PropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	created, err := pc.Properties.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Failed to create property.")
		return
	}
	utils.JSONSuccessMessage(c, http.StatusCreated, "Property created successfully.", created)
}

// PUT /api/properties/update/:id
func (pc *PropertyController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch services.PropertyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		bindError(c, err)
		return
	}

	if err := pc.Properties.Update(c.Request.Context(), id, patch); err != nil {
		respondError(c, err, "Failed to update property.")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Property updated successfully.")
}

// DELETE /api/properties/delete/:id
func (pc *PropertyController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := pc.Properties.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete property.")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Property deleted successfully.")
}

// PATCH /api/properties/toggle-status/:id
func (pc *PropertyController) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload togglePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	if payload.Field == "" || payload.Value == nil {
		utils.JSONError(c, http.StatusBadRequest, "Field and value are required.")
		return
	}

	if err := pc.Properties.ToggleField(c.Request.Context(), id, payload.Field, *payload.Value); err != nil {
		respondError(c, err, "Failed to update property status.")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Property status updated successfully.")
}
