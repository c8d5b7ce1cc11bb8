package controllers

import (
	"net/http"

	"looncamp-backend/services"
	"looncamp-backend/utils"

	"github.com/gin-gonic/gin"
)

// multipart overhead allowed on top of the file size ceiling
const multipartSlack = 1 << 20

type UploadController struct {
	Images *services.ImageService
}

func NewUploadController(svc *services.ImageService) *UploadController {
	return &UploadController{Images: svc}
}

// POST /api/properties/upload-image (multipart field "image")
func (uc *UploadController) UploadImage(c *gin.Context) {
	if uc.Images.MaxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, uc.Images.MaxBytes+multipartSlack)
	}

	header, err := c.FormFile("image")
	if err != nil {
		if services.IsUploadTooLarge(err) {
			utils.JSONError(c, http.StatusBadRequest, uploadTooLargeMessage(uc.Images.MaxBytes))
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	url, err := uc.Images.Upload(c.Request.Context(), header)
	if err != nil {
		if services.IsUploadTooLarge(err) {
			utils.JSONError(c, http.StatusBadRequest, uploadTooLargeMessage(uc.Images.MaxBytes))
			return
		}
		respondError(c, err, "Upload failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": url, "data": gin.H{"url": url}})
}
