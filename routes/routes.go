package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"looncamp-backend/controllers"
	"looncamp-backend/middleware"
	"looncamp-backend/utils"
)

// Options carries everything the router wires together.
type Options struct {
	Auth       *controllers.AuthController
	Properties *controllers.PropertyController
	Settings   *controllers.SettingsController
	Uploads    *controllers.UploadController

	Authenticator middleware.Authenticator
	Redis         *redis.Client
	LoginLimit    int64

	CORSOrigins []string
	UploadDir   string // served at /uploads when set
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "LoonCamp API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// SetupRouter registers the API under /api.
func SetupRouter(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.CustomRecovery(func(c *gin.Context, _ any) {
		utils.AbortJSONError(c, http.StatusInternalServerError, "Internal server error")
	}))

	if opts.UploadDir != "" {
		r.Static("/uploads", opts.UploadDir)
	}

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", health)

	requireAdmin := middleware.RequireAdmin(opts.Authenticator)

	api := r.Group("/api")
	{
		api.GET("/health", health)

		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimiter(opts.Redis, "login", opts.LoginLimit, time.Minute), opts.Auth.Login)
			auth.POST("/logout", opts.Auth.Logout)
			auth.GET("/verify", requireAdmin, opts.Auth.Verify)
		}

		properties := api.Group("/properties")
		{
			// public
			properties.GET("/public-list", opts.Properties.PublicList)
			properties.GET("/public/:slug", opts.Properties.GetPublicBySlug)

			admin := properties.Group("", requireAdmin)
			admin.GET("/list", opts.Properties.List)
			admin.GET("/settings/categories", opts.Settings.GetCategorySettings)
			admin.PUT("/settings/categories/:category", opts.Settings.UpdateCategorySettings)
			admin.GET("/:id", opts.Properties.GetByID)
			admin.POST("/create", opts.Properties.Create)
			admin.PUT("/update/:id", opts.Properties.Update)
			admin.DELETE("/delete/:id", opts.Properties.Delete)
			admin.PATCH("/toggle-status/:id", opts.Properties.ToggleStatus)
			admin.POST("/upload-image", opts.Uploads.UploadImage)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			utils.JSONError(c, http.StatusNotFound, "API endpoint not found")
			return
		}
		utils.JSONError(c, http.StatusNotFound, "Not found")
	})

	return r
}
