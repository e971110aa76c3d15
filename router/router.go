package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/little-lemon/controllers"
	"github.com/yeremiapane/little-lemon/live"
	"github.com/yeremiapane/little-lemon/middlewares"
	"github.com/yeremiapane/little-lemon/services"
)

// Dependencies are the handles shared by every controller. They are built
// once in main and passed in here.
type Dependencies struct {
	Menu           *services.MenuService
	Profiles       *services.ProfileService
	Hub            *live.Hub
	QR             services.QRGenerator
	UploadDir      string
	AllowedOrigin  string
	SearchDebounce time.Duration
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Hanya izinkan akses file gambar di /uploads
	r.Use(func(c *gin.Context) {
		path := strings.ToLower(c.Request.URL.Path)
		if strings.HasPrefix(path, "/uploads/") && !hasImageExtension(path) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	})

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(deps.AllowedOrigin))
	r.Use(middlewares.LoggerMiddleware())

	r.Static("/uploads", deps.UploadDir)

	menuCtrl := controllers.NewMenuController(deps.Menu, deps.QR)
	profileCtrl := controllers.NewProfileController(deps.Profiles, deps.Hub, deps.UploadDir)
	searchCtrl := controllers.NewSearchController(deps.Menu, deps.Hub, deps.SearchDebounce)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/onboarding", profileCtrl.GetOnboardingStatus)
	r.POST("/onboarding", profileCtrl.CompleteOnboarding)

	// ----------------------------------------------------------------
	//                      ONBOARDED ROUTES
	// ----------------------------------------------------------------
	app := r.Group("/")
	app.Use(middlewares.RequireOnboarded(deps.Profiles))

	// MENU
	app.GET("/menu", menuCtrl.GetMenu)
	app.GET("/menu/categories", menuCtrl.GetCategories)
	app.GET("/menu/:menu_id", menuCtrl.GetMenuByID)
	app.GET("/menu/:menu_id/qrcode", menuCtrl.GetMenuQRCode)

	// PROFILE
	app.GET("/profile", profileCtrl.GetProfile)
	app.PUT("/profile", profileCtrl.UpdateProfile)
	app.POST("/profile/image", profileCtrl.UploadProfileImage)
	app.DELETE("/profile/image", profileCtrl.DeleteProfileImage)
	app.POST("/logout", profileCtrl.Logout)

	// Live search
	app.GET("/ws/search", searchCtrl.SearchSocket)

	return r
}

func hasImageExtension(path string) bool {
	for _, ext := range imageExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
