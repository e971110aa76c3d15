package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/little-lemon/services"
	"github.com/yeremiapane/little-lemon/utils"
)

var ErrOnboardingRequired = errors.New("onboarding required")

// RequireOnboarded blocks the menu and profile screens until onboarding has
// been completed.
func RequireOnboarded(profiles *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		onboarded, err := profiles.IsOnboarded(c.Request.Context())
		if err != nil {
			utils.ErrorLogger.Errorf("Failed to load onboarding status: %v", err)
			utils.AbortWithError(c, http.StatusInternalServerError, errors.New("failed to load onboarding status"))
			return
		}
		if !onboarded {
			utils.AbortWithError(c, http.StatusForbidden, ErrOnboardingRequired)
			return
		}
		c.Next()
	}
}
