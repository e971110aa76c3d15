package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeremiapane/little-lemon/live"
	"github.com/yeremiapane/little-lemon/models"
	"github.com/yeremiapane/little-lemon/services"
	"github.com/yeremiapane/little-lemon/utils"
)

var (
	errInvalidOnboarding = errors.New("Invalid Input: Please check your name (letters only) and email.")
	errInvalidName       = errors.New("Invalid Name: Letters only, please.")
	errInvalidEmail      = errors.New("Invalid Email: Check your email format.")
	errSaveFailed        = errors.New("Failed to save data.")
	errLoadFailed        = errors.New("Failed to load profile.")
	errUnsupportedImage  = errors.New("Unsupported image type: use jpg, jpeg, png, gif or webp.")
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type ProfileController struct {
	Profiles  *services.ProfileService
	Hub       *live.Hub
	UploadDir string
}

func NewProfileController(profiles *services.ProfileService, hub *live.Hub, uploadDir string) *ProfileController {
	return &ProfileController{Profiles: profiles, Hub: hub, UploadDir: uploadDir}
}

type profileResponse struct {
	models.UserProfile
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	Initials        string `json:"initials"`
}

// uploadsRoute is where router serves UploadDir.
const uploadsRoute = "/uploads/"

func (pc *ProfileController) toProfileResponse(p models.UserProfile) profileResponse {
	resp := profileResponse{UserProfile: p, Initials: p.Initials()}
	if p.HasImage() {
		resp.ProfileImageURL = pc.imageURL(*p.ProfileImage)
	}
	return resp
}

// imageURL maps a stored avatar path to the URL served under /uploads.
// References outside UploadDir have no URL.
func (pc *ProfileController) imageURL(ref string) string {
	rel, ok := pc.uploadRel(ref)
	if !ok {
		return ""
	}
	return uploadsRoute + filepath.ToSlash(rel)
}

func (pc *ProfileController) uploadRel(ref string) (string, bool) {
	rel, err := filepath.Rel(pc.UploadDir, ref)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return rel, true
}

// GetOnboardingStatus -> GET /onboarding
func (pc *ProfileController) GetOnboardingStatus(c *gin.Context) {
	onboarded, err := pc.Profiles.IsOnboarded(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.Errorf("Failed to load onboarding status: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errLoadFailed)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Onboarding status", gin.H{"onboarded": onboarded})
}

// CompleteOnboarding -> POST /onboarding
func (pc *ProfileController) CompleteOnboarding(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name" binding:"required"`
		Email     string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errInvalidOnboarding)
		return
	}

	err := pc.Profiles.CompleteOnboarding(c.Request.Context(), req.FirstName, req.Email)
	if errors.Is(err, services.ErrInvalidName) || errors.Is(err, services.ErrInvalidEmail) {
		utils.RespondError(c, http.StatusBadRequest, errInvalidOnboarding)
		return
	}
	if err != nil {
		utils.ErrorLogger.Errorf("Failed to save onboarding status: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errSaveFailed)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Onboarding completed", gin.H{"onboarded": true})
}

// GetProfile -> GET /profile
func (pc *ProfileController) GetProfile(c *gin.Context) {
	profile, err := pc.Profiles.Load(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.Errorf("Failed to load profile data: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errLoadFailed)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile", pc.toProfileResponse(profile))
}

// UpdateProfile -> PUT /profile. Gambar profil tidak diubah di sini, lihat
// UploadProfileImage dan DeleteProfileImage.
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var req struct {
		FirstName       string `json:"first_name"`
		Email           string `json:"email"`
		PhoneNumber     string `json:"phone_number"`
		EmailNewsletter bool   `json:"email_newsletter"`
		DiscountOffers  bool   `json:"discount_offers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	current, err := pc.Profiles.Load(ctx)
	if err != nil {
		utils.ErrorLogger.Errorf("Failed to load profile data: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errSaveFailed)
		return
	}

	current.FirstName = req.FirstName
	current.Email = req.Email
	current.PhoneNumber = req.PhoneNumber
	current.EmailNewsletter = req.EmailNewsletter
	current.DiscountOffers = req.DiscountOffers

	if err := pc.Profiles.Save(ctx, current); err != nil {
		pc.respondSaveError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile saved successfully!", pc.toProfileResponse(current))
}

// UploadProfileImage -> POST /profile/image (multipart field "image")
func (pc *ProfileController) UploadProfileImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("image file is required"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		utils.RespondError(c, http.StatusBadRequest, errUnsupportedImage)
		return
	}

	if err := os.MkdirAll(pc.UploadDir, 0755); err != nil {
		utils.ErrorLogger.Errorf("Error creating upload directory: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errSaveFailed)
		return
	}

	dst := filepath.Join(pc.UploadDir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.ErrorLogger.Errorf("Error saving image: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errSaveFailed)
		return
	}

	ctx := c.Request.Context()
	previous, err := pc.Profiles.Load(ctx)
	if err != nil {
		utils.ErrorLogger.Warnf("Could not load previous avatar, old file is kept: %v", err)
	}
	if err := pc.Profiles.SetProfileImage(ctx, dst); err != nil {
		os.Remove(dst)
		utils.ErrorLogger.Errorf("Failed to store image reference: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errSaveFailed)
		return
	}
	if previous.HasImage() {
		pc.removeUpload(*previous.ProfileImage)
	}

	utils.RespondJSON(c, http.StatusCreated, "Profile image updated", gin.H{
		"profile_image":     dst,
		"profile_image_url": pc.imageURL(dst),
	})
}

// DeleteProfileImage -> DELETE /profile/image
func (pc *ProfileController) DeleteProfileImage(c *gin.Context) {
	ctx := c.Request.Context()
	profile, err := pc.Profiles.Load(ctx)
	if err != nil {
		utils.ErrorLogger.Errorf("Failed to load profile data: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errSaveFailed)
		return
	}

	if err := pc.Profiles.RemoveProfileImage(ctx); err != nil {
		utils.ErrorLogger.Errorf("Failed to remove image reference: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errSaveFailed)
		return
	}
	if profile.HasImage() {
		pc.removeUpload(*profile.ProfileImage)
	}

	utils.RespondJSON(c, http.StatusOK, "Profile image removed", gin.H{"initials": profile.Initials()})
}

// Logout -> POST /logout
func (pc *ProfileController) Logout(c *gin.Context) {
	if err := pc.Profiles.Logout(c.Request.Context()); err != nil {
		utils.ErrorLogger.Errorf("Failed to log out: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Failed to log out."))
		return
	}

	pc.Hub.BroadcastSessionReset()
	utils.RespondJSON(c, http.StatusOK, "Logged out successfully", gin.H{"onboarded": false})
}

func (pc *ProfileController) respondSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidName):
		utils.RespondError(c, http.StatusBadRequest, errInvalidName)
	case errors.Is(err, services.ErrInvalidEmail):
		utils.RespondError(c, http.StatusBadRequest, errInvalidEmail)
	default:
		utils.ErrorLogger.Errorf("Failed to save profile data: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errSaveFailed)
	}
}

// removeUpload deletes a previously uploaded avatar. References outside the
// upload directory are left alone.
func (pc *ProfileController) removeUpload(ref string) {
	if _, ok := pc.uploadRel(ref); !ok {
		return
	}
	if err := os.Remove(ref); err != nil && !os.IsNotExist(err) {
		utils.ErrorLogger.Warnf("Could not remove old avatar %s: %v", ref, err)
	}
}
