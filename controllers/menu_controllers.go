package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/little-lemon/assets"
	"github.com/yeremiapane/little-lemon/models"
	"github.com/yeremiapane/little-lemon/services"
	"github.com/yeremiapane/little-lemon/utils"
)

type MenuController struct {
	Menu *services.MenuService
	QR   services.QRGenerator
}

func NewMenuController(menu *services.MenuService, qr services.QRGenerator) *MenuController {
	return &MenuController{Menu: menu, QR: qr}
}

type menuItemResponse struct {
	models.MenuItem
	ImagePath string `json:"image_path,omitempty"`
}

func toMenuResponse(items []models.MenuItem) []menuItemResponse {
	out := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toMenuItemResponse(item))
	}
	return out
}

func toMenuItemResponse(item models.MenuItem) menuItemResponse {
	path, _ := assets.ImagePath(item.Image)
	return menuItemResponse{MenuItem: item, ImagePath: path}
}

// GetMenu -> GET /menu?q=&category=
func (mc *MenuController) GetMenu(c *gin.Context) {
	query := c.Query("q")
	category := c.DefaultQuery("category", services.CategoryAll)

	items := mc.Menu.FilterMenu(c.Request.Context(), query, category)

	utils.RespondJSON(c, http.StatusOK, "List of menu items", toMenuResponse(items))
}

// GetCategories -> GET /menu/categories
func (mc *MenuController) GetCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of categories", services.Categories)
}

// GetMenuByID -> GET /menu/:menu_id
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, ok := parseMenuID(c)
	if !ok {
		return
	}

	item, err := mc.Menu.FindByID(c.Request.Context(), id)
	if err != nil {
		respondMenuError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item detail", toMenuItemResponse(item))
}

// GetMenuQRCode -> GET /menu/:menu_id/qrcode, PNG berisi link share
func (mc *MenuController) GetMenuQRCode(c *gin.Context) {
	id, ok := parseMenuID(c)
	if !ok {
		return
	}

	if _, err := mc.Menu.FindByID(c.Request.Context(), id); err != nil {
		respondMenuError(c, err)
		return
	}

	png, err := mc.QR.Generate(id)
	if err != nil {
		utils.ErrorLogger.Errorf("QR generation failed for menu %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to generate qr code"))
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func parseMenuID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("menu_id"), 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu_id"))
		return 0, false
	}
	return uint(id), true
}

func respondMenuError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrMenuItemNotFound) {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.ErrorLogger.Errorf("Menu lookup failed: %v", err)
	utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to load menu item"))
}
