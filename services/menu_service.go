package services

import (
	"context"
	"errors"

	"github.com/yeremiapane/little-lemon/models"
	"github.com/yeremiapane/little-lemon/utils"
	"gorm.io/gorm"
)

// CategoryAll turns the category filter off.
const CategoryAll = "All"

// Categories is the filter bar order shown to the user.
var Categories = []string{CategoryAll, "Starters", "Mains", "Desserts"}

var ErrMenuItemNotFound = errors.New("menu item not found")

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

// FilterMenu returns rows whose name contains query (SQLite LIKE, so ASCII
// case-insensitive) and, unless category is CategoryAll, whose category equals
// category. Rows come back in table order. A failed query is logged and
// yields an empty slice.
func (s *MenuService) FilterMenu(ctx context.Context, query, category string) []models.MenuItem {
	tx := s.DB.WithContext(ctx).Where("name LIKE ?", "%"+query+"%")
	if category != CategoryAll {
		tx = tx.Where("category = ?", category)
	}

	var items []models.MenuItem
	if err := tx.Find(&items).Error; err != nil {
		if ctx.Err() != nil {
			utils.InfoLogger.Debugf("Filter cancelled (query=%q category=%q): %v", query, category, err)
		} else {
			utils.ErrorLogger.Errorf("Filter error (query=%q category=%q): %v", query, category, err)
		}
		return []models.MenuItem{}
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return items
}

func (s *MenuService) FindByID(ctx context.Context, id uint) (models.MenuItem, error) {
	var item models.MenuItem
	err := s.DB.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, ErrMenuItemNotFound
	}
	return item, err
}
