package models

// MenuItem is one row of the seeded menu table. Rows are written once by the
// seed migration and only read afterwards.
type MenuItem struct {
	ID          uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string `gorm:"type:text;not null" json:"name"`
	Price       string `gorm:"type:text;not null" json:"price"`
	Description string `gorm:"type:text;not null" json:"description"`
	Image       string `gorm:"type:text;not null" json:"image"`
	Category    string `gorm:"type:text;not null" json:"category"`
}

func (MenuItem) TableName() string {
	return "menu"
}
