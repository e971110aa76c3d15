package models

import "time"

// KeyValue stores one profile entry as a string pair.
type KeyValue struct {
	Key       string    `gorm:"column:item_key;primaryKey;type:text"`
	Value     string    `gorm:"column:item_value;type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (KeyValue) TableName() string {
	return "profile_kv"
}
