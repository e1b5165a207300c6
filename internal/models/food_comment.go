package models

import "time"

type FoodComment struct {
	ID        uint   `gorm:"primaryKey"`
	FoodID    uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Content   string `gorm:"not null"`
	Rating    *float64
	CreatedAt time.Time `gorm:"not null"`
}
