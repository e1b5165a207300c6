package models

import "time"

// MealDay is one calendar day of a generated plan.
type MealDay struct {
	Lunch  string `json:"lunch"`
	Dinner string `json:"dinner"`
}

// MealPlan holds a user's schedule for one month. Month is a YYYY-MM key;
// at most one row exists per (user, month) pair.
type MealPlan struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_plan_user_month"`
	Month     string    `gorm:"not null;uniqueIndex:uidx_plan_user_month"`
	Days      []MealDay `gorm:"serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
