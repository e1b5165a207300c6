package models

type FoodItem struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"uniqueIndex;not null"`
	Calories      int     `gorm:"not null;default:0"`
	ImageFilename string
	Category      string
	Rating        float64 `gorm:"not null;default:0"`
}

// UserFood is the preference join row: the foods a user has opted into
// for meal planning.
type UserFood struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false"`
	FoodID uint `gorm:"primaryKey;autoIncrement:false"`
}
