package db

import (
	"github.com/terraincognita07/foodt/internal/models"
	"gorm.io/gorm"
)

type PreferenceRepository struct {
	database *gorm.DB
}

func NewPreferenceRepository(database *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{database: database}
}

func (repo *PreferenceRepository) ListFoodIDsByUser(userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	if err := repo.database.Model(&models.UserFood{}).
		Where("user_id = ?", userID).
		Order("food_id ASC").
		Pluck("food_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (repo *PreferenceRepository) ListPreferredFoods(userID uint) ([]models.FoodItem, error) {
	items := make([]models.FoodItem, 0)
	if err := repo.database.Model(&models.FoodItem{}).
		Joins("JOIN user_foods ON user_foods.food_id = food_items.id").
		Where("user_foods.user_id = ?", userID).
		Order("food_items.id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceAll swaps the user's preference set wholesale. Only ids of existing
// foods are written; an empty set clears the preferences.
func (repo *PreferenceRepository) ReplaceAll(userID uint, foodIDs []uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserFood{}).Error; err != nil {
			return err
		}
		if len(foodIDs) == 0 {
			return nil
		}

		validIDs := make([]uint, 0, len(foodIDs))
		if err := tx.Model(&models.FoodItem{}).
			Where("id IN ?", foodIDs).
			Order("id ASC").
			Pluck("id", &validIDs).Error; err != nil {
			return err
		}

		rows := make([]models.UserFood, 0, len(validIDs))
		for _, foodID := range validIDs {
			rows = append(rows, models.UserFood{UserID: userID, FoodID: foodID})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
