package db

import (
	"github.com/terraincognita07/foodt/internal/models"
	"gorm.io/gorm"
)

type PlanRepository struct {
	database *gorm.DB
}

func NewPlanRepository(database *gorm.DB) *PlanRepository {
	return &PlanRepository{database: database}
}

func (repo *PlanRepository) FindByUserAndMonth(userID uint, month string) (models.MealPlan, bool, error) {
	var plan models.MealPlan
	result := repo.database.
		Where("user_id = ? AND month = ?", userID, month).
		Limit(1).
		Find(&plan)
	if result.Error != nil {
		return models.MealPlan{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MealPlan{}, false, nil
	}
	return plan, true, nil
}

// Upsert overwrites the stored day list for the (user, month) key, creating
// the row on first generation.
func (repo *PlanRepository) Upsert(userID uint, month string, days []models.MealDay) (models.MealPlan, error) {
	var plan models.MealPlan
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND month = ?", userID, month).Limit(1).Find(&plan)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			plan = models.MealPlan{UserID: userID, Month: month, Days: days}
			return tx.Create(&plan).Error
		}
		plan.Days = days
		return tx.Save(&plan).Error
	})
	if err != nil {
		return models.MealPlan{}, err
	}
	return plan, nil
}

func (repo *PlanRepository) CountByUserAndMonth(userID uint, month string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.MealPlan{}).
		Where("user_id = ? AND month = ?", userID, month).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
