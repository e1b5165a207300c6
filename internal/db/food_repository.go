package db

import (
	"github.com/terraincognita07/foodt/internal/models"
	"gorm.io/gorm"
)

type FoodRepository struct {
	database *gorm.DB
}

func NewFoodRepository(database *gorm.DB) *FoodRepository {
	return &FoodRepository{database: database}
}

func (repo *FoodRepository) ListOrderedByName() ([]models.FoodItem, error) {
	items := make([]models.FoodItem, 0)
	if err := repo.database.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *FoodRepository) FindByID(foodID uint) (models.FoodItem, bool, error) {
	var item models.FoodItem
	result := repo.database.Limit(1).Find(&item, foodID)
	if result.Error != nil {
		return models.FoodItem{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.FoodItem{}, false, nil
	}
	return item, true, nil
}

func (repo *FoodRepository) ExistsByName(name string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.FoodItem{}).
		Where("name = ?", name).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// ExistsByNameExcluding reports a name collision with any item other than
// excludeID. Used by edits so an item can keep its own name.
func (repo *FoodRepository) ExistsByNameExcluding(name string, excludeID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.FoodItem{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *FoodRepository) Create(item *models.FoodItem) error {
	return repo.database.Create(item).Error
}

func (repo *FoodRepository) Save(item *models.FoodItem) error {
	return repo.database.Save(item).Error
}

func (repo *FoodRepository) UpdateRating(foodID uint, rating float64) error {
	return repo.database.Model(&models.FoodItem{}).Where("id = ?", foodID).
		Update("rating", rating).Error
}

// DeleteWithDependents removes the item together with its comments and
// preference rows in one transaction.
func (repo *FoodRepository) DeleteWithDependents(foodID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", foodID).Delete(&models.FoodComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("food_id = ?", foodID).Delete(&models.UserFood{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.FoodItem{}, foodID).Error
	})
}
