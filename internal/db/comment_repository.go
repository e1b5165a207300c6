package db

import (
	"time"

	"github.com/terraincognita07/foodt/internal/models"
	"gorm.io/gorm"
)

type CommentRepository struct {
	database *gorm.DB
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{database: database}
}

// CommentWithAuthor is a comment row joined with its author's username for
// the food detail page.
type CommentWithAuthor struct {
	ID        uint
	Content   string
	Rating    *float64
	CreatedAt time.Time
	Username  string
}

func (repo *CommentRepository) ListWithAuthorsByFood(foodID uint) ([]CommentWithAuthor, error) {
	comments := make([]CommentWithAuthor, 0)
	if err := repo.database.Model(&models.FoodComment{}).
		Select("food_comments.id, food_comments.content, food_comments.rating, food_comments.created_at, users.username").
		Joins("LEFT JOIN users ON users.id = food_comments.user_id").
		Where("food_comments.food_id = ?", foodID).
		Order("food_comments.created_at DESC, food_comments.id DESC").
		Scan(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (repo *CommentRepository) ListByFoodNewestFirst(foodID uint) ([]models.FoodComment, error) {
	comments := make([]models.FoodComment, 0)
	if err := repo.database.
		Where("food_id = ?", foodID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (repo *CommentRepository) ListRatingsByFood(foodID uint) ([]float64, error) {
	values := make([]float64, 0)
	if err := repo.database.Model(&models.FoodComment{}).
		Where("food_id = ? AND rating IS NOT NULL", foodID).
		Pluck("rating", &values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

func (repo *CommentRepository) Create(comment *models.FoodComment) error {
	return repo.database.Create(comment).Error
}
