package services

import (
	"log"
	"mime/multipart"
	"strings"

	"github.com/terraincognita07/foodt/internal/models"
)

type CatalogFoodRepository interface {
	ListOrderedByName() ([]models.FoodItem, error)
	FindByID(foodID uint) (models.FoodItem, bool, error)
	ExistsByName(name string) (bool, error)
	ExistsByNameExcluding(name string, excludeID uint) (bool, error)
	Create(item *models.FoodItem) error
	Save(item *models.FoodItem) error
	UpdateRating(foodID uint, rating float64) error
	DeleteWithDependents(foodID uint) error
}

type CatalogCommentRepository interface {
	ListRatingsByFood(foodID uint) ([]float64, error)
	Create(comment *models.FoodComment) error
}

type CatalogPreferenceRepository interface {
	ListFoodIDsByUser(userID uint) ([]uint, error)
	ReplaceAll(userID uint, foodIDs []uint) error
}

type AddFoodInput struct {
	Name     string
	Category string
	Rating   float64
	Image    *multipart.FileHeader
}

type EditFoodInput struct {
	Name     string
	Calories int
	Category string
	Rating   *float64
	Image    *multipart.FileHeader
}

type CatalogService struct {
	foods       CatalogFoodRepository
	comments    CatalogCommentRepository
	preferences CatalogPreferenceRepository
	images      *ImageStore
}

func NewCatalogService(
	foods CatalogFoodRepository,
	comments CatalogCommentRepository,
	preferences CatalogPreferenceRepository,
	images *ImageStore,
) *CatalogService {
	return &CatalogService{
		foods:       foods,
		comments:    comments,
		preferences: preferences,
		images:      images,
	}
}

func (service *CatalogService) ListItems() ([]models.FoodItem, error) {
	return service.foods.ListOrderedByName()
}

func (service *CatalogService) GetItem(foodID uint) (models.FoodItem, error) {
	item, found, err := service.foods.FindByID(foodID)
	if err != nil {
		return models.FoodItem{}, err
	}
	if !found {
		return models.FoodItem{}, ErrNotFound
	}
	return item, nil
}

// AddItem creates a catalog entry with calories at zero. A blank name or a
// case-sensitive collision both fail with ErrDuplicateName, matching the
// single rejection path of the add form. An image save failure loses only
// the image; the item is still created.
func (service *CatalogService) AddItem(input AddFoodInput) (models.FoodItem, []string, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.FoodItem{}, nil, ErrDuplicateName
	}
	exists, err := service.foods.ExistsByName(name)
	if err != nil {
		return models.FoodItem{}, nil, err
	}
	if exists {
		return models.FoodItem{}, nil, ErrDuplicateName
	}

	warnings := make([]string, 0, 1)
	filename := ""
	if input.Image != nil && input.Image.Filename != "" {
		filename, err = service.images.Save(input.Image)
		if err != nil {
			log.Printf("save image file: %v", err)
			warnings = append(warnings, "Error saving image file.")
			filename = ""
		}
	}

	item := models.FoodItem{
		Name:          name,
		Category:      strings.TrimSpace(input.Category),
		Rating:        input.Rating,
		ImageFilename: filename,
	}
	if err := service.foods.Create(&item); err != nil {
		return models.FoodItem{}, warnings, ErrDuplicateName
	}
	return item, warnings, nil
}

// EditItem updates attributes of an existing entry. A replaced image deletes
// the previous file; failures there are reported as warnings, never aborting
// the edit.
func (service *CatalogService) EditItem(foodID uint, input EditFoodInput) (models.FoodItem, []string, error) {
	item, found, err := service.foods.FindByID(foodID)
	if err != nil {
		return models.FoodItem{}, nil, err
	}
	if !found {
		return models.FoodItem{}, nil, ErrNotFound
	}

	if input.Calories < 0 {
		return models.FoodItem{}, nil, ErrInvalidInput
	}

	name := strings.TrimSpace(input.Name)
	if name != "" && name != item.Name {
		taken, err := service.foods.ExistsByNameExcluding(name, item.ID)
		if err != nil {
			return models.FoodItem{}, nil, err
		}
		if taken {
			return models.FoodItem{}, nil, ErrDuplicateName
		}
		item.Name = name
	}

	item.Calories = input.Calories
	item.Category = strings.TrimSpace(input.Category)
	if input.Rating != nil {
		item.Rating = *input.Rating
	}

	warnings := make([]string, 0, 2)
	if input.Image != nil && input.Image.Filename != "" {
		filename, err := service.images.Save(input.Image)
		if err != nil {
			log.Printf("save image file: %v", err)
			warnings = append(warnings, "Error saving image file.")
		} else {
			if item.ImageFilename != "" && item.ImageFilename != filename {
				if err := service.images.Remove(item.ImageFilename); err != nil {
					log.Printf("delete old image file: %v", err)
					warnings = append(warnings, "Error deleting old image file.")
				}
			}
			item.ImageFilename = filename
		}
	}

	if err := service.foods.Save(&item); err != nil {
		return models.FoodItem{}, warnings, err
	}
	return item, warnings, nil
}

// DeleteItem removes the entry, its comments and preference rows. The backing
// image file is removed best-effort first.
func (service *CatalogService) DeleteItem(foodID uint) ([]string, error) {
	item, found, err := service.foods.FindByID(foodID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}

	warnings := make([]string, 0, 1)
	if item.ImageFilename != "" {
		if err := service.images.Remove(item.ImageFilename); err != nil {
			log.Printf("delete image file: %v", err)
			warnings = append(warnings, "Error deleting image file.")
		}
	}

	if err := service.foods.DeleteWithDependents(item.ID); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// SetPreferences replaces the user's preferred-food set wholesale. An empty
// selection is valid and clears it.
func (service *CatalogService) SetPreferences(userID uint, foodIDs []uint) error {
	return service.preferences.ReplaceAll(userID, foodIDs)
}

func (service *CatalogService) PreferredFoodIDs(userID uint) ([]uint, error) {
	return service.preferences.ListFoodIDsByUser(userID)
}

// AddComment appends a comment and, when it carries a rating, recomputes the
// food's rating as the mean of all rated comments. Unrated comments leave the
// stored rating untouched.
func (service *CatalogService) AddComment(foodID uint, userID uint, text string, rating *float64) (models.FoodComment, error) {
	_, found, err := service.foods.FindByID(foodID)
	if err != nil {
		return models.FoodComment{}, err
	}
	if !found {
		return models.FoodComment{}, ErrNotFound
	}
	if strings.TrimSpace(text) == "" {
		return models.FoodComment{}, ErrInvalidInput
	}

	comment := models.FoodComment{
		FoodID:  foodID,
		UserID:  userID,
		Content: text,
		Rating:  rating,
	}
	if err := service.comments.Create(&comment); err != nil {
		return models.FoodComment{}, err
	}

	ratings, err := service.comments.ListRatingsByFood(foodID)
	if err != nil {
		return models.FoodComment{}, err
	}
	if len(ratings) > 0 {
		sum := 0.0
		for _, value := range ratings {
			sum += value
		}
		if err := service.foods.UpdateRating(foodID, sum/float64(len(ratings))); err != nil {
			return models.FoodComment{}, err
		}
	}
	return comment, nil
}
