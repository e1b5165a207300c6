package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Foods       *FoodRepository
	Comments    *CommentRepository
	Plans       *PlanRepository
	Preferences *PreferenceRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Foods:       NewFoodRepository(database),
		Comments:    NewCommentRepository(database),
		Plans:       NewPlanRepository(database),
		Preferences: NewPreferenceRepository(database),
	}
}
