package services

import (
	"math/rand"

	"github.com/terraincognita07/foodt/internal/models"
)

// mealHistoryWindow bounds how many recent picks per slot are held against
// the candidate pool. Fixed regardless of month length.
const mealHistoryWindow = 5

type PlannerPlanRepository interface {
	FindByUserAndMonth(userID uint, month string) (models.MealPlan, bool, error)
	Upsert(userID uint, month string, days []models.MealDay) (models.MealPlan, error)
}

type PlannerPreferenceRepository interface {
	ListPreferredFoods(userID uint) ([]models.FoodItem, error)
}

type PlannerService struct {
	plans       PlannerPlanRepository
	preferences PlannerPreferenceRepository
	rng         *rand.Rand
}

func NewPlannerService(plans PlannerPlanRepository, preferences PlannerPreferenceRepository, rng *rand.Rand) *PlannerService {
	return &PlannerService{
		plans:       plans,
		preferences: preferences,
		rng:         rng,
	}
}

// PlanForMonth returns the stored plan for the key, if any. A stored plan is
// returned unchanged until the user explicitly regenerates it.
func (service *PlannerService) PlanForMonth(userID uint, month string) (models.MealPlan, bool, error) {
	if _, err := ParseMonthKey(month); err != nil {
		return models.MealPlan{}, false, err
	}
	return service.plans.FindByUserAndMonth(userID, month)
}

// Generate builds a fresh schedule from the user's preferred foods and stores
// it, unconditionally overwriting any plan already held for the month.
func (service *PlannerService) Generate(userID uint, month string) (models.MealPlan, error) {
	monthStart, err := ParseMonthKey(month)
	if err != nil {
		return models.MealPlan{}, err
	}

	preferred, err := service.preferences.ListPreferredFoods(userID)
	if err != nil {
		return models.MealPlan{}, err
	}
	if len(preferred) == 0 {
		return models.MealPlan{}, ErrNoPreferences
	}

	names := make([]string, 0, len(preferred))
	for _, item := range preferred {
		names = append(names, item.Name)
	}

	days := GenerateMealDays(names, DaysInMonth(monthStart.Year(), monthStart.Month()), service.rng)
	return service.plans.Upsert(userID, month, days)
}

// GenerateMealDays produces one {lunch, dinner} pair per day, biased away
// from choices made in the last five days per slot. The bias is soft: when a
// filter empties the candidate pool it is relaxed step by step rather than
// blocking generation, so repeats stay possible by design. The relaxation
// order (history window, then lunch exclusion only, then the full list) is
// load-bearing for reproducibility under a fixed random source.
func GenerateMealDays(names []string, dayCount int, rng *rand.Rand) []models.MealDay {
	days := make([]models.MealDay, 0, dayCount)

	if len(names) == 1 {
		for day := 0; day < dayCount; day++ {
			days = append(days, models.MealDay{Lunch: names[0], Dinner: names[0]})
		}
		return days
	}

	recentLunch := make([]string, 0, dayCount)
	recentDinner := make([]string, 0, dayCount)

	for day := 0; day < dayCount; day++ {
		lunchPool := excluding(names, nil, tail(recentLunch, mealHistoryWindow))
		if len(lunchPool) == 0 {
			lunchPool = names
		}
		lunch := lunchPool[rng.Intn(len(lunchPool))]

		dinnerPool := excluding(names, []string{lunch}, tail(recentDinner, mealHistoryWindow))
		if len(dinnerPool) == 0 {
			dinnerPool = excluding(names, []string{lunch}, nil)
		}
		if len(dinnerPool) == 0 {
			dinnerPool = names
		}
		dinner := dinnerPool[rng.Intn(len(dinnerPool))]

		days = append(days, models.MealDay{Lunch: lunch, Dinner: dinner})
		recentLunch = append(recentLunch, lunch)
		recentDinner = append(recentDinner, dinner)
	}

	return days
}

func tail(values []string, count int) []string {
	if len(values) <= count {
		return values
	}
	return values[len(values)-count:]
}

func excluding(names []string, banned []string, recent []string) []string {
	pool := make([]string, 0, len(names))
	for _, name := range names {
		if contains(banned, name) || contains(recent, name) {
			continue
		}
		pool = append(pool, name)
	}
	return pool
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
