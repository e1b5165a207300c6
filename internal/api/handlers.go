package api

import (
	"fmt"
	"html/template"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/terraincognita07/foodt/internal/db"
	"github.com/terraincognita07/foodt/internal/models"
	"github.com/terraincognita07/foodt/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	templates    map[string]*template.Template
	repositories *db.Repositories

	authService    *services.AuthService
	catalogService *services.CatalogService
	plannerService *services.PlannerService
	reportService  *services.ReportService
	imageStore     *services.ImageStore
}

func NewHandler(
	database *gorm.DB,
	secret string,
	templateDir string,
	imageDir string,
	location *time.Location,
	rng *rand.Rand,
) (*Handler, error) {
	if location == nil {
		location = time.Local
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	imageStore, err := services.NewImageStore(imageDir)
	if err != nil {
		return nil, err
	}

	funcMap := template.FuncMap{
		"formatFloat": func(value float64) string {
			return fmt.Sprintf("%.1f", value)
		},
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"hasID": func(set map[uint]bool, id uint) bool {
			return set[id]
		},
		"deref": func(value *float64) float64 {
			if value == nil {
				return 0
			}
			return *value
		},
		"add": func(a int, b int) int {
			return a + b
		},
		"seq": func(count int) []int {
			values := make([]int, count)
			for index := range values {
				values[index] = index
			}
			return values
		},
		"mealAt": func(meals []models.MealDay, index int) *models.MealDay {
			if index < 0 || index >= len(meals) {
				return nil
			}
			return &meals[index]
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"login",
		"register",
		"dashboard",
		"planner",
		"food_items",
		"food_detail",
		"profile",
		"404",
		"500",
	}
	for _, page := range pages {
		templatePath := filepath.Join(templateDir, page+".html")
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			templatePath,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	repositories := db.NewRepositories(database)
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		templates:    templates,
		repositories: repositories,
		imageStore:   imageStore,
	}
	handler.authService = services.NewAuthService(repositories.Users)
	handler.catalogService = services.NewCatalogService(
		repositories.Foods,
		repositories.Comments,
		repositories.Preferences,
		imageStore,
	)
	handler.plannerService = services.NewPlannerService(repositories.Plans, repositories.Preferences, rng)
	handler.reportService = services.NewReportService(repositories.Foods)
	return handler, nil
}
