package services

import (
	"strconv"

	"github.com/terraincognita07/foodt/internal/models"
)

const uncategorizedLabel = "Uncategorized"

type ReportFoodRepository interface {
	ListOrderedByName() ([]models.FoodItem, error)
}

type ReportService struct {
	foods ReportFoodRepository
}

// DashboardData carries the chart series for the dashboard: category counts
// and per-item ratings, each as parallel label/value arrays.
type DashboardData struct {
	Categories DashboardCategories `json:"categories"`
	Ratings    DashboardRatings    `json:"ratings"`
}

type DashboardCategories struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

type DashboardRatings struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

func NewReportService(foods ReportFoodRepository) *ReportService {
	return &ReportService{foods: foods}
}

// DashboardAggregate groups catalog items by category, bucketing blank
// categories under "Uncategorized". Pure read; label order follows first
// appearance over the name-ordered catalog.
func (service *ReportService) DashboardAggregate() (DashboardData, error) {
	items, err := service.foods.ListOrderedByName()
	if err != nil {
		return DashboardData{}, err
	}

	counts := make(map[string]int, len(items))
	labels := make([]string, 0, len(items))
	data := DashboardData{
		Categories: DashboardCategories{Labels: []string{}, Counts: []int{}},
		Ratings:    DashboardRatings{Labels: []string{}, Values: []float64{}},
	}

	for _, item := range items {
		category := item.Category
		if category == "" {
			category = uncategorizedLabel
		}
		if _, seen := counts[category]; !seen {
			labels = append(labels, category)
		}
		counts[category]++

		data.Ratings.Labels = append(data.Ratings.Labels, item.Name)
		data.Ratings.Values = append(data.Ratings.Values, item.Rating)
	}

	for _, label := range labels {
		data.Categories.Labels = append(data.Categories.Labels, label)
		data.Categories.Counts = append(data.Categories.Counts, counts[label])
	}
	return data, nil
}

var exportCSVHeaders = []string{"Name", "Calories", "Rating"}

func ExportCSVHeaders() []string {
	return exportCSVHeaders
}

// ExportCSVRows returns one row per catalog item, ordered by name.
func (service *ReportService) ExportCSVRows() ([][]string, error) {
	items, err := service.foods.ListOrderedByName()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Name,
			strconv.Itoa(item.Calories),
			strconv.FormatFloat(item.Rating, 'f', 1, 64),
		})
	}
	return rows, nil
}
