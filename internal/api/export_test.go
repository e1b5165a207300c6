package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"reflect"
	"testing"

	"github.com/terraincognita07/foodt/internal/models"
	"github.com/terraincognita07/foodt/internal/services"
)

func TestExportFoodItemsCSV(t *testing.T) {
	app, database := newTestApp(t)
	session := loginAs(t, app, "exporter", "pw")

	// Seed directly so calories carry real values; rows must come out ordered
	// by name regardless of insertion order.
	for _, item := range []models.FoodItem{
		{Name: "Bread", Calories: 265, Rating: 3.5},
		{Name: "Apple", Calories: 52, Rating: 4},
	} {
		seeded := item
		if err := database.Create(&seeded).Error; err != nil {
			t.Fatalf("seed %s: %v", item.Name, err)
		}
	}

	response := submitForm(t, app, "/export_food_items", session, url.Values{})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("export: expected 200, got %d", response.StatusCode)
	}
	if contentType := response.Header.Get("Content-Type"); contentType != "text/csv" {
		t.Fatalf("unexpected Content-Type %q", contentType)
	}
	if disposition := response.Header.Get("Content-Disposition"); disposition != `attachment; filename=food_items.csv` {
		t.Fatalf("unexpected Content-Disposition %q", disposition)
	}

	want := "Name,Calories,Rating\r\nApple,52,4.0\r\nBread,265,3.5\r\n"
	if body := readBody(t, response); body != want {
		t.Fatalf("unexpected CSV body %q, want %q", body, want)
	}
}

func TestDashboardDataJSON(t *testing.T) {
	app, database := newTestApp(t)
	session := loginAs(t, app, "viewer", "pw")

	for _, item := range []models.FoodItem{
		{Name: "Apple", Category: "Fruit", Rating: 4},
		{Name: "Banana", Category: "Fruit", Rating: 3},
		{Name: "Mystery", Category: "", Rating: 1},
	} {
		seeded := item
		if err := database.Create(&seeded).Error; err != nil {
			t.Fatalf("seed %s: %v", item.Name, err)
		}
	}

	response := getPage(t, app, "/dashboard_data", session)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("dashboard data: expected 200, got %d", response.StatusCode)
	}

	var data services.DashboardData
	if err := json.Unmarshal([]byte(readBody(t, response)), &data); err != nil {
		t.Fatalf("decode dashboard payload: %v", err)
	}
	if !reflect.DeepEqual(data.Categories.Labels, []string{"Fruit", "Uncategorized"}) {
		t.Fatalf("unexpected category labels %v", data.Categories.Labels)
	}
	if !reflect.DeepEqual(data.Categories.Counts, []int{2, 1}) {
		t.Fatalf("unexpected category counts %v", data.Categories.Counts)
	}
	if !reflect.DeepEqual(data.Ratings.Labels, []string{"Apple", "Banana", "Mystery"}) {
		t.Fatalf("unexpected rating labels %v", data.Ratings.Labels)
	}
}
