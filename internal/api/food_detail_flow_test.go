package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/terraincognita07/foodt/internal/models"
)

func TestShowFoodDetailRendersCommentsNewestFirst(t *testing.T) {
	app, database := newTestApp(t)
	session := loginAs(t, app, "reader", "pw")

	submitForm(t, app, "/food_items", session, url.Values{"action": {"add"}, "food_name": {"Pasta"}})
	item := loadFoodByName(t, database, "Pasta")
	detailPath := "/food/" + strconv.FormatUint(uint64(item.ID), 10)

	submitForm(t, app, detailPath, session, url.Values{"comment": {"first take"}})
	submitForm(t, app, detailPath, session, url.Values{"comment": {"second take"}})

	page := getPage(t, app, detailPath, session)
	if page.StatusCode != http.StatusOK {
		t.Fatalf("detail page: expected 200, got %d", page.StatusCode)
	}
	body := readBody(t, page)
	if !strings.Contains(body, "Pasta") {
		t.Fatal("detail page does not name the food")
	}
	first := strings.Index(body, "second take")
	second := strings.Index(body, "first take")
	if first == -1 || second == -1 {
		t.Fatal("detail page is missing posted comments")
	}
	if first > second {
		t.Fatal("comments are not rendered newest first")
	}
}

func TestCommentWithRatingRecomputesFoodRating(t *testing.T) {
	app, database := newTestApp(t)
	session := loginAs(t, app, "critic", "pw")

	submitForm(t, app, "/food_items", session, url.Values{
		"action":    {"add"},
		"food_name": {"Stew"},
		"rating":    {"1"},
	})
	item := loadFoodByName(t, database, "Stew")
	detailPath := "/food/" + strconv.FormatUint(uint64(item.ID), 10)

	posted := submitForm(t, app, detailPath, session, url.Values{
		"comment":        {"Rich"},
		"comment_rating": {"4"},
	})
	expectRedirect(t, posted, detailPath)
	if flash := flashOf(t, posted); flash.Notice != "Comment posted!" {
		t.Fatalf("unexpected flash %+v", flash)
	}
	submitForm(t, app, detailPath, session, url.Values{
		"comment":        {"Better on day two"},
		"comment_rating": {"5"},
	})

	if rated := loadFoodByName(t, database, "Stew"); rated.Rating != 4.5 {
		t.Fatalf("expected mean rating 4.5, got %v", rated.Rating)
	}

	// A rating-free comment leaves the stored mean alone.
	submitForm(t, app, detailPath, session, url.Values{"comment": {"no score"}})
	if rated := loadFoodByName(t, database, "Stew"); rated.Rating != 4.5 {
		t.Fatalf("unrated comment changed rating to %v", rated.Rating)
	}
}

func TestEditFromDetailPage(t *testing.T) {
	app, database := newTestApp(t)
	session := loginAs(t, app, "editor", "pw")

	submitForm(t, app, "/food_items", session, url.Values{"action": {"add"}, "food_name": {"Rice"}})
	item := loadFoodByName(t, database, "Rice")
	detailPath := "/food/" + strconv.FormatUint(uint64(item.ID), 10)

	edited := submitForm(t, app, detailPath, session, url.Values{
		"action":   {"edit"},
		"name":     {"Brown Rice"},
		"calories": {"216"},
		"category": {"Grain"},
	})
	expectRedirect(t, edited, detailPath)
	if flash := flashOf(t, edited); flash.Notice != "Food attributes updated!" {
		t.Fatalf("unexpected flash %+v", flash)
	}

	updated := loadFoodByName(t, database, "Brown Rice")
	if updated.Calories != 216 || updated.Category != "Grain" {
		t.Fatalf("unexpected updated item %+v", updated)
	}
}

func TestFoodDetailNotFound(t *testing.T) {
	app, _ := newTestApp(t)
	session := loginAs(t, app, "reader", "pw")

	for _, path := range []string{"/food/9999", "/food/abc"} {
		page := getPage(t, app, path, session)
		if page.StatusCode != http.StatusNotFound {
			t.Fatalf("GET %s: expected 404, got %d", path, page.StatusCode)
		}
	}
}

func TestFoodItemsPageMarksSelectedItems(t *testing.T) {
	app, database := newTestApp(t)
	session := loginAs(t, app, "picker", "pw")

	submitForm(t, app, "/food_items", session, url.Values{"action": {"add"}, "food_name": {"Apple"}})
	apple := loadFoodByName(t, database, "Apple")
	submitForm(t, app, "/food_items", session, url.Values{
		"action":            {"select"},
		"selected_food_ids": {strconv.FormatUint(uint64(apple.ID), 10)},
	})

	page := getPage(t, app, "/food_items", session)
	if page.StatusCode != http.StatusOK {
		t.Fatalf("food items page: expected 200, got %d", page.StatusCode)
	}
	if body := readBody(t, page); !strings.Contains(body, "checked") {
		t.Fatal("selected item checkbox is not pre-checked")
	}

	var count int64
	if err := database.Model(&models.UserFood{}).Count(&count).Error; err != nil {
		t.Fatalf("count preference rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one preference row, got %d", count)
	}
}
