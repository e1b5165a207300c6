package api

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/foodt/internal/db"
	"gorm.io/gorm"
)

// newTestApp assembles the full application against a throwaway database, the
// real templates and a fixed random source.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve test file path")
	}
	templateDir := filepath.Join(filepath.Dir(thisFile), "..", "..", "web", "templates")

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "foodt-api-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := database.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	handler, err := NewHandler(
		database,
		"test-secret",
		templateDir,
		t.TempDir(),
		time.UTC,
		rand.New(rand.NewSource(1)),
	)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: handler.InternalError})
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, database
}

func submitForm(t *testing.T, app *fiber.App, path string, session *http.Cookie, form url.Values) *http.Response {
	t.Helper()

	request, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("build request %s: %v", path, err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != nil {
		request.AddCookie(session)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return response
}

func getPage(t *testing.T, app *fiber.App, path string, session *http.Cookie) *http.Response {
	t.Helper()

	request, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("build request %s: %v", path, err)
	}
	if session != nil {
		request.AddCookie(session)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return response
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	response.Body.Close()
	return string(body)
}

func expectRedirect(t *testing.T, response *http.Response, path string) {
	t.Helper()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 redirect, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != path {
		t.Fatalf("expected redirect to %s, got %s", path, location)
	}
}

// flashOf decodes the one-shot notice cookie set on a redirect response.
func flashOf(t *testing.T, response *http.Response) FlashPayload {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name != flashCookieName || cookie.Value == "" {
			continue
		}
		decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
		if err != nil {
			t.Fatalf("decode flash cookie: %v", err)
		}
		payload := FlashPayload{}
		if err := json.Unmarshal(decoded, &payload); err != nil {
			t.Fatalf("unmarshal flash cookie: %v", err)
		}
		return payload
	}
	return FlashPayload{}
}

// loginAs registers a fresh account and returns its session cookie.
func loginAs(t *testing.T, app *fiber.App, username string, password string) *http.Cookie {
	t.Helper()

	registerResponse := submitForm(t, app, "/register", nil, url.Values{
		"username": {username},
		"password": {password},
	})
	expectRedirect(t, registerResponse, "/login")

	loginResponse := submitForm(t, app, "/login", nil, url.Values{
		"username": {username},
		"password": {password},
	})
	expectRedirect(t, loginResponse, "/dashboard")

	for _, cookie := range loginResponse.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}
