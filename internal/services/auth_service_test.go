package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/terraincognita07/foodt/internal/db"
	"github.com/terraincognita07/foodt/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func newAuthTestService(t *testing.T) *AuthService {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "foodt-auth-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := database.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return NewAuthService(db.NewRepositories(database).Users)
}

func TestRegisterHashesPassword(t *testing.T) {
	service := newAuthTestService(t)

	user, err := service.Register("alice", "correct horse")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "correct horse" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if user.IsAdmin {
		t.Fatal("self-registered user must not be an admin")
	}
}

func TestRegisterRejectsBlankAndDuplicate(t *testing.T) {
	service := newAuthTestService(t)

	if _, err := service.Register("   ", "pw"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank username: expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.Register("bob", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank password: expected ErrInvalidInput, got %v", err)
	}

	original, err := service.Register("bob", "first-pw")
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}
	if _, err := service.Register("bob", "second-pw"); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("duplicate username: expected ErrDuplicateUsername, got %v", err)
	}

	// The original account must be untouched by the failed attempt.
	kept, err := service.FindByID(original.ID)
	if err != nil {
		t.Fatalf("reload bob: %v", err)
	}
	if kept.PasswordHash != original.PasswordHash {
		t.Fatal("failed registration altered the existing account")
	}
}

func TestAuthenticate(t *testing.T) {
	service := newAuthTestService(t)

	if _, err := service.Register("carol", "s3cret"); err != nil {
		t.Fatalf("register carol: %v", err)
	}

	user, err := service.Authenticate("carol", "s3cret")
	if err != nil {
		t.Fatalf("valid login: %v", err)
	}
	if user.Username != "carol" {
		t.Fatalf("unexpected user %+v", user)
	}

	if _, err := service.Authenticate("carol", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Authenticate("nobody", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	service := newAuthTestService(t)

	user, err := service.Register("dave", "old-pw")
	if err != nil {
		t.Fatalf("register dave: %v", err)
	}

	if err := service.ChangePassword(user.ID, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty password: expected ErrInvalidInput, got %v", err)
	}
	if err := service.ChangePassword(user.ID, "new-pw"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, err := service.Authenticate("dave", "old-pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("old password still accepted after change")
	}
	if _, err := service.Authenticate("dave", "new-pw"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestEnsureDefaultAdminIsIdempotent(t *testing.T) {
	service := newAuthTestService(t)

	if err := service.EnsureDefaultAdmin("bootstrap"); err != nil {
		t.Fatalf("first bootstrap: %v", err)
	}

	admin, err := service.Authenticate(models.DefaultAdminUsername, "bootstrap")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if !admin.IsAdmin {
		t.Fatal("bootstrap account must carry the admin flag")
	}

	// A second call must not touch the existing account.
	if err := service.EnsureDefaultAdmin("different"); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	if _, err := service.Authenticate(models.DefaultAdminUsername, "bootstrap"); err != nil {
		t.Fatalf("original admin password no longer works: %v", err)
	}
}
