package repositories

import (
	"testing"

	"github.com/mayones/quizbot/internal/models"
)

func TestCreateUserIfAbsent_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	created, err := repo.CreateUserIfAbsent(&models.User{TelegramID: 123, Username: "alice"})
	if err != nil {
		t.Fatalf("CreateUserIfAbsent() error = %v", err)
	}
	if !created {
		t.Error("first call: created = false, want true")
	}

	created, err = repo.CreateUserIfAbsent(&models.User{TelegramID: 123, Username: "alice"})
	if err != nil {
		t.Fatalf("CreateUserIfAbsent() second call error = %v", err)
	}
	if created {
		t.Error("second call: created = true, want no-op")
	}

	var count int64
	db.Model(&models.User{}).Where("telegram_id = ?", 123).Count(&count)
	if count != 1 {
		t.Errorf("stored user count = %d, want exactly 1", count)
	}
}

func TestGetUserByTelegramID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	if _, err := repo.GetUserByTelegramID(999); err == nil {
		t.Error("GetUserByTelegramID() expected error for unknown id, got nil")
	}
}
