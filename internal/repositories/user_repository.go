package repositories

import (
	"github.com/mayones/quizbot/internal/models"
	"github.com/mayones/quizbot/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUserIfAbsent registers a player the first time they are seen.
// It is idempotent from the caller's point of view: an already-known
// Telegram id returns created=false without touching the row.
func (r *UserRepository) CreateUserIfAbsent(user *models.User) (bool, error) {
	var count int64
	result := r.db.Model(&models.User{}).Where("telegram_id = ?", user.TelegramID).Count(&count)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to check user existence")
	}
	if count > 0 {
		return false, nil
	}

	if err := r.db.Create(user).Error; err != nil {
		return false, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create user")
	}
	return true, nil
}

// GetUserByTelegramID retrieves a user by Telegram ID.
func (r *UserRepository) GetUserByTelegramID(telegramID int64) (*models.User, error) {
	var user models.User
	result := r.db.Where("telegram_id = ?", telegramID).First(&user)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "user not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get user")
	}

	return &user, nil
}
