package models

import (
	"time"
)

// User mirrors the Telegram identity of a player verbatim. Created once
// on first contact, never mutated afterwards.
type User struct {
	ID         uint      `gorm:"primaryKey"`
	TelegramID int64     `gorm:"uniqueIndex;not null"`
	Username   string    `gorm:"type:varchar(255)"`
	FirstName  string    `gorm:"type:varchar(255)"`
	LastName   string    `gorm:"type:varchar(255)"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// Player returns the snapshot of this user that rooms embed in their
// player list.
func (u *User) Player() Player {
	return Player{
		ID:        u.TelegramID,
		Username:  u.Username,
		FirstName: u.FirstName,
	}
}
