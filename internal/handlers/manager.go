package handlers

import (
	"github.com/mayones/quizbot/internal/config"
	"github.com/mayones/quizbot/internal/repositories"
	"gorm.io/gorm"
)

// Bot interface to avoid circular dependency
type BotInterface interface {
	SendMessage(chatID int64, text string) int
}

type HandlerManager struct {
	Config    *config.Config
	DB        *gorm.DB
	UserRepo  *repositories.UserRepository
	RoomRepo  *repositories.RoomRepository
	QuizRepo  *repositories.QuizRepository
	ScoreRepo *repositories.ScoreRepository
}

func NewHandlerManager(
	cfg *config.Config,
	db *gorm.DB,
	userRepo *repositories.UserRepository,
	roomRepo *repositories.RoomRepository,
	quizRepo *repositories.QuizRepository,
	scoreRepo *repositories.ScoreRepository,
) *HandlerManager {
	return &HandlerManager{
		Config:    cfg,
		DB:        db,
		UserRepo:  userRepo,
		RoomRepo:  roomRepo,
		QuizRepo:  quizRepo,
		ScoreRepo: scoreRepo,
	}
}
