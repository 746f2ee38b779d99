package database

import (
	"fmt"
	"time"

	"github.com/mayones/quizbot/internal/config"
	"github.com/mayones/quizbot/internal/models"
	"github.com/mayones/quizbot/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.GetDSN()

	var logLevel gormlogger.LogLevel
	if cfg.AppEnv == "development" {
		logLevel = gormlogger.Info
	} else {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// A group quiz bot sees bursty but small traffic; a modest pool is
	// plenty.
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	logger.Info("Database connected successfully")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.QuizSession{},
		&models.Question{},
		&models.TriviaQuestion{},
		&models.Score{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

func SeedQuestions(db *gorm.DB) error {
	logger.Info("Checking trivia question bank...")

	var count int64
	db.Model(&models.TriviaQuestion{}).Count(&count)
	if count > 0 {
		return nil
	}

	logger.Info("Seeding trivia questions...")
	questions := []models.TriviaQuestion{
		{Question: "Apa ibukota Indonesia?", Answer: "Jakarta", Category: "geografi", Difficulty: "easy"},
		{Question: "Planet apa yang dijuluki planet merah?", Answer: "Mars", Category: "sains", Difficulty: "easy"},
		{Question: "Berapa jumlah pemain sepak bola dalam satu tim?", Answer: "11", Category: "olahraga", Difficulty: "easy"},
		{Question: "Siapa presiden pertama Indonesia?", Answer: "Soekarno", Category: "sejarah", Difficulty: "easy"},
		{Question: "Apa mata uang Jepang?", Answer: "Yen", Category: "ekonomi", Difficulty: "easy"},
		{Question: "Gunung tertinggi di dunia?", Answer: "Everest", Category: "geografi", Difficulty: "easy"},
		{Question: "Hewan tercepat di darat?", Answer: "Cheetah", Category: "sains", Difficulty: "easy"},
		{Question: "Pulau terbesar di Indonesia?", Answer: "Kalimantan", Category: "geografi", Difficulty: "medium"},
		{Question: "Siapa penemu bola lampu?", Answer: "Thomas Edison", Category: "sejarah", Difficulty: "medium"},
		{Question: "Berapa hasil 9 x 7?", Answer: "63", Category: "matematika", Difficulty: "easy"},
		{Question: "Samudra terluas di dunia?", Answer: "Pasifik", Category: "geografi", Difficulty: "easy"},
		{Question: "Apa nama ibukota Jepang?", Answer: "Tokyo", Category: "geografi", Difficulty: "easy"},
	}

	return db.Create(&questions).Error
}
