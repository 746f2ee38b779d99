package models

import "time"

// QuizSession marks one game round in a group. Session is the start time
// in Unix milliseconds; the newest row per chat is the current round.
type QuizSession struct {
	ID        uint      `gorm:"primaryKey"`
	ChatID    int64     `gorm:"index:idx_sessions_chat_session;not null"`
	Session   int64     `gorm:"index:idx_sessions_chat_session;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (QuizSession) TableName() string {
	return "quiz_sessions"
}

// Key derives the session correlation key used by questions and scores.
// It is computed here and nowhere else so every lookup agrees on it.
func (s *QuizSession) Key() int64 {
	return s.ChatID + s.Session
}

// Question is one question asked during a session, correlated by the
// session key.
type Question struct {
	ID         uint      `gorm:"primaryKey"`
	SessionKey int64     `gorm:"index;not null"`
	Question   string    `gorm:"type:text;not null"`
	Answer     string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}

// TriviaQuestion is a bank entry questions are drawn from when a round
// is running. Seeded at startup.
type TriviaQuestion struct {
	ID         uint   `gorm:"primaryKey"`
	Question   string `gorm:"type:text;not null"`
	Answer     string `gorm:"type:text;not null"`
	Category   string `gorm:"type:varchar(100)"`
	Difficulty string `gorm:"type:varchar(20);default:'easy'"`
}

func (TriviaQuestion) TableName() string {
	return "trivia_questions"
}
