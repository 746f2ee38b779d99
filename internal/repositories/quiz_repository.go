package repositories

import (
	"time"

	"github.com/mayones/quizbot/internal/models"
	"github.com/mayones/quizbot/pkg/errors"
	"gorm.io/gorm"
)

type QuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// CreateSession starts a new round for a group, stamped with the current
// time in Unix milliseconds.
func (r *QuizRepository) CreateSession(chatID int64) (*models.QuizSession, error) {
	session := &models.QuizSession{
		ChatID:  chatID,
		Session: time.Now().UnixMilli(),
	}
	if err := r.db.Create(session).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create session")
	}
	return session, nil
}

// GetLastSession resolves the most recent round for a group.
func (r *QuizRepository) GetLastSession(chatID int64) (*models.QuizSession, error) {
	var session models.QuizSession
	result := r.db.Where("chat_id = ?", chatID).Order("session DESC").First(&session)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "no session for this group")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get last session")
	}

	return &session, nil
}

// CreateQuestion records a question asked during a session, correlated
// by the session key.
func (r *QuizRepository) CreateQuestion(session *models.QuizSession, question, answer string) (*models.Question, error) {
	q := &models.Question{
		SessionKey: session.Key(),
		Question:   question,
		Answer:     answer,
	}
	if err := r.db.Create(q).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create question")
	}
	return q, nil
}

// GetLastQuestion is a two-step lookup: the most recent session for the
// group, then the most recent question under its derived key. Unlike
// room lookups this fails loudly when either is missing, since callers
// only ask during a running round.
func (r *QuizRepository) GetLastQuestion(chatID int64) (*models.Question, error) {
	session, err := r.GetLastSession(chatID)
	if err != nil {
		return nil, err
	}

	var question models.Question
	result := r.db.Where("session_key = ?", session.Key()).Order("id DESC").First(&question)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "no question for this session")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get last question")
	}

	return &question, nil
}

// CountQuestions returns how many questions have been asked in a session.
func (r *QuizRepository) CountQuestions(sessionKey int64) (int64, error) {
	var count int64
	result := r.db.Model(&models.Question{}).Where("session_key = ?", sessionKey).Count(&count)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to count questions")
	}
	return count, nil
}

// RandomTrivia draws one question from the seeded bank.
func (r *QuizRepository) RandomTrivia() (*models.TriviaQuestion, error) {
	var trivia models.TriviaQuestion
	result := r.db.Order("RANDOM()").First(&trivia)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "trivia bank is empty")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to draw trivia")
	}

	return &trivia, nil
}
