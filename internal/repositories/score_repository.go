package repositories

import (
	"github.com/mayones/quizbot/internal/models"
	"github.com/mayones/quizbot/pkg/errors"
	"github.com/mayones/quizbot/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScoreRepository keeps one tally document per session.
type ScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// FindScore looks up the tally for a session. Absent is a normal outcome
// and returns (nil, nil).
func (r *ScoreRepository) FindScore(sessionKey int64) (*models.Score, error) {
	var score models.Score
	result := r.db.Where("session_key = ?", sessionKey).First(&score)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to find score")
	}

	return &score, nil
}

// CreateScore initializes an empty tally for a session.
func (r *ScoreRepository) CreateScore(sessionKey int64) (*models.Score, error) {
	score := &models.Score{
		SessionKey: sessionKey,
		Scores:     "{}",
	}
	if err := r.db.Create(score).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create score")
	}
	return score, nil
}

// FindOrCreateScore returns the tally for a session, creating it on
// first use. The create is conditional on the unique session-key index
// (insert, do nothing on conflict, re-read), so two overlapping calls
// cannot leave duplicate rows.
func (r *ScoreRepository) FindOrCreateScore(sessionKey int64) (*models.Score, error) {
	blank := models.Score{
		SessionKey: sessionKey,
		Scores:     "{}",
	}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_key"}},
		DoNothing: true,
	}).Create(&blank)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to ensure score")
	}

	score, err := r.FindScore(sessionKey)
	if err != nil {
		return nil, err
	}
	if score == nil {
		return nil, errors.New(errors.ErrCodeInternalError, "score missing after ensure")
	}
	return score, nil
}

// GiveScore awards one point to a player in a session. A player not yet
// in the tally counts as zero before the increment.
func (r *ScoreRepository) GiveScore(user *models.User, sessionKey int64) (*models.Score, error) {
	score, err := r.FindOrCreateScore(sessionKey)
	if err != nil {
		return nil, err
	}

	scores, err := score.ScoreMap()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to decode score")
	}

	name := utils.DisplayName(user.Username, user.FirstName)
	scores[name]++

	if err := score.SetScoreMap(scores); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to encode score")
	}

	result := r.db.Model(&models.Score{}).Where("session_key = ?", sessionKey).Update("scores", score.Scores)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update score")
	}

	return score, nil
}
