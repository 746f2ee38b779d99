package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Score keeps one tally document per session: a JSON object mapping
// username to points. An absent username counts as zero.
type Score struct {
	ID         uint      `gorm:"primaryKey"`
	SessionKey int64     `gorm:"uniqueIndex;not null"`
	Scores     string    `gorm:"type:text;default:'{}'"` // JSON: {"username": points}
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Score) TableName() string {
	return "scores"
}

// BeforeSave keeps the Scores column well-formed JSON.
func (s *Score) BeforeSave(tx *gorm.DB) error {
	if s.Scores == "" {
		s.Scores = "{}"
	}
	var scores map[string]int64
	if err := json.Unmarshal([]byte(s.Scores), &scores); err != nil {
		return gorm.ErrInvalidData
	}
	return nil
}

// ScoreMap decodes the tally. Never returns a nil map.
func (s *Score) ScoreMap() (map[string]int64, error) {
	raw := s.Scores
	if raw == "" {
		raw = "{}"
	}
	scores := make(map[string]int64)
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// SetScoreMap encodes the tally back into the row.
func (s *Score) SetScoreMap(scores map[string]int64) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	s.Scores = string(data)
	return nil
}
