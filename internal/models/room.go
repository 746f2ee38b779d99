package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Room is the per-group game container: one row per Telegram chat,
// players embedded as a JSON snapshot list the way the original document
// store kept them.
type Room struct {
	ID        uint      `gorm:"primaryKey"`
	ChatID    int64     `gorm:"uniqueIndex;not null"`
	Active    bool      `gorm:"default:false;not null"`
	Players   string    `gorm:"type:text;default:'[]'"` // JSON: [{"id":1,"username":"a"},...]
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Room) TableName() string {
	return "rooms"
}

// Player is the embedded membership snapshot. Identity is the Telegram
// user id; the rest is display data captured at join time.
type Player struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
}

// BeforeSave keeps the Players column well-formed JSON.
func (r *Room) BeforeSave(tx *gorm.DB) error {
	if r.Players == "" {
		r.Players = "[]"
	}
	var players []Player
	if err := json.Unmarshal([]byte(r.Players), &players); err != nil {
		return gorm.ErrInvalidData
	}
	return nil
}

// PlayerList decodes the embedded player list.
func (r *Room) PlayerList() ([]Player, error) {
	raw := r.Players
	if raw == "" {
		raw = "[]"
	}
	var players []Player
	if err := json.Unmarshal([]byte(raw), &players); err != nil {
		return nil, err
	}
	return players, nil
}

// SetPlayerList encodes players back into the row.
func (r *Room) SetPlayerList(players []Player) error {
	data, err := json.Marshal(players)
	if err != nil {
		return err
	}
	r.Players = string(data)
	return nil
}

// AppendPlayer rebuilds a player list with set semantics by player id:
// any existing entry with the same id is removed and the player is
// appended at the end.
func AppendPlayer(players []Player, p Player) []Player {
	result := make([]Player, 0, len(players)+1)
	for _, existing := range players {
		if existing.ID != p.ID {
			result = append(result, existing)
		}
	}
	return append(result, p)
}
