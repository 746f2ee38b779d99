package repositories

import (
	"github.com/mayones/quizbot/internal/models"
	"github.com/mayones/quizbot/pkg/errors"
	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetRoomByChatID looks up the room for a group. A missing room is a
// normal outcome and returns (nil, nil); only transport failures are
// surfaced as errors, so callers never mistake an outage for an empty
// group.
func (r *RoomRepository) GetRoomByChatID(chatID int64) (*models.Room, error) {
	var room models.Room
	result := r.db.Where("chat_id = ?", chatID).First(&room)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get room")
	}

	return &room, nil
}

// CreateRoom bootstraps a room for a group with the initiating player as
// its only member. The created record is returned so callers branch on
// fresh state rather than a stale pre-creation handle.
func (r *RoomRepository) CreateRoom(chatID int64, player models.Player) (*models.Room, error) {
	room := &models.Room{
		ChatID: chatID,
		Active: false,
	}
	if err := room.SetPlayerList([]models.Player{player}); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to encode players")
	}

	if err := r.db.Create(room).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create room")
	}
	return room, nil
}

// SetPlayers replaces the room's player list.
func (r *RoomRepository) SetPlayers(chatID int64, players []models.Player) (*models.Room, error) {
	room, err := r.GetRoomByChatID(chatID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "room not found")
	}

	if err := room.SetPlayerList(players); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to encode players")
	}

	result := r.db.Model(&models.Room{}).Where("chat_id = ?", chatID).Update("players", room.Players)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update players")
	}
	return room, nil
}

// SetActive flips the in-progress flag for a group's room.
func (r *RoomRepository) SetActive(chatID int64, active bool) error {
	result := r.db.Model(&models.Room{}).Where("chat_id = ?", chatID).Update("active", active)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update room state")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "room not found")
	}
	return nil
}
