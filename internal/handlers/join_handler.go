package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mayones/quizbot/internal/models"
	"github.com/mayones/quizbot/internal/security"
	"github.com/mayones/quizbot/pkg/logger"
)

// HandleJoin processes /join: registers the sender, bootstraps the
// group's room on first contact, refuses joins while a game is running,
// and otherwise re-appends the sender to the player list.
//
// Every mutation is at most once per invocation: one optional room
// creation OR one player-list update, and exactly one reply. Store
// failures propagate to the dispatcher unretried.
func (h *HandlerManager) HandleJoin(message *tgbotapi.Message, bot BotInterface) error {
	chatID := message.Chat.ID
	user := userFromMessage(message)

	created, err := h.UserRepo.CreateUserIfAbsent(user)
	if err != nil {
		return err
	}
	if created {
		logger.Info("Registered new player", "telegram_id", user.TelegramID, "username", user.Username)
	}

	room, err := h.RoomRepo.GetRoomByChatID(chatID)
	if err != nil {
		return err
	}

	if room == nil {
		// Create returns the full record so the Active branch below
		// reads fresh state, not the pre-creation nil.
		room, err = h.RoomRepo.CreateRoom(chatID, user.Player())
		if err != nil {
			return err
		}

		players, err := room.PlayerList()
		if err != nil {
			return err
		}
		bot.SendMessage(chatID, JoinMessage(players))
		return nil
	}

	if room.Active {
		bot.SendMessage(chatID, MsgGameInProgress)
		return nil
	}

	players, err := room.PlayerList()
	if err != nil {
		return err
	}

	newPlayers := models.AppendPlayer(players, user.Player())
	if _, err := h.RoomRepo.SetPlayers(chatID, newPlayers); err != nil {
		return err
	}

	bot.SendMessage(chatID, JoinMessage(newPlayers))
	return nil
}

// userFromMessage snapshots the sender's Telegram identity, sanitized
// before it can reach storage or a group reply.
func userFromMessage(message *tgbotapi.Message) *models.User {
	from := message.From
	return &models.User{
		TelegramID: from.ID,
		Username:   security.SanitizeText(from.UserName),
		FirstName:  security.SanitizeText(from.FirstName),
		LastName:   security.SanitizeText(from.LastName),
	}
}
