package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mayones/quizbot/internal/models"
	"github.com/mayones/quizbot/pkg/errors"
	"github.com/mayones/quizbot/pkg/logger"
	"github.com/mayones/quizbot/pkg/utils"
)

// HandleStartGame processes /mulai: flips the room active, opens a new
// quiz session and asks the first question from the trivia bank.
func (h *HandlerManager) HandleStartGame(message *tgbotapi.Message, bot BotInterface) error {
	chatID := message.Chat.ID

	room, err := h.RoomRepo.GetRoomByChatID(chatID)
	if err != nil {
		return err
	}
	if room == nil {
		bot.SendMessage(chatID, MsgNoRoom)
		return nil
	}
	if room.Active {
		bot.SendMessage(chatID, MsgGameInProgress)
		return nil
	}

	if err := h.RoomRepo.SetActive(chatID, true); err != nil {
		return err
	}

	session, err := h.QuizRepo.CreateSession(chatID)
	if err != nil {
		return err
	}

	logger.Info("Quiz round started", "chat_id", chatID, "session_key", session.Key())
	return h.askQuestion(session, bot, true)
}

// HandleStopGame processes /berhenti: aborts the running round and posts
// the final tally.
func (h *HandlerManager) HandleStopGame(message *tgbotapi.Message, bot BotInterface) error {
	chatID := message.Chat.ID

	room, err := h.RoomRepo.GetRoomByChatID(chatID)
	if err != nil {
		return err
	}
	if room == nil || !room.Active {
		bot.SendMessage(chatID, MsgNoSession)
		return nil
	}

	if err := h.RoomRepo.SetActive(chatID, false); err != nil {
		return err
	}

	return h.finishRound(chatID, bot)
}

// HandleScores processes /skor: the tally of the group's most recent
// session, running or finished.
func (h *HandlerManager) HandleScores(message *tgbotapi.Message, bot BotInterface) error {
	chatID := message.Chat.ID

	session, err := h.QuizRepo.GetLastSession(chatID)
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeNotFound) {
			bot.SendMessage(chatID, MsgNoSession)
			return nil
		}
		return err
	}

	score, err := h.ScoreRepo.FindScore(session.Key())
	if err != nil {
		return err
	}
	if score == nil {
		bot.SendMessage(chatID, MsgNoScores)
		return nil
	}

	scores, err := score.ScoreMap()
	if err != nil {
		return err
	}

	bot.SendMessage(chatID, ScoreboardMessage(scores))
	return nil
}

// HandleAnswer inspects a plain group message while a round is running.
// A normalized match against the last question's answer awards a point
// and advances the round; anything else is ignored.
func (h *HandlerManager) HandleAnswer(message *tgbotapi.Message, bot BotInterface) error {
	chatID := message.Chat.ID
	if message.Text == "" {
		return nil
	}

	room, err := h.RoomRepo.GetRoomByChatID(chatID)
	if err != nil {
		return err
	}
	if room == nil || !room.Active {
		return nil
	}

	question, err := h.QuizRepo.GetLastQuestion(chatID)
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeNotFound) {
			return nil
		}
		return err
	}

	if utils.NormalizeAnswer(message.Text) != utils.NormalizeAnswer(question.Answer) {
		return nil
	}

	session, err := h.QuizRepo.GetLastSession(chatID)
	if err != nil {
		return err
	}

	user := userFromMessage(message)
	if _, err := h.UserRepo.CreateUserIfAbsent(user); err != nil {
		return err
	}

	if _, err := h.ScoreRepo.GiveScore(user, session.Key()); err != nil {
		return err
	}

	name := utils.DisplayName(user.Username, user.FirstName)
	bot.SendMessage(chatID, CorrectAnswerMessage(name))
	logger.Info("Correct answer", "chat_id", chatID, "player", name, "session_key", session.Key())

	asked, err := h.QuizRepo.CountQuestions(session.Key())
	if err != nil {
		return err
	}
	if asked >= int64(h.Config.QuestionsPerRound) {
		if err := h.RoomRepo.SetActive(chatID, false); err != nil {
			return err
		}
		return h.finishRound(chatID, bot)
	}

	return h.askQuestion(session, bot, false)
}

// askQuestion draws a trivia entry, records it under the session and
// announces it.
func (h *HandlerManager) askQuestion(session *models.QuizSession, bot BotInterface, opening bool) error {
	trivia, err := h.QuizRepo.RandomTrivia()
	if err != nil {
		return err
	}

	if _, err := h.QuizRepo.CreateQuestion(session, trivia.Question, trivia.Answer); err != nil {
		return err
	}

	text := QuestionMessage(trivia.Question)
	if opening {
		text = StartMessage(trivia.Question)
	}
	bot.SendMessage(session.ChatID, text)
	return nil
}

// finishRound posts the final tally for the group's latest session.
func (h *HandlerManager) finishRound(chatID int64, bot BotInterface) error {
	session, err := h.QuizRepo.GetLastSession(chatID)
	if err != nil {
		return err
	}

	scores := map[string]int64{}
	score, err := h.ScoreRepo.FindScore(session.Key())
	if err != nil {
		return err
	}
	if score != nil {
		if scores, err = score.ScoreMap(); err != nil {
			return err
		}
	}

	logger.Info("Quiz round finished", "chat_id", chatID, "session_key", session.Key(), "players_scored", len(scores))
	bot.SendMessage(chatID, GameOverMessage(scores))
	return nil
}
