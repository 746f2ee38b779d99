package telegram

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mayones/quizbot/internal/config"
	"github.com/mayones/quizbot/internal/handlers"
	"github.com/mayones/quizbot/internal/middleware"
	"github.com/mayones/quizbot/internal/repositories"
	"github.com/mayones/quizbot/pkg/logger"
	"gorm.io/gorm"
)

const numWorkers = 10

type Bot struct {
	api      *tgbotapi.BotAPI
	config   *config.Config
	db       *gorm.DB
	handlers *handlers.HandlerManager
	limiter  *middleware.RateLimiter

	// Worker pool; updates are hashed by chat so one group's updates
	// stay ordered.
	workerChans []chan tgbotapi.Update
}

func InitBot(cfg *config.Config, db *gorm.DB) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	if cfg.AppEnv == "development" {
		api.Debug = true
	}

	logger.Info("Authorized on account", "username", api.Self.UserName)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	quizRepo := repositories.NewQuizRepository(db)
	scoreRepo := repositories.NewScoreRepository(db)

	handlerMgr := handlers.NewHandlerManager(cfg, db, userRepo, roomRepo, quizRepo, scoreRepo)

	bot := &Bot{
		api:         api,
		config:      cfg,
		db:          db,
		handlers:    handlerMgr,
		limiter:     middleware.NewRateLimiter(cfg.RateLimitPerChat, time.Minute),
		workerChans: make([]chan tgbotapi.Update, numWorkers),
	}

	for i := 0; i < numWorkers; i++ {
		bot.workerChans[i] = make(chan tgbotapi.Update, 100)
		go bot.startWorker(bot.workerChans[i])
	}

	go bot.startUpdateListener()

	return bot, nil
}

func (b *Bot) startUpdateListener() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for {
		logger.Info("Starting update listener...")
		updates := b.api.GetUpdatesChan(u)

		for update := range updates {
			if update.Message == nil || update.Message.From == nil {
				continue
			}

			// Hashed dispatch keeps per-chat processing ordered, which
			// also serializes competing joins within one group.
			workerIdx := update.Message.Chat.ID % int64(len(b.workerChans))
			if workerIdx < 0 {
				workerIdx = -workerIdx
			}
			b.workerChans[workerIdx] <- update
		}

		logger.Warn("Update channel closed. Restarting in 5 seconds...")
		time.Sleep(5 * time.Second)
	}
}

func (b *Bot) startWorker(updates chan tgbotapi.Update) {
	for update := range updates {
		b.handleUpdate(update)
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic in handleUpdate", "error", r)
		}
	}()

	if update.Message != nil {
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	logger.Debug("Received message",
		"chat_id", chatID,
		"user_id", message.From.ID,
		"is_command", message.IsCommand(),
	)

	if message.Chat.IsPrivate() {
		b.sendMessage(chatID, MsgPrivateChat)
		return
	}

	if message.IsCommand() {
		if !b.limiter.Allow(chatID) {
			logger.Warn("Chat rate limited", "chat_id", chatID)
			b.sendMessage(chatID, handlers.MsgSlowDown)
			return
		}
		b.handleCommand(message)
		return
	}

	// Plain group chatter doubles as answer submission while a round
	// is running.
	if err := b.handlers.HandleAnswer(message, b); err != nil {
		logger.Error("Failed to handle answer", "error", err, "chat_id", chatID)
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	var err error
	switch message.Command() {
	case "join":
		err = b.handlers.HandleJoin(message, b)
	case "mulai":
		err = b.handlers.HandleStartGame(message, b)
	case "berhenti":
		err = b.handlers.HandleStopGame(message, b)
	case "skor":
		err = b.handlers.HandleScores(message, b)
	case "start", "help":
		b.sendMessage(chatID, MsgHelp)
	}

	// Fail loud, no retry: store failures end the interaction with a
	// single fallback reply.
	if err != nil {
		logger.Error("Command failed", "command", message.Command(), "chat_id", chatID, "error", err)
		b.sendMessage(chatID, MsgInternalError)
	}
}

const (
	MsgPrivateChat   = "Aku cuma main di grup. Undang aku ke grup kamu ya!"
	MsgHelp          = "Perintah:\n/join - ikutan main\n/mulai - mulai game\n/skor - lihat skor\n/berhenti - berhenti main"
	MsgInternalError = "Aduh, ada yang error. Coba lagi nanti ya ~"
)

func (b *Bot) sendMessage(chatID int64, text string) int {
	msg := tgbotapi.NewMessage(chatID, text)

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		sentMsg, err := b.api.Send(msg)
		if err != nil {
			logger.Error("Failed to send message", "error", err, "chat_id", chatID, "attempt", i+1)

			// Transient network errors get a short backoff and retry
			if strings.Contains(err.Error(), "connection reset") ||
				strings.Contains(err.Error(), "timeout") ||
				strings.Contains(err.Error(), "network is unreachable") {
				time.Sleep(time.Duration(i+1) * time.Second)
				continue
			}
			return 0
		}
		return sentMsg.MessageID
	}
	return 0
}

// SendMessage exposes message sending to the handler layer.
func (b *Bot) SendMessage(chatID int64, text string) int {
	return b.sendMessage(chatID, text)
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
	logger.Info("Bot stopped receiving updates")
}
