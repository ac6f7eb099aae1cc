package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"

	"github.com/sangpham2710/rekbot/internal/embed"
)

const parseModeMarkdownV2 = "MarkdownV2"

// MessageHandler is called when a message is received from an allowed user
type MessageHandler func(ctx context.Context, chatID int64, userID int64, text string)

// CommandInfo is one entry of the bot's command menu
type CommandInfo struct {
	Name        string
	Description string
}

// Bot wraps the Telegram bot functionality
type Bot struct {
	bot       *gotgbot.Bot
	updater   *ext.Updater
	allowed   func(userID int64) bool
	handler   MessageHandler
	logger    *slog.Logger
}

// New creates a new Telegram bot. A nil allowed func lets everyone in.
func New(token string, allowed func(userID int64) bool, logger *slog.Logger) (*Bot, error) {
	// Create HTTP client with longer timeout for long-polling
	httpClient := http.Client{
		Timeout: 60 * time.Second,
	}

	bot, err := gotgbot.NewBot(token, &gotgbot.BotOpts{
		BotClient: &gotgbot.BaseBotClient{
			Client: httpClient,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating bot: %w", err)
	}

	return &Bot{
		bot:     bot,
		allowed: allowed,
		logger:  logger,
	}, nil
}

// SetHandler sets the message handler function
func (b *Bot) SetHandler(h MessageHandler) {
	b.handler = h
}

// Start begins polling for updates and blocks until context is cancelled
func (b *Bot) Start(ctx context.Context) error {
	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(bot *gotgbot.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			b.logger.Error("dispatcher error", "error", err)
			return ext.DispatcherActionNoop
		},
	})

	b.updater = ext.NewUpdater(dispatcher, nil)

	dispatcher.AddHandler(handlers.NewMessage(nil, b.handleMessage))

	err := b.updater.StartPolling(b.bot, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &gotgbot.GetUpdatesOpts{
			Timeout:        30,
			AllowedUpdates: []string{"message"},
			RequestOpts: &gotgbot.RequestOpts{
				Timeout: 60 * time.Second,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("starting polling: %w", err)
	}

	b.logger.Info("telegram bot started", "username", b.bot.Username)

	<-ctx.Done()

	b.updater.Stop()
	b.logger.Info("telegram bot stopped")

	return nil
}

// handleMessage processes incoming messages. The dispatcher runs each
// update in its own goroutine.
func (b *Bot) handleMessage(bot *gotgbot.Bot, ctx *ext.Context) error {
	msg := ctx.EffectiveMessage
	if msg == nil || msg.Text == "" || msg.From == nil {
		return nil
	}

	userID := msg.From.Id
	chatID := msg.Chat.Id

	if b.allowed != nil && !b.allowed(userID) {
		b.logger.Debug("ignoring message from non-allowed user",
			"user_id", userID,
			"chat_id", chatID,
			"username", msg.From.Username,
		)
		return nil
	}

	if b.handler != nil {
		b.handler(context.Background(), chatID, userID, msg.Text)
	}
	return nil
}

// SendMessage sends a plain text message to a chat
func (b *Bot) SendMessage(chatID int64, text string) error {
	_, err := b.bot.SendMessage(chatID, text, nil)
	return err
}

// SendEnvelope renders env and sends it, as a photo with a caption when the
// envelope carries an image.
func (b *Bot) SendEnvelope(chatID int64, env embed.Envelope) error {
	text := RenderEnvelope(env)

	if env.Image != nil {
		_, err := b.bot.SendPhoto(chatID, gotgbot.InputFileByURL(env.Image.URL), &gotgbot.SendPhotoOpts{
			Caption:   text,
			ParseMode: parseModeMarkdownV2,
		})
		return err
	}

	_, err := b.bot.SendMessage(chatID, text, &gotgbot.SendMessageOpts{
		ParseMode: parseModeMarkdownV2,
	})
	return err
}

// RegisterCommands publishes the command menu to Telegram
func (b *Bot) RegisterCommands(cmds []CommandInfo) error {
	botCmds := make([]gotgbot.BotCommand, len(cmds))
	for i, c := range cmds {
		botCmds[i] = gotgbot.BotCommand{
			Command:     c.Name,
			Description: c.Description,
		}
	}
	if _, err := b.bot.SetMyCommands(botCmds, nil); err != nil {
		return fmt.Errorf("setting commands: %w", err)
	}
	b.logger.Info("registered bot commands", "count", len(botCmds))
	return nil
}

// startTyping sends a typing indicator
func (b *Bot) startTyping(chatID int64) {
	_, _ = b.bot.SendChatAction(chatID, "typing", nil)
}

// TypingLoop starts a goroutine that sends typing indicators every 4 seconds
// Returns a cancel function to stop the loop
func (b *Bot) TypingLoop(chatID int64) func() {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		ticker := time.NewTicker(4 * time.Second)
		defer ticker.Stop()

		b.startTyping(chatID)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.startTyping(chatID)
			}
		}
	}()

	return cancel
}
