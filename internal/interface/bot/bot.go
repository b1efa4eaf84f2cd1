package bot

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/alyoshka-app/alyoshka/internal/infra/config"
)

const openButtonLabel = "Открыть Алёшку"

var mentionPattern = regexp.MustCompile(`(?i)алёшка|алешка|alyoshka`)

// Bot replies to start commands and name mentions with a button that
// deep-links into the web app. It carries no state and performs no
// validation.
type Bot struct {
	api       *tgbotapi.BotAPI
	webAppURL string
	logger    *slog.Logger
}

// New constructs the bot from configuration.
func New(cfg config.BotConfig, logger *slog.Logger) (*Bot, error) {
	if strings.TrimSpace(cfg.Token) == "" || strings.TrimSpace(cfg.WebAppURL) == "" {
		return nil, errors.New("bot token and web app url must be set")
	}
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:       api,
		webAppURL: cfg.WebAppURL,
		logger:    logger.With("component", "bot"),
	}, nil
}

// Run consumes updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30
	updates := b.api.GetUpdatesChan(updateCfg)

	b.logger.Info("bot started", "username", b.api.Self.UserName)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handle(update)
		}
	}
}

func (b *Bot) handle(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	switch {
	case msg.IsCommand() && msg.Command() == "start":
		b.reply(msg.Chat.ID, "Здравствуйте! Это Алёшка — бабушкин помощник. Откройте приложение:")
	case mentionPattern.MatchString(msg.Text):
		b.reply(msg.Chat.ID, "Нажмите кнопку, чтобы открыть приложение:")
	}
}

func (b *Bot) reply(chatID int64, text string) {
	reply := tgbotapi.NewMessage(chatID, text)
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(openButtonLabel, b.webAppURL),
		),
	)
	if _, err := b.api.Send(reply); err != nil {
		b.logger.Warn("failed to send reply", "chat", chatID, "error", err)
	}
}
