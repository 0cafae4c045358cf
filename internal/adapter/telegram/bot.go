package telegram

import (
	"context"
	"errors"
	"strconv"
	"time"

	"wager-tracker/internal/core/domain"
	"wager-tracker/internal/core/ports"
	"wager-tracker/pkg/apperror"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

const (
	debounceTTL    = 2 * time.Second
	recentWindow   = 24 * time.Hour
	genericFailure = "Something went wrong, please try again."
)

// Sender is the subset of *tgbotapi.BotAPI the bot needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Debouncer drops repeated button presses.
type Debouncer interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Bot is the chat front-end. All decisions about legal transitions are
// left to the wager service; the bot only renders and routes.
type Bot struct {
	sender   Sender
	wagers   ports.WagerService
	stats    ports.StatisticsService
	sessions ports.SessionStore
	debounce Debouncer
	roster   domain.Roster
	log      zerolog.Logger
	now      func() time.Time
}

// NewBot creates a new Bot. debounce may be nil.
func NewBot(
	sender Sender,
	wagers ports.WagerService,
	stats ports.StatisticsService,
	sessions ports.SessionStore,
	debounce Debouncer,
	roster domain.Roster,
	log zerolog.Logger,
) *Bot {
	return &Bot{
		sender:   sender,
		wagers:   wagers,
		stats:    stats,
		sessions: sessions,
		debounce: debounce,
		roster:   roster,
		log:      log.With().Str("component", "telegram").Logger(),
		now:      time.Now,
	}
}

// Run handles updates one at a time until ctx is done or updates closes.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, upd)
		}
	}
}

// HandleUpdate dispatches one update. Panics are logged, not propagated,
// so a bad update cannot stop the polling loop.
func (b *Bot) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Interface("panic", r).Int("update_id", upd.UpdateID).Msg("panic while handling update")
		}
	}()

	switch {
	case upd.CallbackQuery != nil:
		b.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil && upd.Message.From != nil && upd.Message.Chat != nil:
		if upd.Message.IsCommand() {
			b.handleCommand(ctx, upd.Message)
			return
		}
		b.handleText(ctx, upd.Message)
	}
}

func actorOf(u *tgbotapi.User) domain.Actor {
	return domain.Actor{ID: u.ID, Handle: u.UserName}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "help":
		b.send(msg.Chat.ID, welcomeText(b.roster), ptr(mainMenu()))
	case "new", "create_match":
		b.deleteMessage(msg.Chat.ID, msg.MessageID)
		b.startWizard(ctx, msg.Chat.ID, actorOf(msg.From), 0)
	case "active":
		b.showActive(ctx, msg.Chat.ID, 0, msg.From.UserName)
	case "recent":
		b.showRecent(ctx, msg.Chat.ID, 0)
	case "stats":
		b.showStandings(ctx, msg.Chat.ID, 0, domain.PeriodAll)
	case "abort":
		if err := b.sessions.Delete(ctx, msg.From.ID); err != nil {
			b.log.Error().Err(err).Int64("user_id", msg.From.ID).Msg("failed to drop dialogue")
		}
		b.send(msg.Chat.ID, "Dialogue closed.", nil)
	default:
		b.send(msg.Chat.ID, "Unknown command. Use /start to open the menu.", nil)
	}
}

// send posts a new message and returns its id, or 0 on failure.
func (b *Bot) send(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) int {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	sent, err := b.sender.Send(msg)
	if err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send message")
		return 0
	}
	return sent.MessageID
}

// show edits messageID in place, or sends a new message when it is 0.
// It returns the id of the message now showing text.
func (b *Bot) show(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) int {
	if messageID == 0 {
		return b.send(chatID, text, markup)
	}

	var edit tgbotapi.EditMessageTextConfig
	if markup != nil {
		edit = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *markup)
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := b.sender.Request(edit); err != nil {
		b.log.Warn().Err(err).Int64("chat_id", chatID).Int("message_id", messageID).Msg("failed to edit message")
	}
	return messageID
}

func (b *Bot) deleteMessage(chatID int64, messageID int) {
	if _, err := b.sender.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		b.log.Debug().Err(err).Int64("chat_id", chatID).Int("message_id", messageID).Msg("failed to delete message")
	}
}

func (b *Bot) answer(cb *tgbotapi.CallbackQuery, text string, alert bool) {
	cfg := tgbotapi.NewCallback(cb.ID, text)
	cfg.ShowAlert = alert
	if _, err := b.sender.Request(cfg); err != nil {
		b.log.Debug().Err(err).Str("callback_id", cb.ID).Msg("failed to answer callback")
	}
}

// userMessage turns a service error into text for the chat. Faults are
// logged here and shown generically.
func (b *Bot) userMessage(err error, op string) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && apperror.IsUserRejection(err) {
		return appErr.Message
	}
	b.log.Error().Err(err).Str("op", op).Msg("chat operation failed")
	return genericFailure
}

func (b *Bot) showActive(ctx context.Context, chatID int64, messageID int, viewer string) {
	wagers, err := b.wagers.ListActive(ctx)
	if err != nil {
		b.show(chatID, messageID, esc(b.userMessage(err, "list_active")), nil)
		return
	}
	b.show(chatID, messageID, renderActive(wagers), ptr(activeKeyboard(wagers, viewer)))
}

func (b *Bot) showRecent(ctx context.Context, chatID int64, messageID int) {
	wagers, err := b.wagers.ListRecent(ctx, recentWindow)
	if err != nil {
		b.show(chatID, messageID, esc(b.userMessage(err, "list_recent")), nil)
		return
	}
	b.show(chatID, messageID, renderRecent(wagers), ptr(tgbotapi.NewInlineKeyboardMarkup(backRow())))
}

func (b *Bot) showStandings(ctx context.Context, chatID int64, messageID int, period domain.StatsPeriod) {
	standings, err := b.stats.Standings(ctx, period)
	if err != nil {
		b.show(chatID, messageID, esc(b.userMessage(err, "standings")), nil)
		return
	}
	b.show(chatID, messageID, renderStandings(period, b.now(), standings), ptr(statsKeyboard()))
}

func ptr[T any](v T) *T { return &v }

func userKey(userID int64, data string) string {
	return strconv.FormatInt(userID, 10) + ":" + data
}
