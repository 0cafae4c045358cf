package telegram

import (
	"context"
	"fmt"
	"strings"

	"wager-tracker/internal/core/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
)

// mutating callbacks are debounced per user and payload.
var mutating = map[string]bool{
	cbSide:     true,
	cbResult:   true,
	cbReresult: true,
	cbCancel:   true,
	cbStake:    true,
	cbReset:    true,
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil || cb.Message == nil || cb.Message.Chat == nil {
		b.answer(cb, "", false)
		return
	}

	data, err := parseCallback(cb.Data)
	if err != nil {
		b.log.Debug().Err(err).Int64("user_id", cb.From.ID).Msg("unrecognized callback")
		b.answer(cb, "Unknown button.", true)
		return
	}

	if mutating[data.Action] && b.debounce != nil {
		first, err := b.debounce.Claim(ctx, userKey(cb.From.ID, cb.Data), debounceTTL)
		if err != nil {
			b.log.Warn().Err(err).Msg("debounce unavailable, continuing")
		} else if !first {
			b.answer(cb, "Already processing…", false)
			return
		}
	}

	actor := actorOf(cb.From)
	chatID, messageID := cb.Message.Chat.ID, cb.Message.MessageID

	switch data.Action {
	case cbMenu:
		b.onMenu(ctx, cb, actor, data.Arg)
	case cbStats:
		period, err := domain.ParseStatsPeriod(data.Arg)
		if err != nil {
			b.answer(cb, "Unknown period.", true)
			return
		}
		b.answer(cb, "", false)
		b.showStandings(ctx, chatID, messageID, period)
	case cbReset:
		b.onReset(ctx, cb, actor)
	case cbTake:
		b.onTake(ctx, cb, actor, data.WagerID)
	case cbSide:
		b.onSide(ctx, cb, actor, data)
	case cbSettle, cbResettle:
		b.onResultMenu(ctx, cb, actor, data)
	case cbResult, cbReresult:
		b.onResult(ctx, cb, actor, data)
	case cbCancel:
		w, err := b.wagers.Cancel(ctx, actor, data.WagerID)
		if err != nil {
			b.answer(cb, b.userMessage(err, "cancel"), true)
			return
		}
		b.answer(cb, "Wager canceled.", false)
		b.show(chatID, messageID, renderCard(w), cardKeyboard(w))
	case cbEdit:
		b.onEdit(ctx, cb, actor, data.WagerID)
	case cbStake:
		b.onStakePreset(ctx, cb, actor, data)
	}
}

func (b *Bot) onMenu(ctx context.Context, cb *tgbotapi.CallbackQuery, actor domain.Actor, item string) {
	chatID, messageID := cb.Message.Chat.ID, cb.Message.MessageID

	switch item {
	case "create":
		if !b.roster.IsRegistered(actor.Handle) {
			b.answer(cb, notAPlayer(b.roster), true)
			return
		}
		b.answer(cb, "", false)
		b.startWizard(ctx, chatID, actor, messageID)
	case "active":
		b.answer(cb, "", false)
		b.showActive(ctx, chatID, messageID, actor.Handle)
	case "recent":
		b.answer(cb, "", false)
		b.showRecent(ctx, chatID, messageID)
	case "stats":
		b.answer(cb, "", false)
		b.showStandings(ctx, chatID, messageID, domain.PeriodAll)
	case "reset":
		b.answer(cb, "", false)
		b.show(chatID, messageID, "⚠️ <b>Reset statistics?</b>\n\nAll ledger rows will be removed. This cannot be undone.",
			ptr(resetConfirmKeyboard()))
	case "back":
		b.answer(cb, "", false)
		b.show(chatID, messageID, welcomeText(b.roster), ptr(mainMenu()))
	default:
		b.answer(cb, "Unknown button.", true)
	}
}

func (b *Bot) onReset(ctx context.Context, cb *tgbotapi.CallbackQuery, actor domain.Actor) {
	if !b.roster.IsRegistered(actor.Handle) {
		b.answer(cb, notAPlayer(b.roster), true)
		return
	}
	n, err := b.stats.Reset(ctx)
	if err != nil {
		b.answer(cb, b.userMessage(err, "reset"), true)
		return
	}
	b.answer(cb, "", false)
	b.show(cb.Message.Chat.ID, cb.Message.MessageID,
		fmt.Sprintf("✅ Statistics reset. %d ledger rows removed.", n), ptr(tgbotapi.NewInlineKeyboardMarkup(backRow())))
}

// onTake shows the side picker. Whether the actor may accept is decided
// when a side is chosen.
func (b *Bot) onTake(ctx context.Context, cb *tgbotapi.CallbackQuery, actor domain.Actor, wagerID int64) {
	w, err := b.wagers.Get(ctx, wagerID)
	if err != nil {
		b.answer(cb, b.userMessage(err, "get"), true)
		return
	}
	if !b.roster.Authorize(actor.Handle, w.TakerHandle) {
		b.answer(cb, fmt.Sprintf("Only @%s can pick a side.", strings.TrimPrefix(w.TakerHandle, "@")), true)
		return
	}
	if w.Status != domain.WagerStatusOpen {
		b.answer(cb, "This wager is no longer open.", true)
		return
	}

	b.answer(cb, "", false)
	text := fmt.Sprintf("Pick your side:\n\n<b>%s</b> vs <b>%s</b>\nStake: %s",
		esc(w.OutcomeAName), esc(w.OutcomeBName), money(*w.Stake))
	b.show(cb.Message.Chat.ID, cb.Message.MessageID, text, ptr(sideKeyboard(w)))
}

func (b *Bot) onSide(ctx context.Context, cb *tgbotapi.CallbackQuery, actor domain.Actor, data callbackData) {
	side, err := domain.ParseSide(data.Arg)
	if err != nil {
		b.answer(cb, "Unknown side.", true)
		return
	}
	w, err := b.wagers.Accept(ctx, actor, data.WagerID, side)
	if err != nil {
		b.answer(cb, b.userMessage(err, "accept"), true)
		return
	}
	b.answer(cb, "Wager accepted.", false)
	b.show(cb.Message.Chat.ID, cb.Message.MessageID, renderCard(w), cardKeyboard(w))
}

func (b *Bot) onResultMenu(ctx context.Context, cb *tgbotapi.CallbackQuery, actor domain.Actor, data callbackData) {
	w, err := b.wagers.Get(ctx, data.WagerID)
	if err != nil {
		b.answer(cb, b.userMessage(err, "get"), true)
		return
	}
	if !b.roster.Authorize(actor.Handle, w.MakerHandle) && !b.roster.Authorize(actor.Handle, w.TakerHandle) {
		b.answer(cb, "Only the two players can record a result.", true)
		return
	}

	action, want := cbResult, domain.WagerStatusTaken
	if data.Action == cbResettle {
		action, want = cbReresult, domain.WagerStatusFinished
	}
	if w.Status != want {
		b.answer(cb, fmt.Sprintf("The wager is %s.", w.Status), true)
		return
	}

	b.answer(cb, "", false)
	text := fmt.Sprintf("Record the result:\n\n<b>%s</b> vs <b>%s</b>", esc(w.OutcomeAName), esc(w.OutcomeBName))
	if w.ChosenSide != nil {
		text += "\nTaker backed: " + esc(w.OutcomeName(*w.ChosenSide))
	}
	b.show(cb.Message.Chat.ID, cb.Message.MessageID, text, ptr(resultKeyboard(w, action)))
}

func (b *Bot) onResult(ctx context.Context, cb *tgbotapi.CallbackQuery, actor domain.Actor, data callbackData) {
	result, err := domain.ParseResult(data.Arg)
	if err != nil {
		b.answer(cb, "Unknown result.", true)
		return
	}

	settle, op := b.wagers.Settle, "settle"
	if data.Action == cbReresult {
		settle, op = b.wagers.Resettle, "resettle"
	}
	if _, err := settle(ctx, actor, data.WagerID, result); err != nil {
		b.answer(cb, b.userMessage(err, op), true)
		return
	}

	w, err := b.wagers.Get(ctx, data.WagerID)
	if err != nil {
		b.answer(cb, b.userMessage(err, "get"), true)
		return
	}
	b.answer(cb, "Result recorded.", false)
	b.show(cb.Message.Chat.ID, cb.Message.MessageID, renderCard(w), cardKeyboard(w))
}

// onEdit starts the edit dialogue on an open wager owned by the actor.
func (b *Bot) onEdit(ctx context.Context, cb *tgbotapi.CallbackQuery, actor domain.Actor, wagerID int64) {
	w, err := b.wagers.Get(ctx, wagerID)
	if err != nil {
		b.answer(cb, b.userMessage(err, "get"), true)
		return
	}
	if !b.roster.Authorize(actor.Handle, w.MakerHandle) {
		b.answer(cb, "Only the maker can edit this wager.", true)
		return
	}
	if w.Status != domain.WagerStatusOpen {
		b.answer(cb, "Only an open wager can be edited.", true)
		return
	}

	b.answer(cb, "", false)
	b.show(cb.Message.Chat.ID, cb.Message.MessageID, editOddsPrompt(w), nil)
	b.saveDialogue(ctx, &domain.Dialogue{
		UserID:    actor.ID,
		ChatID:    cb.Message.Chat.ID,
		Step:      domain.StepEditOdds,
		WagerID:   w.ID,
		MessageID: cb.Message.MessageID,
	})
}

func (b *Bot) onStakePreset(ctx context.Context, cb *tgbotapi.CallbackQuery, actor domain.Actor, data callbackData) {
	d, err := b.sessions.Get(ctx, actor.ID)
	if err != nil {
		b.answer(cb, b.userMessage(err, "session"), true)
		return
	}
	if d == nil {
		b.answer(cb, "This dialogue has expired. Start again.", true)
		return
	}
	if d.Step != domain.StepAwaitStake && d.Step != domain.StepEditStake {
		b.answer(cb, "Not expecting a stake right now.", true)
		return
	}
	if d.WagerID != data.WagerID {
		b.answer(cb, "This button belongs to another wager.", true)
		return
	}

	stake, err := decimal.NewFromString(data.Arg)
	if err != nil {
		b.answer(cb, "Unknown stake.", true)
		return
	}
	b.answer(cb, "", false)
	b.onStake(ctx, actor, d, stake)
}
