package telegram

import (
	"context"
	"errors"
	"fmt"

	"wager-tracker/internal/core/domain"
	"wager-tracker/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
)

// startWizard begins the three-step creation dialogue. messageID is the
// message to reuse for prompts; 0 posts a fresh one.
func (b *Bot) startWizard(ctx context.Context, chatID int64, actor domain.Actor, messageID int) {
	if !b.roster.IsRegistered(actor.Handle) {
		b.show(chatID, messageID, notAPlayer(b.roster), nil)
		return
	}

	messageID = b.show(chatID, messageID, matchupPrompt(), nil)
	b.saveDialogue(ctx, &domain.Dialogue{
		UserID:    actor.ID,
		ChatID:    chatID,
		Step:      domain.StepAwaitMatchup,
		MessageID: messageID,
	})
}

func notAPlayer(r domain.Roster) string {
	return fmt.Sprintf("❌ Only %s and %s can play.", at(r.ParticipantA), at(r.ParticipantB))
}

func (b *Bot) saveDialogue(ctx context.Context, d *domain.Dialogue) {
	d.UpdatedAt = b.now().UTC()
	if err := b.sessions.Save(ctx, d); err != nil {
		b.log.Error().Err(err).Int64("user_id", d.UserID).Str("step", string(d.Step)).Msg("failed to save dialogue")
	}
}

func (b *Bot) endDialogue(ctx context.Context, userID int64) {
	if err := b.sessions.Delete(ctx, userID); err != nil {
		b.log.Error().Err(err).Int64("user_id", userID).Msg("failed to drop dialogue")
	}
}

// handleText feeds free text into the user's dialogue, if any.
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	d, err := b.sessions.Get(ctx, msg.From.ID)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", msg.From.ID).Msg("failed to load dialogue")
		return
	}
	if d == nil {
		b.log.Debug().Int64("user_id", msg.From.ID).Msg("text outside a dialogue ignored")
		return
	}

	b.deleteMessage(msg.Chat.ID, msg.MessageID)
	actor := actorOf(msg.From)

	switch d.Step {
	case domain.StepAwaitMatchup:
		b.onMatchup(ctx, actor, d, msg.Text)
	case domain.StepAwaitOdds, domain.StepEditOdds:
		b.onOdds(ctx, actor, d, msg.Text)
	case domain.StepAwaitStake, domain.StepEditStake:
		stake, err := ParseStake(msg.Text)
		if err != nil {
			b.reprompt(ctx, d, err)
			return
		}
		b.onStake(ctx, actor, d, stake)
	}
}

func (b *Bot) onMatchup(ctx context.Context, actor domain.Actor, d *domain.Dialogue, text string) {
	a, bName, err := ParseMatchup(text)
	if err != nil {
		b.show(d.ChatID, d.MessageID, withError(err, matchupPrompt()), nil)
		return
	}

	w, err := b.wagers.Create(ctx, ports.CreateWagerRequest{Maker: actor, OutcomeA: a, OutcomeB: bName})
	if err != nil {
		b.show(d.ChatID, d.MessageID, withError(errors.New(b.userMessage(err, "create")), matchupPrompt()), nil)
		return
	}

	d.Step = domain.StepAwaitOdds
	d.WagerID = w.ID
	b.show(d.ChatID, d.MessageID, oddsPrompt(w), nil)
	b.saveDialogue(ctx, d)
}

func (b *Bot) onOdds(ctx context.Context, actor domain.Actor, d *domain.Dialogue, text string) {
	w, err := b.wagers.Get(ctx, d.WagerID)
	if err != nil {
		b.abandon(ctx, d, err, "get")
		return
	}

	prompt := oddsPrompt(w)
	if d.Step == domain.StepEditOdds {
		prompt = editOddsPrompt(w)
	}

	odds, err := ParseOdds(text)
	if err != nil {
		b.show(d.ChatID, d.MessageID, withError(err, prompt), nil)
		return
	}

	if d.Step == domain.StepAwaitOdds {
		if w, err = b.wagers.SetOdds(ctx, actor, d.WagerID, odds); err != nil {
			b.show(d.ChatID, d.MessageID, withError(errors.New(b.userMessage(err, "set_odds")), prompt), nil)
			return
		}
		d.Step = domain.StepAwaitStake
	} else {
		d.PendingOdds = &odds
		d.Step = domain.StepEditStake
	}

	b.show(d.ChatID, d.MessageID, stakePrompt(w, odds), ptr(stakeKeyboard(d.WagerID)))
	b.saveDialogue(ctx, d)
}

// onStake publishes the draft or applies the edited terms, then replaces
// the prompt with the wager card.
func (b *Bot) onStake(ctx context.Context, actor domain.Actor, d *domain.Dialogue, stake decimal.Decimal) {
	var (
		w   *domain.Wager
		err error
		op  = "publish"
	)
	if d.Step == domain.StepEditStake && d.PendingOdds != nil {
		op = "edit"
		w, err = b.wagers.EditTerms(ctx, actor, d.WagerID, *d.PendingOdds, stake)
	} else {
		w, err = b.wagers.Publish(ctx, actor, d.WagerID, stake)
	}
	if err != nil {
		b.reprompt(ctx, d, errors.New(b.userMessage(err, op)))
		return
	}

	b.endDialogue(ctx, d.UserID)
	b.show(d.ChatID, d.MessageID, renderCard(w), cardKeyboard(w))
}

// reprompt shows err above the stake prompt of the dialogue's wager.
func (b *Bot) reprompt(ctx context.Context, d *domain.Dialogue, cause error) {
	w, err := b.wagers.Get(ctx, d.WagerID)
	if err != nil {
		b.abandon(ctx, d, err, "get")
		return
	}
	odds, _ := w.Odds()
	if d.PendingOdds != nil {
		odds = *d.PendingOdds
	}
	b.show(d.ChatID, d.MessageID, withError(cause, stakePrompt(w, odds)), ptr(stakeKeyboard(d.WagerID)))
}

// abandon ends a dialogue whose wager can no longer be loaded.
func (b *Bot) abandon(ctx context.Context, d *domain.Dialogue, err error, op string) {
	b.endDialogue(ctx, d.UserID)
	b.show(d.ChatID, d.MessageID, "❌ "+esc(b.userMessage(err, op)), nil)
}
