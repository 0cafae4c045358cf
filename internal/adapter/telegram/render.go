package telegram

import (
	"fmt"
	"html"
	"strings"
	"time"

	"wager-tracker/internal/core/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
)

// presetStakes are offered as buttons on the stake step.
var presetStakes = []int64{500, 1000, 1500, 2000}

var statusIcons = map[domain.WagerStatus]string{
	domain.WagerStatusDraft:    "📝",
	domain.WagerStatusOpen:     "📣",
	domain.WagerStatusTaken:    "✅",
	domain.WagerStatusFinished: "🏁",
	domain.WagerStatusCanceled: "❌",
}

var periodTitles = map[domain.StatsPeriod]string{
	domain.PeriodToday: "Today",
	domain.PeriodWeek:  "7 days",
	domain.PeriodMonth: "30 days",
	domain.PeriodAll:   "All time",
}

func esc(s string) string { return html.EscapeString(s) }

func at(handle string) string {
	return "@" + esc(strings.TrimPrefix(handle, "@"))
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + d.StringFixed(2)
	}
	return d.StringFixed(2)
}

func resultName(w *domain.Wager) string {
	if w.Result == nil {
		return ""
	}
	switch *w.Result {
	case domain.ResultA:
		return w.OutcomeAName
	case domain.ResultB:
		return w.OutcomeBName
	}
	return "VOID"
}

func welcomeText(r domain.Roster) string {
	return fmt.Sprintf("<b>Wagers between %s and %s</b>\n\n"+
		"1. The maker posts a line: matchup, odds and stake.\n"+
		"2. The taker picks a side.\n"+
		"3. Either player records the result.\n",
		at(r.ParticipantA), at(r.ParticipantB))
}

// renderCard is the message body describing a wager in its current state.
func renderCard(w *domain.Wager) string {
	var b strings.Builder

	icon, ok := statusIcons[w.Status]
	if !ok {
		icon = "❓"
	}
	fmt.Fprintf(&b, "%s <b>Wager #%d</b>\n\n", icon, w.ID)
	if w.Label != nil && *w.Label != "" {
		fmt.Fprintf(&b, "%s\n", esc(*w.Label))
	}
	fmt.Fprintf(&b, "Match: %s vs %s\n", esc(w.OutcomeAName), esc(w.OutcomeBName))
	if odds, ok := w.Odds(); ok {
		fmt.Fprintf(&b, "Odds: %s %s | %s %s\n",
			esc(w.OutcomeAName), money(odds.A), esc(w.OutcomeBName), money(odds.B))
	}
	if w.Stake != nil {
		fmt.Fprintf(&b, "Stake: %s\n", money(*w.Stake))
	}
	fmt.Fprintf(&b, "\nMaker: %s\nStatus: %s\n", at(w.MakerHandle), w.Status)

	switch w.Status {
	case domain.WagerStatusOpen:
		fmt.Fprintf(&b, "\n👉 %s, pick a side", at(w.TakerHandle))
	case domain.WagerStatusTaken:
		fmt.Fprintf(&b, "\nTaken by: %s\n", at(w.TakerHandle))
		if w.ChosenSide != nil {
			fmt.Fprintf(&b, "Side: %s\n", esc(w.OutcomeName(*w.ChosenSide)))
		}
		b.WriteString("Waiting for the result")
	case domain.WagerStatusFinished:
		fmt.Fprintf(&b, "\nWinner: %s\n\n", esc(resultName(w)))
		fmt.Fprintf(&b, "%s %s\n%s %s\n",
			at(w.MakerHandle), signed(w.MakerPayout), at(w.TakerHandle), signed(w.TakerPayout))
	}
	return b.String()
}

// cardKeyboard offers the next actions for the wager's status. Nil means no
// buttons.
func cardKeyboard(w *domain.Wager) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	switch w.Status {
	case domain.WagerStatusOpen:
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("✅ Pick a side", wagerCallback(cbTake, w.ID, "")),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("✏️ Edit", wagerCallback(cbEdit, w.ID, "")),
				tgbotapi.NewInlineKeyboardButtonData("🗑 Cancel", wagerCallback(cbCancel, w.ID, "")),
			),
		)
	case domain.WagerStatusTaken:
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🏁 Record result", wagerCallback(cbSettle, w.ID, "")),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📌 Active wagers", "menu_active"),
			),
		)
	case domain.WagerStatusFinished:
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("♻️ Change result", wagerCallback(cbResettle, w.ID, "")),
			),
		)
	default:
		return nil
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

func mainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ New wager", "menu_create"),
			tgbotapi.NewInlineKeyboardButtonData("📌 Active wagers", "menu_active"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗓 Last 24 hours", "menu_recent"),
			tgbotapi.NewInlineKeyboardButtonData("📊 Statistics", "menu_stats"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("♻️ Reset statistics", "menu_reset"),
		),
	)
}

func backRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Main menu", "menu_back"),
	)
}

func sideKeyboard(w *domain.Wager) tgbotapi.InlineKeyboardMarkup {
	odds, _ := w.Odds()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("🟢 %s (%s)", w.OutcomeAName, money(odds.A)), wagerCallback(cbSide, w.ID, string(domain.SideA)))),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("🔵 %s (%s)", w.OutcomeBName, money(odds.B)), wagerCallback(cbSide, w.ID, string(domain.SideB)))),
	)
}

// resultKeyboard lists the three results; action is cbResult or cbReresult.
func resultKeyboard(w *domain.Wager, action string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"🏆 "+w.OutcomeAName+" won", wagerCallback(action, w.ID, string(domain.ResultA)))),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"🏆 "+w.OutcomeBName+" won", wagerCallback(action, w.ID, string(domain.ResultB)))),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			"🚫 VOID", wagerCallback(action, w.ID, string(domain.ResultVoid)))),
	)
}

func stakeKeyboard(wagerID int64) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(presetStakes))
	for _, s := range presetStakes {
		amount := fmt.Sprint(s)
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(amount, wagerCallback(cbStake, wagerID, amount)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(buttons[:2]...),
		tgbotapi.NewInlineKeyboardRow(buttons[2:]...),
	)
}

func statsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(periodTitles[domain.PeriodToday], "stats_"+string(domain.PeriodToday)),
			tgbotapi.NewInlineKeyboardButtonData(periodTitles[domain.PeriodWeek], "stats_"+string(domain.PeriodWeek)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(periodTitles[domain.PeriodMonth], "stats_"+string(domain.PeriodMonth)),
			tgbotapi.NewInlineKeyboardButtonData(periodTitles[domain.PeriodAll], "stats_"+string(domain.PeriodAll)),
		),
		backRow(),
	)
}

func resetConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Confirm", "reset_confirm"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Keep", "menu_back"),
		),
	)
}

func matchupPrompt() string {
	return "<b>Step 1/3: Matchup</b>\n\nSend the matchup as <code>Team1 vs Team2</code>."
}

func oddsPrompt(w *domain.Wager) string {
	return fmt.Sprintf("<b>Step 2/3: Odds</b>\n\nMatch: %s vs %s\n\n"+
		"Send the odds in this order:\n%s, then %s\n\n"+
		"Example: <code>1.50 2.40</code> or a win percentage for %s: <code>40%%</code>",
		esc(w.OutcomeAName), esc(w.OutcomeBName),
		esc(w.OutcomeAName), esc(w.OutcomeBName), esc(w.OutcomeAName))
}

func editOddsPrompt(w *domain.Wager) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✏️ <b>Editing wager #%d</b>\n\n", w.ID)
	if odds, ok := w.Odds(); ok {
		fmt.Fprintf(&b, "Current odds: %s %s | %s %s\n\n",
			esc(w.OutcomeAName), money(odds.A), esc(w.OutcomeBName), money(odds.B))
	}
	b.WriteString(oddsPrompt(w))
	return b.String()
}

func stakePrompt(w *domain.Wager, odds domain.Odds) string {
	return fmt.Sprintf("<b>Step 3/3: Stake</b>\n\nMatch: %s vs %s\n"+
		"Odds: %s %s | %s %s\n\nSend the stake or pick one below.",
		esc(w.OutcomeAName), esc(w.OutcomeBName),
		esc(w.OutcomeAName), money(odds.A), esc(w.OutcomeBName), money(odds.B))
}

func withError(err error, prompt string) string {
	return "❌ " + esc(err.Error()) + "\n\n" + prompt
}

func renderActive(wagers []domain.Wager) string {
	if len(wagers) == 0 {
		return "📌 <b>Active wagers</b>\n\nNothing open right now."
	}
	var b strings.Builder
	b.WriteString("📌 <b>Active wagers</b>\n\n")
	for i := range wagers {
		w := &wagers[i]
		fmt.Fprintf(&b, "#%d %s vs %s\nStatus: %s\n\n", w.ID, esc(w.OutcomeAName), esc(w.OutcomeBName), w.Status)
	}
	return b.String()
}

// activeKeyboard offers per-wager shortcuts relevant to the viewer.
func activeKeyboard(wagers []domain.Wager, viewer string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := range wagers {
		w := &wagers[i]
		switch w.Status {
		case domain.WagerStatusTaken:
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("🏁 Result #%d", w.ID), wagerCallback(cbSettle, w.ID, ""))))
		case domain.WagerStatusOpen:
			var row []tgbotapi.InlineKeyboardButton
			if domain.SameHandle(viewer, w.TakerHandle) {
				row = append(row, tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("✅ Pick a side #%d", w.ID), wagerCallback(cbTake, w.ID, "")))
			}
			if domain.SameHandle(viewer, w.MakerHandle) {
				row = append(row, tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("🗑 Cancel #%d", w.ID), wagerCallback(cbCancel, w.ID, "")))
			}
			if len(row) > 0 {
				rows = append(rows, row)
			}
		}
	}
	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func renderRecent(wagers []domain.Wager) string {
	if len(wagers) == 0 {
		return "🗓 <b>Last 24 hours</b>\n\nNo finished wagers."
	}
	var b strings.Builder
	b.WriteString("🗓 <b>Last 24 hours</b>\n\n")
	for i := range wagers {
		w := &wagers[i]
		fmt.Fprintf(&b, "#%d %s vs %s\nWinner: %s\n%s %s | %s %s\n\n",
			w.ID, esc(w.OutcomeAName), esc(w.OutcomeBName), esc(resultName(w)),
			at(w.MakerHandle), signed(w.MakerPayout), at(w.TakerHandle), signed(w.TakerPayout))
	}
	return b.String()
}

func renderStandings(period domain.StatsPeriod, now time.Time, standings []domain.Statistics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 <b>Statistics</b>\n\nPeriod: %s\n", periodTitles[period])
	if from := period.Since(now); from != nil {
		fmt.Fprintf(&b, "%s to %s\n", from.Format("02.01.2006"), now.Format("02.01.2006"))
	}
	b.WriteString("\n")
	for _, s := range standings {
		fmt.Fprintf(&b, "<b>%s</b>\nBalance: %s\nWagers: %d\nWins: %d | Losses: %d\n\n",
			at(s.Handle), money(s.Balance), s.Count, s.Wins, s.Losses)
	}
	return b.String()
}
