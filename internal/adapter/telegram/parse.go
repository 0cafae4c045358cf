package telegram

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"wager-tracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

var (
	errMatchupFormat = errors.New("use the format: Team1 vs Team2")
	errOddsFormat    = errors.New("enter two odds separated by a space, e.g. 1.50 2.40, or a win percentage for the first side, e.g. 40%")
	errStakeFormat   = errors.New("enter the stake as a positive number, e.g. 1000")
)

var matchupRe = regexp.MustCompile(`(?i)^(.+?)\s+vs\.?\s+(.+)$`)

// ParseMatchup splits "Team1 vs Team2" into its two outcome names.
func ParseMatchup(text string) (string, string, error) {
	m := matchupRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", "", errMatchupFormat
	}
	a, b := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	if a == "" || b == "" {
		return "", "", errMatchupFormat
	}
	return a, b, nil
}

// ParseOdds reads either a decimal pair ("1.50 2.40", comma separators
// allowed) or side A's win percentage ("40%").
func ParseOdds(text string) (domain.Odds, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")

	if pct, ok := strings.CutSuffix(text, "%"); ok {
		p, err := decimal.NewFromString(strings.TrimSpace(pct))
		if err != nil {
			return domain.Odds{}, errOddsFormat
		}
		return domain.OddsFromPercent(p)
	}

	fields := strings.Fields(text)
	if len(fields) != 2 {
		return domain.Odds{}, errOddsFormat
	}
	a, errA := decimal.NewFromString(fields[0])
	b, errB := decimal.NewFromString(fields[1])
	if errA != nil || errB != nil {
		return domain.Odds{}, errOddsFormat
	}
	return domain.NewOdds(a, b)
}

// ParseStake reads a positive amount, rounded to cents.
func ParseStake(text string) (decimal.Decimal, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	stake, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, errStakeFormat
	}
	return domain.NormalizeStake(stake)
}

// Callback data prefixes carried by inline buttons.
const (
	cbMenu     = "menu"
	cbStats    = "stats"
	cbReset    = "reset"
	cbTake     = "take"
	cbSide     = "side"
	cbSettle   = "settle"
	cbResult   = "result"
	cbResettle = "resettle"
	cbReresult = "reresult"
	cbCancel   = "cancel"
	cbEdit     = "edit"
	cbStake    = "stake"
)

// callbackData is a decoded inline button payload:
// "<action>_<arg>" for menus and "<action>_<wagerID>[_<arg>]" for wagers.
type callbackData struct {
	Action  string
	WagerID int64
	Arg     string
}

func (d callbackData) String() string {
	if d.WagerID == 0 {
		return d.Action + "_" + d.Arg
	}
	s := d.Action + "_" + strconv.FormatInt(d.WagerID, 10)
	if d.Arg != "" {
		s += "_" + d.Arg
	}
	return s
}

func wagerCallback(action string, wagerID int64, arg string) string {
	return callbackData{Action: action, WagerID: wagerID, Arg: arg}.String()
}

func parseCallback(data string) (callbackData, error) {
	parts := strings.Split(data, "_")
	if len(parts) < 2 {
		return callbackData{}, fmt.Errorf("malformed callback %q", data)
	}

	d := callbackData{Action: parts[0]}
	switch d.Action {
	case cbMenu, cbStats, cbReset:
		if len(parts) != 2 {
			return callbackData{}, fmt.Errorf("malformed callback %q", data)
		}
		d.Arg = parts[1]
		return d, nil
	case cbTake, cbSide, cbSettle, cbResult, cbResettle, cbReresult, cbCancel, cbEdit, cbStake:
	default:
		return callbackData{}, fmt.Errorf("unknown callback action %q", d.Action)
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return callbackData{}, fmt.Errorf("malformed wager id in callback %q", data)
	}
	d.WagerID = id

	needsArg := d.Action == cbSide || d.Action == cbResult || d.Action == cbReresult || d.Action == cbStake
	switch {
	case needsArg && len(parts) == 3 && parts[2] != "":
		d.Arg = parts[2]
	case !needsArg && len(parts) == 2:
	default:
		return callbackData{}, fmt.Errorf("malformed callback %q", data)
	}
	return d, nil
}
