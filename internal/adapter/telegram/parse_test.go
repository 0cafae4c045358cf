package telegram

import (
	"testing"

	"wager-tracker/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		a, b  string
		ok    bool
	}{
		{"simple", "Team1 vs Team2", "Team1", "Team2", true},
		{"case insensitive", "Navi VS Spirit", "Navi", "Spirit", true},
		{"dotted", "inz vs. troolz", "inz", "troolz", true},
		{"multi word", "  Real Madrid   vs  FC Barcelona ", "Real Madrid", "FC Barcelona", true},
		{"no separator", "Team1 - Team2", "", "", false},
		{"missing side", "Team1 vs ", "", "", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, err := ParseMatchup(tt.input)
			if !tt.ok {
				assert.ErrorIs(t, err, errMatchupFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.a, a)
			assert.Equal(t, tt.b, b)
		})
	}
}

func TestParseOdds(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		a, b    string
		wantErr error
	}{
		{"dot decimals", "1.50 2.40", "1.5", "2.4", nil},
		{"comma decimals", "1,50 2,40", "1.5", "2.4", nil},
		{"integers", "2 3", "2", "3", nil},
		{"percent", "40%", "2.5", "1.67", nil},
		{"percent with comma", "33,3 %", "3", "1.5", nil},
		{"zero odds", "0 2", "", "", domain.ErrInvalidOdds},
		{"negative odds", "-1.5 2", "", "", domain.ErrInvalidOdds},
		{"percent at bound", "100%", "", "", domain.ErrInvalidPercent},
		{"one value", "1.50", "", "", errOddsFormat},
		{"words", "one two", "", "", errOddsFormat},
		{"bad percent", "abc%", "", "", errOddsFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			odds, err := ParseOdds(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, odds.A.Equal(decimal.RequireFromString(tt.a)), "A = %s", odds.A)
			assert.True(t, odds.B.Equal(decimal.RequireFromString(tt.b)), "B = %s", odds.B)
		})
	}
}

func TestParseStake(t *testing.T) {
	stake, err := ParseStake("1000")
	require.NoError(t, err)
	assert.True(t, stake.Equal(decimal.NewFromInt(1000)))

	stake, err = ParseStake("250,555")
	require.NoError(t, err)
	assert.Equal(t, "250.56", stake.String())

	_, err = ParseStake("0")
	assert.ErrorIs(t, err, domain.ErrInvalidStake)

	_, err = ParseStake("a lot")
	assert.ErrorIs(t, err, errStakeFormat)
}

func TestParseCallback(t *testing.T) {
	tests := []struct {
		data string
		want callbackData
	}{
		{"menu_create", callbackData{Action: cbMenu, Arg: "create"}},
		{"stats_7d", callbackData{Action: cbStats, Arg: "7d"}},
		{"reset_confirm", callbackData{Action: cbReset, Arg: "confirm"}},
		{"take_7", callbackData{Action: cbTake, WagerID: 7}},
		{"side_7_A", callbackData{Action: cbSide, WagerID: 7, Arg: "A"}},
		{"reresult_12_VOID", callbackData{Action: cbReresult, WagerID: 12, Arg: "VOID"}},
		{"stake_3_1500", callbackData{Action: cbStake, WagerID: 3, Arg: "1500"}},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, err := parseCallback(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.data, got.String())
		})
	}
}

func TestParseCallback_Malformed(t *testing.T) {
	for _, data := range []string{
		"",
		"take",
		"take_x",
		"take_0",
		"take_7_A",
		"side_7",
		"result_7_",
		"menu_a_b",
		"dance_7",
	} {
		t.Run(data, func(t *testing.T) {
			_, err := parseCallback(data)
			assert.Error(t, err)
		})
	}
}
