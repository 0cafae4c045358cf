package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOdds    = errors.New("odds must both be greater than zero")
	ErrInvalidPercent = errors.New("win percentage must be between 0 and 100 exclusive")
	ErrInvalidStake   = errors.New("stake must be greater than zero")
)

var hundred = decimal.NewFromInt(100)

// Odds is a validated pair of decimal odds for sides A and B.
type Odds struct {
	A decimal.Decimal `json:"a"`
	B decimal.Decimal `json:"b"`
}

// NewOdds builds an odds pair. Both values must be strictly positive.
func NewOdds(a, b decimal.Decimal) (Odds, error) {
	if !a.IsPositive() || !b.IsPositive() {
		return Odds{}, ErrInvalidOdds
	}
	return Odds{A: a, B: b}, nil
}

// OddsFromPercent derives fair odds from the probability p (percent) that
// side A wins: A = round(100/p, 2), B = round(100/(100-p), 2).
func OddsFromPercent(p decimal.Decimal) (Odds, error) {
	if !p.IsPositive() || p.GreaterThanOrEqual(hundred) {
		return Odds{}, ErrInvalidPercent
	}
	a := hundred.Div(p).Round(2)
	b := hundred.Div(hundred.Sub(p)).Round(2)
	return NewOdds(a, b)
}

// For returns the odds of the given side.
func (o Odds) For(side Side) decimal.Decimal {
	if side == SideB {
		return o.B
	}
	return o.A
}

// NormalizeStake rounds a stake to two decimal places and rejects
// non-positive values.
func NormalizeStake(stake decimal.Decimal) (decimal.Decimal, error) {
	rounded := stake.Round(2)
	if !rounded.IsPositive() {
		return decimal.Zero, ErrInvalidStake
	}
	return rounded, nil
}
