package domain

import "github.com/shopspring/decimal"

// Payout is the signed amount each party gains (positive) or loses
// (negative) on a settled wager. Maker + Taker is always zero.
type Payout struct {
	Maker decimal.Decimal `json:"maker_payout"`
	Taker decimal.Decimal `json:"taker_payout"`
}

// Settle computes payouts from the taker's perspective: the taker backed
// chosen at oddsChosen and the maker laid it.
//
//	VOID            -> (0, 0)
//	result == chosen -> taker +stake*(odds-1), maker the negation
//	otherwise        -> taker -stake, maker +stake
//
// No rounding is applied.
func Settle(stake, oddsChosen decimal.Decimal, chosen Side, result Result) Payout {
	if result == ResultVoid {
		return Payout{Maker: decimal.Zero, Taker: decimal.Zero}
	}
	if string(result) == string(chosen) {
		win := stake.Mul(oddsChosen.Sub(decimal.NewFromInt(1)))
		return Payout{Maker: win.Neg(), Taker: win}
	}
	return Payout{Maker: stake, Taker: stake.Neg()}
}
