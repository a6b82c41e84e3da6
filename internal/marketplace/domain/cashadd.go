package domain

import "math"

// CashAddDirection says who adds cash to balance an unequal trade.
type CashAddDirection string

const (
	// CashAddYou: the viewer's item is worth less, so the viewer adds cash.
	CashAddYou CashAddDirection = "you"
	// CashAddThey: the listing owner's side adds cash.
	CashAddThey CashAddDirection = "they"
	CashAddEven CashAddDirection = "even"
)

// CashAdd is the estimated cash payment that balances a trade.
type CashAdd struct {
	Amount    int64
	Direction CashAddDirection
}

// ComputeCashAdd compares the listing's estimated value against the viewer's
// counter valuation. Returns nil when either value has not been provided.
// Amounts are rounded half away from zero. Negative counter values must be
// rejected by the caller (treated as absent) before reaching this function.
func ComputeCashAdd(listingValue, counterValue *float64) *CashAdd {
	if listingValue == nil || counterValue == nil {
		return nil
	}
	diff := *listingValue - *counterValue
	switch {
	case diff > 0:
		return &CashAdd{Amount: int64(math.Round(diff)), Direction: CashAddYou}
	case diff < 0:
		return &CashAdd{Amount: int64(math.Round(-diff)), Direction: CashAddThey}
	default:
		return &CashAdd{Amount: 0, Direction: CashAddEven}
	}
}
