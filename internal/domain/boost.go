package domain

// BoostType selects which one-shot ad boost a claim applies.
type BoostType string

const (
	BoostTime BoostType = "time"
	BoostSell BoostType = "sell"
)

func (b BoostType) Valid() bool {
	return b == BoostTime || b == BoostSell
}
