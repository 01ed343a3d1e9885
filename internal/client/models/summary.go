package models

// WalkinSummary is the monthly walk-in aggregate. Unlike the entity records,
// aggregates arrive as numbers.
type WalkinSummary struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
	Food   float64 `json:"food"`
}

// Total is revenue plus food surcharge.
func (s WalkinSummary) Total() float64 {
	return s.Amount + s.Food
}

// PartySummary is the monthly party aggregate.
type PartySummary struct {
	Count       int     `json:"count"`
	Advance     float64 `json:"advance"`
	TotalAmount float64 `json:"totalAmount"`
}

// Balance is the amount still due: total minus advance.
func (s PartySummary) Balance() float64 {
	return s.TotalAmount - s.Advance
}
