// Package valueobject contains domain value objects for the Life Manager system.
package valueobject

import "github.com/shopspring/decimal"

// TrafficLight is the credit-card spending status for a month.
type TrafficLight string

const (
	TrafficLightGreen  TrafficLight = "green"
	TrafficLightYellow TrafficLight = "yellow"
	TrafficLightRed    TrafficLight = "red"
)

// CreditCardLimits are the thresholds of the credit-card traffic light.
type CreditCardLimits struct {
	Green  decimal.Decimal
	Yellow decimal.Decimal
	Red    decimal.Decimal
}

// Classify returns the light for the given monthly credit-card spend.
// Thresholds are inclusive: spending exactly the red limit is red.
func (l CreditCardLimits) Classify(spent decimal.Decimal) TrafficLight {
	switch {
	case spent.GreaterThanOrEqual(l.Red):
		return TrafficLightRed
	case spent.GreaterThanOrEqual(l.Yellow):
		return TrafficLightYellow
	default:
		return TrafficLightGreen
	}
}

// Progress returns spent as a percentage of the red limit, clamped to 100.
func (l CreditCardLimits) Progress(spent decimal.Decimal) decimal.Decimal {
	if !l.Red.IsPositive() {
		return decimal.Zero
	}
	pct := spent.Div(l.Red).Mul(decimal.NewFromInt(100))
	return decimal.Min(pct, decimal.NewFromInt(100))
}

// CrossedIntoRed reports whether moving from before to after enters the red zone.
func (l CreditCardLimits) CrossedIntoRed(before, after decimal.Decimal) bool {
	return before.LessThan(l.Red) && after.GreaterThanOrEqual(l.Red)
}
