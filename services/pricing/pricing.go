package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// Plan is a guest-count-bounded service package.
type Plan string

const (
	PlanStandard Plan = "standard"
	PlanPlus     Plan = "plus"
	PlanPremium  Plan = "premium"
	// PlanCustom marks negotiated bookings for parties outside the fixed
	// tiers. It carries no table price.
	PlanCustom Plan = "custom"
)

// ErrUnknownPlan is returned by ParsePlan when the input matches no known
// plan form. Callers decide whether to fall back or reject.
var ErrUnknownPlan = fmt.Errorf("unknown plan")

// PlanDetails describes a plan tier. All amounts are euro cents so price
// arithmetic never touches floating point.
type PlanDetails struct {
	Name          string
	GuestRange    string
	WeekPrice     int64
	SaturdayPrice int64
	SundayPrice   int64
}

var plans = map[Plan]PlanDetails{
	PlanStandard: {
		Name:          "Weekly Private Chef",
		GuestRange:    "2-4",
		WeekPrice:     250000,
		SaturdayPrice: 80000,
		SundayPrice:   80000,
	},
	PlanPlus: {
		Name:          "Weekly Private Chef Plus",
		GuestRange:    "5-7",
		WeekPrice:     400000,
		SaturdayPrice: 125000,
		SundayPrice:   125000,
	},
	PlanPremium: {
		Name:          "Weekly Private Chef Premium",
		GuestRange:    "8-10",
		WeekPrice:     600000,
		SaturdayPrice: 180000,
		SundayPrice:   180000,
	},
}

// Details returns the plan table entry. Custom plans have no entry.
func Details(p Plan) (PlanDetails, bool) {
	d, ok := plans[p]
	return d, ok
}

// PlanForGuests maps a guest count to the smallest tier containing it.
// Counts outside 2..10 fall back to standard; that is a defined default for
// the fixed-plan flow, not an error.
func PlanForGuests(numGuests int) Plan {
	switch {
	case numGuests >= 2 && numGuests <= 4:
		return PlanStandard
	case numGuests >= 5 && numGuests <= 7:
		return PlanPlus
	case numGuests >= 8 && numGuests <= 10:
		return PlanPremium
	default:
		return PlanStandard
	}
}

// PriceFor sums the plan's weekly base price with the enabled weekend
// add-ons. Calling it with a custom plan is a programmer error.
func PriceFor(p Plan, addSaturday, addSunday bool) int64 {
	d, ok := plans[p]
	if !ok {
		panic(fmt.Sprintf("pricing: no price table for plan %q", p))
	}
	total := d.WeekPrice
	if addSaturday {
		total += d.SaturdayPrice
	}
	if addSunday {
		total += d.SundayPrice
	}
	return total
}

// ParsePlan normalizes the three inbound plan forms: a numeric index
// (0/1/2), a plan name, or the custom-experience tag. Anything else yields
// ErrUnknownPlan so the caller can choose its fallback explicitly.
func ParsePlan(raw string) (Plan, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if idx, err := strconv.Atoi(s); err == nil {
		byIndex := []Plan{PlanStandard, PlanPlus, PlanPremium}
		if idx >= 0 && idx < len(byIndex) {
			return byIndex[idx], nil
		}
		return "", fmt.Errorf("%w: index %d", ErrUnknownPlan, idx)
	}
	switch s {
	case "standard", "plus", "premium":
		return Plan(s), nil
	case "custom", "custom-experience", "custom_experience":
		return PlanCustom, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlan, raw)
}

// FormatPrice renders euro cents as a whole-euro string for messages.
func FormatPrice(cents int64) string {
	return fmt.Sprintf("€%d", cents/100)
}
