package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanForGuests(t *testing.T) {
	tests := []struct {
		guests int
		want   Plan
	}{
		{0, PlanStandard},
		{1, PlanStandard},
		{2, PlanStandard},
		{3, PlanStandard},
		{4, PlanStandard},
		{5, PlanPlus},
		{6, PlanPlus},
		{7, PlanPlus},
		{8, PlanPremium},
		{9, PlanPremium},
		{10, PlanPremium},
		{11, PlanStandard},
		{50, PlanStandard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PlanForGuests(tt.guests), "guests=%d", tt.guests)
	}
}

func TestPriceForIsAdditive(t *testing.T) {
	for _, plan := range []Plan{PlanStandard, PlanPlus, PlanPremium} {
		details, ok := Details(plan)
		assert.True(t, ok)

		base := PriceFor(plan, false, false)
		assert.Equal(t, details.WeekPrice, base)

		for _, addSat := range []bool{false, true} {
			for _, addSun := range []bool{false, true} {
				want := base
				if addSat {
					want += details.SaturdayPrice
				}
				if addSun {
					want += details.SundayPrice
				}
				assert.Equal(t, want, PriceFor(plan, addSat, addSun),
					"plan=%s sat=%v sun=%v", plan, addSat, addSun)
			}
		}
	}
}

func TestPriceForKnownTotals(t *testing.T) {
	assert.Equal(t, int64(250000), PriceFor(PlanStandard, false, false))
	assert.Equal(t, int64(410000), PriceFor(PlanStandard, true, true))
	assert.Equal(t, int64(525000), PriceFor(PlanPlus, true, false))
	assert.Equal(t, int64(780000), PriceFor(PlanPremium, false, true))
}

func TestParsePlan(t *testing.T) {
	tests := []struct {
		raw     string
		want    Plan
		wantErr bool
	}{
		{"standard", PlanStandard, false},
		{"plus", PlanPlus, false},
		{"premium", PlanPremium, false},
		{"Premium", PlanPremium, false},
		{"0", PlanStandard, false},
		{"1", PlanPlus, false},
		{"2", PlanPremium, false},
		{"3", "", true},
		{"-1", "", true},
		{"custom", PlanCustom, false},
		{"custom-experience", PlanCustom, false},
		{"gold", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePlan(tt.raw)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownPlan, "raw=%q", tt.raw)
		} else {
			assert.NoError(t, err, "raw=%q", tt.raw)
			assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "€2500", FormatPrice(250000))
	assert.Equal(t, "€0", FormatPrice(0))
}
