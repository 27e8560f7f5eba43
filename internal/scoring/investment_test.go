package scoring

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfndi/strmarket-engine/internal/models"
)

func TestMonthlyPayment(t *testing.T) {
	a := InvestmentAssumptions{MortgageRatePct: 6, MortgageTermYears: 30}
	payment := a.monthlyPayment(decimal.NewFromInt(200000))
	assert.InDelta(t, 1199.10, payment.InexactFloat64(), 0.01)

	zeroRate := InvestmentAssumptions{MortgageRatePct: 0, MortgageTermYears: 10}
	assert.True(t, zeroRate.monthlyPayment(decimal.NewFromInt(120000)).Equal(decimal.NewFromInt(1000)))

	assert.True(t, a.monthlyPayment(decimal.Zero).IsZero())
}

func TestAnalyze_DefaultAssumptions(t *testing.T) {
	m := models.Market{
		MedianHomeValue: decimal.NewFromInt(300000),
		AnnualRevenue:   decimal.NewFromInt(50000),
	}

	cf := DefaultInvestmentAssumptions().Analyze(m)

	assert.True(t, cf.OperatingExpenses.Equal(decimal.NewFromInt(17500)))
	assert.True(t, cf.HoldingCosts.Equal(decimal.NewFromInt(4500)))
	assert.InDelta(t, 19160.76, cf.DebtService.InexactFloat64(), 0.5)
	assert.True(t, cf.CashInvested.Equal(decimal.NewFromInt(84000)))
	assert.InDelta(t, 8839.24, cf.NetCashFlow.InexactFloat64(), 0.5)

	coc, ok := cf.CashOnCash()
	require.True(t, ok)
	assert.InDelta(t, 10.52, coc.InexactFloat64(), 0.01)
}

func TestCashOnCash_NothingInvested(t *testing.T) {
	cf := CashFlow{NetCashFlow: decimal.NewFromInt(1000)}
	_, ok := cf.CashOnCash()
	assert.False(t, ok)
}

func TestInvestmentAssumptions_Validate(t *testing.T) {
	require.NoError(t, DefaultInvestmentAssumptions().Validate())

	tests := []struct {
		name   string
		mutate func(a *InvestmentAssumptions)
	}{
		{name: "negative down payment", mutate: func(a *InvestmentAssumptions) { a.DownPaymentPct = -1 }},
		{name: "down payment over 100", mutate: func(a *InvestmentAssumptions) { a.DownPaymentPct = 120 }},
		{name: "absurd rate", mutate: func(a *InvestmentAssumptions) { a.MortgageRatePct = 45 }},
		{name: "zero term", mutate: func(a *InvestmentAssumptions) { a.MortgageTermYears = 0 }},
		{name: "negative furnishing", mutate: func(a *InvestmentAssumptions) { a.FurnishingCost = -10 }},
		{name: "holding too high", mutate: func(a *InvestmentAssumptions) { a.HoldingCostPct = 25 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := DefaultInvestmentAssumptions()
			tc.mutate(&a)
			assert.Error(t, a.Validate())
		})
	}
}

func TestComponentScorer_ZeroCashInvested(t *testing.T) {
	inv := DefaultInvestmentAssumptions()
	inv.DownPaymentPct = 0
	inv.ClosingCostPct = 0
	inv.FurnishingCost = 0

	scorer, err := NewComponentScorer(DefaultRuleSet(), inv)
	require.NoError(t, err)

	m := models.Market{
		MedianHomeValue: decimal.NewFromInt(250000),
		AnnualRevenue:   decimal.NewFromInt(90000),
	}

	var comps models.Components
	require.NotPanics(t, func() { comps = scorer.Score(m) })

	coc, ok := comps.Get(models.ComponentCashOnCash)
	require.True(t, ok)
	assert.True(t, coc.Earned.IsZero())
	assert.Equal(t, models.RatingPoor, coc.Rating)
}
