package scoring

import (
	"github.com/shopspring/decimal"

	"github.com/irfndi/strmarket-engine/internal/models"
	"github.com/irfndi/strmarket-engine/internal/utils"
)

// InvestmentAssumptions describe the financed purchase behind the
// cash-on-cash calculation. Percentages are on a 0-100 scale.
type InvestmentAssumptions struct {
	DownPaymentPct      float64 `mapstructure:"down_payment_pct"`
	ClosingCostPct      float64 `mapstructure:"closing_cost_pct"`
	FurnishingCost      float64 `mapstructure:"furnishing_cost"`
	MortgageRatePct     float64 `mapstructure:"mortgage_rate_pct"`
	MortgageTermYears   int     `mapstructure:"mortgage_term_years"`
	OperatingExpensePct float64 `mapstructure:"operating_expense_pct"` // of gross revenue
	HoldingCostPct      float64 `mapstructure:"holding_cost_pct"`      // of home value, per year
}

// DefaultInvestmentAssumptions returns a conventional 30-year financed purchase
func DefaultInvestmentAssumptions() InvestmentAssumptions {
	return InvestmentAssumptions{
		DownPaymentPct:      20,
		ClosingCostPct:      3,
		FurnishingCost:      15000,
		MortgageRatePct:     7,
		MortgageTermYears:   30,
		OperatingExpensePct: 35,
		HoldingCostPct:      1.5,
	}
}

// Validate checks each assumption against its plausible range
func (a InvestmentAssumptions) Validate() error {
	pcts := []struct {
		name  string
		value float64
		max   float64
	}{
		{"down_payment_pct", a.DownPaymentPct, 100},
		{"closing_cost_pct", a.ClosingCostPct, 100},
		{"mortgage_rate_pct", a.MortgageRatePct, 30},
		{"operating_expense_pct", a.OperatingExpensePct, 100},
		{"holding_cost_pct", a.HoldingCostPct, 20},
	}
	for _, p := range pcts {
		if p.value < 0 || p.value > p.max {
			return utils.NewFieldError("investment."+p.name, "must be between 0 and %v, got %v", p.max, p.value)
		}
	}
	if a.FurnishingCost < 0 {
		return utils.NewFieldError("investment.furnishing_cost", "must not be negative")
	}
	if a.MortgageTermYears < 1 || a.MortgageTermYears > 50 {
		return utils.NewFieldError("investment.mortgage_term_years", "must be between 1 and 50")
	}
	return nil
}

// CashFlow is the first-year return breakdown for a market
type CashFlow struct {
	GrossRevenue      decimal.Decimal `json:"gross_revenue"`
	OperatingExpenses decimal.Decimal `json:"operating_expenses"`
	HoldingCosts      decimal.Decimal `json:"holding_costs"`
	DebtService       decimal.Decimal `json:"debt_service"`
	NetCashFlow       decimal.Decimal `json:"net_cash_flow"`
	CashInvested      decimal.Decimal `json:"cash_invested"`
}

var hundred = decimal.NewFromInt(100)

func pct(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Div(hundred)
}

// Analyze computes the first-year cash flow of buying the median home
func (a InvestmentAssumptions) Analyze(m models.Market) CashFlow {
	price := m.MedianHomeValue
	revenue := m.AnnualRevenue

	opex := revenue.Mul(pct(a.OperatingExpensePct))
	holding := price.Mul(pct(a.HoldingCostPct))
	debt := a.monthlyPayment(price.Mul(decimal.NewFromInt(1).Sub(pct(a.DownPaymentPct)))).Mul(decimal.NewFromInt(12))

	invested := price.Mul(pct(a.DownPaymentPct).Add(pct(a.ClosingCostPct))).Add(decimal.NewFromFloat(a.FurnishingCost))

	return CashFlow{
		GrossRevenue:      revenue.Round(2),
		OperatingExpenses: opex.Round(2),
		HoldingCosts:      holding.Round(2),
		DebtService:       debt.Round(2),
		NetCashFlow:       revenue.Sub(opex).Sub(holding).Sub(debt).Round(2),
		CashInvested:      invested.Round(2),
	}
}

// monthlyPayment is the standard amortising payment: P * r(1+r)^n / ((1+r)^n - 1)
func (a InvestmentAssumptions) monthlyPayment(principal decimal.Decimal) decimal.Decimal {
	if !principal.IsPositive() {
		return decimal.Zero
	}
	n := int64(a.MortgageTermYears) * 12
	r := pct(a.MortgageRatePct).Div(decimal.NewFromInt(12))
	if r.IsZero() {
		return principal.Div(decimal.NewFromInt(n))
	}
	growth := decimal.NewFromInt(1).Add(r).Pow(decimal.NewFromInt(n))
	return principal.Mul(r).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
}

// CashOnCash returns net cash flow over cash invested as a percentage.
// The second value is false when nothing was invested and the ratio is undefined.
func (cf CashFlow) CashOnCash() (decimal.Decimal, bool) {
	if !cf.CashInvested.IsPositive() {
		return decimal.Zero, false
	}
	return cf.NetCashFlow.Div(cf.CashInvested).Mul(hundred).Round(2), true
}
