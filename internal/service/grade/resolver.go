package grade

import (
	"github.com/cmlabs-hris/hr-admin-backend-go/internal/domain/grade"
	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Resolver turns abstract component definitions plus a base figure into
// concrete monthly and annual amounts. It is total over any well-typed
// component: structural legality is the form validator's concern, and
// resolution never re-checks it.
type Resolver struct {
}

func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveComponent normalizes one component against the base figure.
// Whatever the declared cadence, monthly*12 == annual for the returned
// pair. Inactive components resolve to zero.
func (r *Resolver) ResolveComponent(c grade.SalaryComponent, baseFigure decimal.Decimal) (monthly, annual decimal.Decimal) {
	if !c.IsActive {
		return decimal.Zero, decimal.Zero
	}

	var raw decimal.Decimal
	switch c.Kind {
	case grade.ComponentKindPercentage:
		raw = baseFigure.Mul(c.Value).Div(hundred)
	default:
		// flat
		raw = c.Value
	}

	switch c.Cadence {
	case grade.CadenceAnnually:
		return raw.Div(twelve), raw
	default:
		// monthly
		return raw, raw.Mul(twelve)
	}
}

// ResolveGrade resolves every component in list order and sums the
// grosses in that same order. Inactive components stay in PerComponent,
// zeroed, for display and audit.
func (r *Resolver) ResolveGrade(g grade.SalaryGrade) grade.ResolvedTotals {
	totals := grade.ResolvedTotals{
		MonthlyGross: decimal.Zero,
		AnnualGross:  decimal.Zero,
		PerComponent: make([]grade.ComponentAmount, 0, len(g.Components)),
	}

	for _, c := range g.Components {
		monthly, annual := r.ResolveComponent(c, g.BaseFigure)
		totals.PerComponent = append(totals.PerComponent, grade.ComponentAmount{
			Component:     c,
			MonthlyAmount: monthly,
			AnnualAmount:  annual,
		})
		totals.MonthlyGross = totals.MonthlyGross.Add(monthly)
		totals.AnnualGross = totals.AnnualGross.Add(annual)
	}

	return totals
}
