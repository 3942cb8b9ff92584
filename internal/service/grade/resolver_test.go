package grade

import (
	"testing"

	"github.com/cmlabs-hris/hr-admin-backend-go/internal/domain/grade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cadenceEpsilon absorbs the division rounding on annual-declared
// components when checking monthly*12 against annual.
var cadenceEpsilon = decimal.New(1, -9)

func component(name string, kind grade.ComponentKind, cadence grade.Cadence, value int64, active bool) grade.SalaryComponent {
	return grade.SalaryComponent{
		Name:     name,
		Kind:     kind,
		Cadence:  cadence,
		Value:    decimal.NewFromInt(value),
		IsActive: active,
	}
}

func TestResolveComponent_FlatMonthly(t *testing.T) {
	r := NewResolver()

	monthly, annual := r.ResolveComponent(
		component("Transport Allowance", grade.ComponentKindFlat, grade.CadenceMonthly, 500000, true),
		decimal.Zero,
	)

	assert.True(t, monthly.Equal(decimal.NewFromInt(500000)), "monthly = %s", monthly)
	assert.True(t, annual.Equal(decimal.NewFromInt(6000000)), "annual = %s", annual)
}

func TestResolveComponent_FlatAnnually(t *testing.T) {
	r := NewResolver()

	monthly, annual := r.ResolveComponent(
		component("THR", grade.ComponentKindFlat, grade.CadenceAnnually, 12000000, true),
		decimal.Zero,
	)

	assert.True(t, monthly.Equal(decimal.NewFromInt(1000000)), "monthly = %s", monthly)
	assert.True(t, annual.Equal(decimal.NewFromInt(12000000)), "annual = %s", annual)
}

func TestResolveComponent_PercentageOfBase(t *testing.T) {
	r := NewResolver()
	base := decimal.NewFromInt(120000000) // assumed annual CTC

	monthly, annual := r.ResolveComponent(
		component("Basic Salary", grade.ComponentKindPercentage, grade.CadenceAnnually, 50, true),
		base,
	)

	assert.True(t, annual.Equal(decimal.NewFromInt(60000000)), "annual = %s", annual)
	assert.True(t, monthly.Equal(decimal.NewFromInt(5000000)), "monthly = %s", monthly)
}

func TestResolveComponent_InactiveResolvesToZero(t *testing.T) {
	r := NewResolver()

	monthly, annual := r.ResolveComponent(
		component("Suspended Bonus", grade.ComponentKindFlat, grade.CadenceMonthly, 250000, false),
		decimal.NewFromInt(1000000),
	)

	assert.True(t, monthly.IsZero())
	assert.True(t, annual.IsZero())
}

func TestResolveComponent_CadenceInvariant(t *testing.T) {
	r := NewResolver()
	base := decimal.NewFromInt(100000000)

	components := []grade.SalaryComponent{
		component("A", grade.ComponentKindFlat, grade.CadenceMonthly, 750000, true),
		component("B", grade.ComponentKindFlat, grade.CadenceAnnually, 10000000, true),
		component("C", grade.ComponentKindPercentage, grade.CadenceMonthly, 3, true),
		component("D", grade.ComponentKindPercentage, grade.CadenceAnnually, 40, true),
		// values a validator would reject still hold the invariant
		component("E", grade.ComponentKindFlat, grade.CadenceAnnually, 100, true),
	}

	for _, c := range components {
		monthly, annual := r.ResolveComponent(c, base)
		diff := monthly.Mul(decimal.NewFromInt(12)).Sub(annual).Abs()
		assert.True(t, diff.LessThanOrEqual(cadenceEpsilon),
			"component %s: monthly*12 = %s, annual = %s", c.Name, monthly.Mul(decimal.NewFromInt(12)), annual)
	}
}

func TestResolveGrade_SumsInListOrder(t *testing.T) {
	r := NewResolver()

	g := grade.SalaryGrade{
		BaseFigure: decimal.NewFromInt(120000000),
		Components: []grade.SalaryComponent{
			component("Basic Salary", grade.ComponentKindPercentage, grade.CadenceAnnually, 50, true),
			component("Transport", grade.ComponentKindFlat, grade.CadenceMonthly, 500000, true),
			component("Suspended", grade.ComponentKindFlat, grade.CadenceMonthly, 999999, false),
		},
	}

	totals := r.ResolveGrade(g)

	require.Len(t, totals.PerComponent, 3)
	assert.Equal(t, "Basic Salary", totals.PerComponent[0].Component.Name)
	assert.Equal(t, "Transport", totals.PerComponent[1].Component.Name)

	// Inactive components stay in the breakdown, zeroed.
	assert.Equal(t, "Suspended", totals.PerComponent[2].Component.Name)
	assert.True(t, totals.PerComponent[2].MonthlyAmount.IsZero())
	assert.True(t, totals.PerComponent[2].AnnualAmount.IsZero())

	assert.True(t, totals.MonthlyGross.Equal(decimal.NewFromInt(5500000)), "monthly gross = %s", totals.MonthlyGross)
	assert.True(t, totals.AnnualGross.Equal(decimal.NewFromInt(66000000)), "annual gross = %s", totals.AnnualGross)
}

func TestResolveGrade_TotalOverInvalidInput(t *testing.T) {
	r := NewResolver()

	// A grade the form validator would reject: negative base figure,
	// out-of-range percentage, non-positive value. Resolution still
	// completes; the two concerns are decoupled.
	g := grade.SalaryGrade{
		BaseFigure: decimal.NewFromInt(-1000),
		Components: []grade.SalaryComponent{
			component("Over", grade.ComponentKindPercentage, grade.CadenceMonthly, 101, true),
			component("Negative", grade.ComponentKindFlat, grade.CadenceMonthly, -5, true),
		},
	}

	totals := r.ResolveGrade(g)
	require.Len(t, totals.PerComponent, 2)
	assert.True(t, totals.PerComponent[0].MonthlyAmount.Equal(decimal.NewFromInt(-1010)))
	assert.True(t, totals.PerComponent[1].MonthlyAmount.Equal(decimal.NewFromInt(-5)))
}

func TestResolveGrade_Idempotent(t *testing.T) {
	r := NewResolver()

	g := grade.SalaryGrade{
		BaseFigure: decimal.NewFromInt(99999999),
		Components: []grade.SalaryComponent{
			component("A", grade.ComponentKindPercentage, grade.CadenceAnnually, 33, true),
			component("B", grade.ComponentKindFlat, grade.CadenceAnnually, 777777, true),
		},
	}

	first := r.ResolveGrade(g)
	second := r.ResolveGrade(g)

	assert.Equal(t, first.MonthlyGross.String(), second.MonthlyGross.String())
	assert.Equal(t, first.AnnualGross.String(), second.AnnualGross.String())
	require.Equal(t, len(first.PerComponent), len(second.PerComponent))
	for i := range first.PerComponent {
		assert.Equal(t, first.PerComponent[i].MonthlyAmount.String(), second.PerComponent[i].MonthlyAmount.String())
		assert.Equal(t, first.PerComponent[i].AnnualAmount.String(), second.PerComponent[i].AnnualAmount.String())
	}
}
