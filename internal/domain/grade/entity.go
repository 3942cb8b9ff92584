package grade

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComponentKind enum
type ComponentKind string

const (
	ComponentKindPercentage ComponentKind = "percentage"
	ComponentKindFlat       ComponentKind = "flat"
)

var ComponentKindValues = []string{
	string(ComponentKindPercentage),
	string(ComponentKindFlat),
}

// Cadence is whether a component's declared value is a monthly or an
// annual figure before normalization.
type Cadence string

const (
	CadenceMonthly  Cadence = "monthly"
	CadenceAnnually Cadence = "annually"
)

var CadenceValues = []string{
	string(CadenceMonthly),
	string(CadenceAnnually),
}

// SalaryComponent is one line of a grade's compensation structure.
// Percentage components are computed against the grade's base figure.
type SalaryComponent struct {
	Name     string
	Kind     ComponentKind
	Cadence  Cadence
	Value    decimal.Decimal
	IsActive bool
}

// SalaryGrade - grade definition with its ordered component list.
// Component order is display order; resolution sums components
// independently.
type SalaryGrade struct {
	ID         string
	Name       string
	Code       string
	BaseFigure decimal.Decimal
	Components []SalaryComponent
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ComponentAmount pairs a component with its normalized amounts.
type ComponentAmount struct {
	Component     SalaryComponent
	MonthlyAmount decimal.Decimal
	AnnualAmount  decimal.Decimal
}

// ResolvedTotals is the derived gross breakdown for a grade. It is
// recomputed on every call and never persisted.
type ResolvedTotals struct {
	MonthlyGross decimal.Decimal
	AnnualGross  decimal.Decimal
	PerComponent []ComponentAmount
}
