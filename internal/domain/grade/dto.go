package grade

import (
	"strings"

	"github.com/cmlabs-hris/hr-admin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ComponentInput struct {
	Name     string          `json:"name"`
	Kind     string          `json:"kind"`
	Cadence  string          `json:"cadence"`
	Value    decimal.Decimal `json:"value"`
	IsActive bool            `json:"is_active"`
}

type CreateGradeRequest struct {
	Name       string           `json:"name"`
	Code       string           `json:"code"`
	BaseFigure decimal.Decimal  `json:"base_figure"`
	Components []ComponentInput `json:"components"`
}

func (r *CreateGradeRequest) Validate() error {
	errs := validateGradeForm(r.Name, r.Code, r.BaseFigure, r.Components)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateGradeRequest struct {
	ID         string           `json:"-"`
	Name       string           `json:"name"`
	Code       string           `json:"code"`
	BaseFigure decimal.Decimal  `json:"base_figure"`
	Components []ComponentInput `json:"components"`
}

func (r *UpdateGradeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	errs = append(errs, validateGradeForm(r.Name, r.Code, r.BaseFigure, r.Components)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateGradeForm accumulates every structural problem in a candidate
// grade definition so a form can surface them all at once. An empty
// result means the form is legal to resolve or persist. Numeric
// resolution deliberately does not re-run these checks.
func validateGradeForm(name, code string, baseFigure decimal.Decimal, components []ComponentInput) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "grade name is required",
		})
	}

	if validator.IsEmpty(code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "grade code is required",
		})
	}

	if baseFigure.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_figure",
			Message: "base figure must not be negative",
		})
	}

	if len(components) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "components",
			Message: "at least one salary component is required",
		})
	}

	// Duplicate names are reported once for the whole grade, not once
	// per colliding pair.
	if dups := duplicateComponentNames(components); len(dups) > 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "components",
			Message: "duplicate component names: " + strings.Join(dups, ", "),
		})
	}

	for i, c := range components {
		pos := validator.Itoa(i + 1)

		if validator.IsEmpty(c.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "components[" + pos + "].name",
				Message: "component " + pos + ": name is required",
			})
		}

		if !validator.IsInSlice(c.Kind, ComponentKindValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "components[" + pos + "].kind",
				Message: "component " + pos + ": kind must be one of " + strings.Join(ComponentKindValues, ", "),
			})
		}

		if !validator.IsInSlice(c.Cadence, CadenceValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "components[" + pos + "].cadence",
				Message: "component " + pos + ": cadence must be one of " + strings.Join(CadenceValues, ", "),
			})
		}

		if c.Value.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, validator.ValidationError{
				Field:   "components[" + pos + "].value",
				Message: "component " + pos + ": value must be greater than 0",
			})
		} else if ComponentKind(c.Kind) == ComponentKindPercentage && c.Value.GreaterThan(decimal.NewFromInt(100)) {
			errs = append(errs, validator.ValidationError{
				Field:   "components[" + pos + "].value",
				Message: "component " + pos + ": percentage value must not exceed 100",
			})
		}
	}

	return errs
}

// duplicateComponentNames returns the names that occur more than once,
// compared case-insensitively, each listed once in first-seen spelling.
func duplicateComponentNames(components []ComponentInput) []string {
	seen := make(map[string]string, len(components))
	reported := make(map[string]bool)

	var dups []string
	for _, c := range components {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if key == "" {
			continue
		}
		if first, ok := seen[key]; ok {
			if !reported[key] {
				dups = append(dups, first)
				reported[key] = true
			}
			continue
		}
		seen[key] = c.Name
	}
	return dups
}

// ToComponents converts validated inputs to domain components, in order.
func ToComponents(inputs []ComponentInput) []SalaryComponent {
	components := make([]SalaryComponent, 0, len(inputs))
	for _, c := range inputs {
		components = append(components, SalaryComponent{
			Name:     c.Name,
			Kind:     ComponentKind(c.Kind),
			Cadence:  Cadence(c.Cadence),
			Value:    c.Value,
			IsActive: c.IsActive,
		})
	}
	return components
}

// PreviewRequest resolves an inline, unsaved grade form. Resolution is
// total over any well-typed input, so there is no Validate here; the
// form endpoints run validation separately.
type PreviewRequest struct {
	BaseFigure decimal.Decimal  `json:"base_figure"`
	Components []ComponentInput `json:"components"`
}

type ComponentResponse struct {
	Name     string          `json:"name"`
	Kind     string          `json:"kind"`
	Cadence  string          `json:"cadence"`
	Value    decimal.Decimal `json:"value"`
	IsActive bool            `json:"is_active"`
}

type GradeResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Code       string              `json:"code"`
	BaseFigure decimal.Decimal     `json:"base_figure"`
	Components []ComponentResponse `json:"components"`
	CreatedAt  string              `json:"created_at"`
	UpdatedAt  string              `json:"updated_at"`
}

type ComponentAmountResponse struct {
	Component     ComponentResponse `json:"component"`
	MonthlyAmount decimal.Decimal   `json:"monthly_amount"`
	AnnualAmount  decimal.Decimal   `json:"annual_amount"`
}

type ResolvedTotalsResponse struct {
	MonthlyGross decimal.Decimal           `json:"monthly_gross"`
	AnnualGross  decimal.Decimal           `json:"annual_gross"`
	PerComponent []ComponentAmountResponse `json:"per_component"`
}
