package grade

import "context"

// GradeService defines business logic for salary grade operations
type GradeService interface {
	// CreateGrade validates and stores a new salary grade definition
	CreateGrade(ctx context.Context, req CreateGradeRequest) (GradeResponse, error)

	// UpdateGrade validates and replaces a stored grade definition
	UpdateGrade(ctx context.Context, req UpdateGradeRequest) (GradeResponse, error)

	// GetGrade retrieves a grade by ID
	GetGrade(ctx context.Context, id string) (GradeResponse, error)

	// ListGrades retrieves all grades ordered by code
	ListGrades(ctx context.Context) ([]GradeResponse, error)

	// DeleteGrade removes a grade
	DeleteGrade(ctx context.Context, id string) error

	// ResolveGrade resolves a stored grade to monthly/annual totals
	ResolveGrade(ctx context.Context, id string) (ResolvedTotalsResponse, error)

	// PreviewTotals resolves an inline, unsaved grade form
	PreviewTotals(ctx context.Context, req PreviewRequest) (ResolvedTotalsResponse, error)
}
