package grade

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hr-admin-backend-go/internal/domain/grade"
)

type GradeServiceImpl struct {
	gradeRepo grade.GradeRepository
	resolver  *Resolver
}

func NewGradeService(gradeRepo grade.GradeRepository, resolver *Resolver) grade.GradeService {
	return &GradeServiceImpl{
		gradeRepo: gradeRepo,
		resolver:  resolver,
	}
}

// CreateGrade implements grade.GradeService.
func (s *GradeServiceImpl) CreateGrade(ctx context.Context, req grade.CreateGradeRequest) (grade.GradeResponse, error) {
	if err := req.Validate(); err != nil {
		return grade.GradeResponse{}, err
	}

	existing, err := s.gradeRepo.GetByCode(ctx, req.Code)
	if err != nil {
		return grade.GradeResponse{}, fmt.Errorf("failed to check grade code: %w", err)
	}
	if existing != nil {
		return grade.GradeResponse{}, grade.ErrGradeCodeExists
	}

	entity := grade.SalaryGrade{
		Name:       req.Name,
		Code:       req.Code,
		BaseFigure: req.BaseFigure,
		Components: grade.ToComponents(req.Components),
	}

	created, err := s.gradeRepo.Create(ctx, entity)
	if err != nil {
		return grade.GradeResponse{}, fmt.Errorf("failed to create salary grade: %w", err)
	}

	return mapGradeToResponse(created), nil
}

// UpdateGrade implements grade.GradeService.
func (s *GradeServiceImpl) UpdateGrade(ctx context.Context, req grade.UpdateGradeRequest) (grade.GradeResponse, error) {
	if err := req.Validate(); err != nil {
		return grade.GradeResponse{}, err
	}

	entity, err := s.gradeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return grade.GradeResponse{}, err
	}

	if req.Code != entity.Code {
		conflict, err := s.gradeRepo.GetByCode(ctx, req.Code)
		if err != nil {
			return grade.GradeResponse{}, fmt.Errorf("failed to check grade code: %w", err)
		}
		if conflict != nil && conflict.ID != entity.ID {
			return grade.GradeResponse{}, grade.ErrGradeCodeExists
		}
	}

	entity.Name = req.Name
	entity.Code = req.Code
	entity.BaseFigure = req.BaseFigure
	entity.Components = grade.ToComponents(req.Components)

	if err := s.gradeRepo.Update(ctx, entity); err != nil {
		return grade.GradeResponse{}, fmt.Errorf("failed to update salary grade: %w", err)
	}

	updated, err := s.gradeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return grade.GradeResponse{}, fmt.Errorf("failed to get updated salary grade: %w", err)
	}

	return mapGradeToResponse(updated), nil
}

// GetGrade implements grade.GradeService.
func (s *GradeServiceImpl) GetGrade(ctx context.Context, id string) (grade.GradeResponse, error) {
	entity, err := s.gradeRepo.GetByID(ctx, id)
	if err != nil {
		return grade.GradeResponse{}, err
	}

	return mapGradeToResponse(entity), nil
}

// ListGrades implements grade.GradeService.
func (s *GradeServiceImpl) ListGrades(ctx context.Context) ([]grade.GradeResponse, error) {
	grades, err := s.gradeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary grades: %w", err)
	}

	responses := make([]grade.GradeResponse, 0, len(grades))
	for _, g := range grades {
		responses = append(responses, mapGradeToResponse(g))
	}

	return responses, nil
}

// DeleteGrade implements grade.GradeService.
func (s *GradeServiceImpl) DeleteGrade(ctx context.Context, id string) error {
	return s.gradeRepo.Delete(ctx, id)
}

// ResolveGrade implements grade.GradeService.
func (s *GradeServiceImpl) ResolveGrade(ctx context.Context, id string) (grade.ResolvedTotalsResponse, error) {
	entity, err := s.gradeRepo.GetByID(ctx, id)
	if err != nil {
		return grade.ResolvedTotalsResponse{}, err
	}

	return mapTotalsToResponse(s.resolver.ResolveGrade(entity)), nil
}

// PreviewTotals implements grade.GradeService.
// Deliberately validation-free: resolution is total over any well-typed
// form, so the live totals panel keeps working while the form is still
// invalid.
func (s *GradeServiceImpl) PreviewTotals(ctx context.Context, req grade.PreviewRequest) (grade.ResolvedTotalsResponse, error) {
	candidate := grade.SalaryGrade{
		BaseFigure: req.BaseFigure,
		Components: grade.ToComponents(req.Components),
	}

	return mapTotalsToResponse(s.resolver.ResolveGrade(candidate)), nil
}

// ========== HELPERS ==========

func mapComponentToResponse(c grade.SalaryComponent) grade.ComponentResponse {
	return grade.ComponentResponse{
		Name:     c.Name,
		Kind:     string(c.Kind),
		Cadence:  string(c.Cadence),
		Value:    c.Value,
		IsActive: c.IsActive,
	}
}

func mapGradeToResponse(g grade.SalaryGrade) grade.GradeResponse {
	components := make([]grade.ComponentResponse, 0, len(g.Components))
	for _, c := range g.Components {
		components = append(components, mapComponentToResponse(c))
	}

	return grade.GradeResponse{
		ID:         g.ID,
		Name:       g.Name,
		Code:       g.Code,
		BaseFigure: g.BaseFigure,
		Components: components,
		CreatedAt:  g.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  g.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapTotalsToResponse(t grade.ResolvedTotals) grade.ResolvedTotalsResponse {
	perComponent := make([]grade.ComponentAmountResponse, 0, len(t.PerComponent))
	for _, pc := range t.PerComponent {
		perComponent = append(perComponent, grade.ComponentAmountResponse{
			Component:     mapComponentToResponse(pc.Component),
			MonthlyAmount: pc.MonthlyAmount,
			AnnualAmount:  pc.AnnualAmount,
		})
	}

	return grade.ResolvedTotalsResponse{
		MonthlyGross: t.MonthlyGross,
		AnnualGross:  t.AnnualGross,
		PerComponent: perComponent,
	}
}
