package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-admin-backend-go/internal/domain/grade"
	"github.com/google/uuid"
)

type gradeRepositoryImpl struct {
	*store
	grades map[string]grade.SalaryGrade
}

func NewGradeRepository() grade.GradeRepository {
	return &gradeRepositoryImpl{
		store:  newStore(),
		grades: make(map[string]grade.SalaryGrade),
	}
}

// Create implements grade.GradeRepository.
func (r *gradeRepositoryImpl) Create(_ context.Context, g grade.SalaryGrade) (grade.SalaryGrade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	g.ID = uuid.NewString()
	g.CreatedAt = now
	g.UpdatedAt = now

	r.grades[g.ID] = cloneGrade(g)
	return g, nil
}

// GetByID implements grade.GradeRepository.
func (r *gradeRepositoryImpl) GetByID(_ context.Context, id string) (grade.SalaryGrade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.grades[id]
	if !ok {
		return grade.SalaryGrade{}, grade.ErrGradeNotFound
	}
	return cloneGrade(g), nil
}

// GetByCode implements grade.GradeRepository. Codes compare
// case-insensitively; a nil result means the code is unused.
func (r *gradeRepositoryImpl) GetByCode(_ context.Context, code string) (*grade.SalaryGrade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.grades {
		if strings.EqualFold(g.Code, code) {
			clone := cloneGrade(g)
			return &clone, nil
		}
	}
	return nil, nil
}

// List implements grade.GradeRepository.
func (r *gradeRepositoryImpl) List(_ context.Context) ([]grade.SalaryGrade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	grades := make([]grade.SalaryGrade, 0, len(r.grades))
	for _, g := range r.grades {
		grades = append(grades, cloneGrade(g))
	}

	sort.Slice(grades, func(i, j int) bool {
		return grades[i].Code < grades[j].Code
	})

	return grades, nil
}

// Update implements grade.GradeRepository.
func (r *gradeRepositoryImpl) Update(_ context.Context, g grade.SalaryGrade) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.grades[g.ID]
	if !ok {
		return grade.ErrGradeNotFound
	}

	g.CreatedAt = current.CreatedAt
	g.UpdatedAt = time.Now().UTC()
	r.grades[g.ID] = cloneGrade(g)
	return nil
}

// Delete implements grade.GradeRepository.
func (r *gradeRepositoryImpl) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.grades[id]; !ok {
		return grade.ErrGradeNotFound
	}
	delete(r.grades, id)
	return nil
}

// cloneGrade copies the component slice so stored grades never alias
// caller-owned memory. Component order is preserved; it is display
// order and the resolver's summation order.
func cloneGrade(g grade.SalaryGrade) grade.SalaryGrade {
	components := make([]grade.SalaryComponent, len(g.Components))
	copy(components, g.Components)
	g.Components = components
	return g
}
