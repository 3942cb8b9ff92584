package grade

import "context"

type GradeRepository interface {
	Create(ctx context.Context, grade SalaryGrade) (SalaryGrade, error)
	GetByID(ctx context.Context, id string) (SalaryGrade, error)
	GetByCode(ctx context.Context, code string) (*SalaryGrade, error)
	List(ctx context.Context) ([]SalaryGrade, error)
	Update(ctx context.Context, grade SalaryGrade) error
	Delete(ctx context.Context, id string) error
}
