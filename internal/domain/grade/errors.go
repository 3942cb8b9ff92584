package grade

import "errors"

var (
	ErrGradeNotFound   = errors.New("salary grade not found")
	ErrGradeCodeExists = errors.New("salary grade with this code already exists")
)
