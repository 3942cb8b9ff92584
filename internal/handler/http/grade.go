package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-admin-backend-go/internal/domain/grade"
	"github.com/cmlabs-hris/hr-admin-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-admin-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type GradeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	CheckForm(w http.ResponseWriter, r *http.Request)
}

type gradeHandlerImpl struct {
	gradeService grade.GradeService
}

func NewGradeHandler(gradeService grade.GradeService) GradeHandler {
	return &gradeHandlerImpl{
		gradeService: gradeService,
	}
}

// Create implements GradeHandler.
func (h *gradeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req grade.CreateGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create grade request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.gradeService.CreateGrade(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary grade created", result)
}

// Update implements GradeHandler.
func (h *gradeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req grade.UpdateGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update grade request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.gradeService.UpdateGrade(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements GradeHandler.
func (h *gradeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.gradeService.GetGrade(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements GradeHandler.
func (h *gradeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.gradeService.ListGrades(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements GradeHandler.
func (h *gradeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.gradeService.DeleteGrade(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"id": id})
}

// Resolve implements GradeHandler.
func (h *gradeHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.gradeService.ResolveGrade(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Preview implements GradeHandler.
// Resolves an unsaved form so the dashboard totals panel can live-update.
func (h *gradeHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req grade.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode preview request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.gradeService.PreviewTotals(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

type checkFormResponse struct {
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems"`
}

// CheckForm implements GradeHandler.
// Runs grade form validation without persisting, returning every
// problem at once so the form can show all inline errors in one pass.
func (h *gradeHandlerImpl) CheckForm(w http.ResponseWriter, r *http.Request) {
	var req grade.CreateGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode check form request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result := checkFormResponse{Valid: true, Problems: []string{}}
	if err := req.Validate(); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			result.Valid = false
			result.Problems = errs.Messages()
		}
	}

	response.Success(w, result)
}
