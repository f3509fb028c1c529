package http

import (
	"net/http"

	"compound-interest/domain"
	"compound-interest/service"
)

type ProjectionHandler struct {
	projection *service.ProjectionService
	goals      *service.GoalService
	insights   *service.InsightService
}

func NewProjectionHandler(
	projection *service.ProjectionService,
	goals *service.GoalService,
	insights *service.InsightService,
) *ProjectionHandler {
	return &ProjectionHandler{
		projection: projection,
		goals:      goals,
		insights:   insights,
	}
}

func (h *ProjectionHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var input domain.ProjectionInput
	if !decodeJSON(w, r, &input) {
		return
	}

	ledger, err := h.projection.Calculate(r.Context(), input)
	if err != nil {
		writeServiceError(w, "calculating projection", err)
		return
	}

	writeJSON(w, ledger)
}

// Explain projects the input and returns its summary with a plain-language
// explanation.
func (h *ProjectionHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var input domain.ProjectionInput
	if !decodeJSON(w, r, &input) {
		return
	}

	ledger, err := h.projection.Calculate(r.Context(), input)
	if err != nil {
		writeServiceError(w, "calculating projection", err)
		return
	}

	writeJSON(w, domain.Insight{
		Summary:     ledger.Summary,
		Explanation: h.insights.Explain(r.Context(), input, ledger.Summary),
	})
}

func (h *ProjectionHandler) Goal(w http.ResponseWriter, r *http.Request) {
	var input domain.GoalInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.goals.YearsToTarget(r.Context(), input)
	if err != nil {
		writeServiceError(w, "searching goal", err)
		return
	}

	writeJSON(w, result)
}
