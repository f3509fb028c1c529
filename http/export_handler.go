package http

import (
	"log"
	"net/http"
	"strconv"

	"compound-interest/excel"
	"compound-interest/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	projection *service.ProjectionService
}

func NewExportHandler(projection *service.ProjectionService) *ExportHandler {
	return &ExportHandler{projection: projection}
}

// LedgerXLSX projects the query parameters and returns the workbook as a
// download.
func (h *ExportHandler) LedgerXLSX(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	input := parseProjectionQuery(r.URL.Query())
	ledger, err := h.projection.Calculate(r.Context(), input)
	if err != nil {
		writeServiceError(w, "calculating projection", err)
		return
	}

	data, err := excel.LedgerXLSX(input, ledger)
	if err != nil {
		log.Printf("Error building workbook: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="compound-interest.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing workbook: %v", err)
	}
}
