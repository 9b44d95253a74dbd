package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/bizbooks/internal/adapter/export"
	"github.com/iho/bizbooks/internal/adapter/http/dto"
	"github.com/iho/bizbooks/internal/infrastructure/metrics"
	"github.com/iho/bizbooks/internal/usecase"
)

// StockService defines the behavior needed by StockHandler.
type StockService interface {
	BuildReport(ctx context.Context) ([]usecase.StockReportRow, error)
	BuildSummary(ctx context.Context) (*usecase.StockSummary, error)
}

// StockHandler handles stock report and summary requests.
type StockHandler struct {
	stockUC StockService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockUC StockService) *StockHandler {
	return &StockHandler{stockUC: stockUC}
}

// Report returns every inventory item with its status, value, and
// last sale and purchase activity.
func (h *StockHandler) Report(w http.ResponseWriter, r *http.Request) {
	rows, err := h.stockUC.BuildReport(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build stock report", err.Error())
		return
	}

	metrics.RecordStockReportBuilt()
	writeJSON(w, http.StatusOK, map[string]any{
		"items": dto.StockRowsFromUseCase(rows),
		"count": len(rows),
	})
}

// Summary returns inventory-wide status counts and total valuation.
func (h *StockHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stockUC.BuildSummary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build stock summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StockSummaryFromUseCase(summary))
}

// Export streams the stock report as an xlsx workbook.
func (h *StockHandler) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := h.stockUC.BuildReport(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build stock report", err.Error())
		return
	}

	metrics.RecordExport("stock")
	filename := "stock-" + time.Now().Format("20060102") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := export.WriteStockReport(w, rows); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to write workbook", err.Error())
	}
}
