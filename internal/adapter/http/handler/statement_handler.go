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

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	BuildStatement(ctx context.Context, input usecase.StatementInput) (*usecase.Statement, error)
	BuildFullStatement(ctx context.Context, input usecase.StatementInput) (*usecase.Statement, error)
}

// StatementHandler handles ledger statement requests.
type StatementHandler struct {
	statementUC StatementService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// Get builds one statement page from the query parameters.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	input, err := dto.ParseStatementQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query", err.Error())
		return
	}

	statement, err := h.statementUC.BuildStatement(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build statement", err.Error())
		return
	}

	metrics.RecordStatementBuilt(statement.TotalEntries)
	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(statement))
}

// Export streams the full, unpaged statement as an xlsx workbook.
func (h *StatementHandler) Export(w http.ResponseWriter, r *http.Request) {
	input, err := dto.ParseStatementQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query", err.Error())
		return
	}

	statement, err := h.statementUC.BuildFullStatement(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build statement", err.Error())
		return
	}

	metrics.RecordExport("statement")
	filename := "statement-" + time.Now().Format("20060102") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := export.WriteStatement(w, statement); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to write workbook", err.Error())
	}
}
