package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/bizbooks/internal/adapter/http/dto"
	"github.com/iho/bizbooks/internal/domain"
	"github.com/iho/bizbooks/internal/usecase"
)

type statementServiceStub struct {
	buildFn     func(ctx context.Context, input usecase.StatementInput) (*usecase.Statement, error)
	buildFullFn func(ctx context.Context, input usecase.StatementInput) (*usecase.Statement, error)
}

func (s *statementServiceStub) BuildStatement(ctx context.Context, input usecase.StatementInput) (*usecase.Statement, error) {
	return s.buildFn(ctx, input)
}

func (s *statementServiceStub) BuildFullStatement(ctx context.Context, input usecase.StatementInput) (*usecase.Statement, error) {
	return s.buildFullFn(ctx, input)
}

func sampleStatement() *usecase.Statement {
	return &usecase.Statement{
		Entries: []domain.LedgerEntry{
			{
				ID:          "sale-1",
				DocType:     domain.DocTypeSale,
				DocNumber:   "INV-1",
				Particulars: "Sale to Acme",
				Debit:       decimal.NewFromInt(1000),
				Balance:     decimal.NewFromInt(1000),
			},
		},
		Totals: domain.StatementTotals{
			TotalDebit:     decimal.NewFromInt(1000),
			ClosingBalance: decimal.NewFromInt(1000),
		},
		Page:         1,
		PageSize:     25,
		TotalEntries: 1,
		TotalPages:   1,
	}
}

func TestStatementHandler_Get_Success(t *testing.T) {
	var captured usecase.StatementInput
	h := NewStatementHandler(&statementServiceStub{
		buildFn: func(ctx context.Context, input usecase.StatementInput) (*usecase.Statement, error) {
			captured = input
			return sampleStatement(), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/statement?scope=customers&types=sale,receipt&q=acme&page=2", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Scope != domain.ScopeCustomers || captured.Search != "acme" || captured.Page != 2 {
		t.Fatalf("expected input to match query, got %+v", captured)
	}
	if len(captured.DocTypes) != 2 {
		t.Fatalf("expected 2 doc types, got %v", captured.DocTypes)
	}

	var resp dto.StatementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Entries) != 1 || resp.Entries[0].ID != "sale-1" {
		t.Fatalf("unexpected entries: %+v", resp.Entries)
	}
	if resp.Entries[0].BalanceSide != "CR" {
		t.Fatalf("expected CR side, got %s", resp.Entries[0].BalanceSide)
	}
}

func TestStatementHandler_Get_InvalidScope(t *testing.T) {
	h := NewStatementHandler(&statementServiceStub{
		buildFn: func(ctx context.Context, input usecase.StatementInput) (*usecase.Statement, error) {
			t.Fatal("BuildStatement should not be called for an invalid scope")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/statement?scope=vendors", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStatementHandler_Get_PartyNotFound(t *testing.T) {
	h := NewStatementHandler(&statementServiceStub{
		buildFn: func(ctx context.Context, input usecase.StatementInput) (*usecase.Statement, error) {
			return nil, domain.ErrPartyNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/statement?party_id=missing", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestStatementHandler_Get_InternalError(t *testing.T) {
	h := NewStatementHandler(&statementServiceStub{
		buildFn: func(ctx context.Context, input usecase.StatementInput) (*usecase.Statement, error) {
			return nil, errors.New("db down")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/statement", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestStatementHandler_Export(t *testing.T) {
	h := NewStatementHandler(&statementServiceStub{
		buildFullFn: func(ctx context.Context, input usecase.StatementInput) (*usecase.Statement, error) {
			return sampleStatement(), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/statement/export", nil)
	rec := httptest.NewRecorder()

	h.Export(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("expected workbook bytes in body")
	}
}
