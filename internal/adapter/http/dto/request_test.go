package dto

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/bizbooks/internal/domain"
	"github.com/iho/bizbooks/internal/usecase"
)

func TestParseStatementQuery(t *testing.T) {
	req := httptest.NewRequest("GET",
		"/statement?scope=suppliers&party_id=s1&types=purchase,payment&from=2024-01-01&to=2024-03-31&q=bolt&page=2&page_size=50", nil)

	input, err := ParseStatementQuery(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.Scope != domain.ScopeSuppliers {
		t.Errorf("scope = %q, want suppliers", input.Scope)
	}
	if input.PartyID != "s1" || input.Search != "bolt" {
		t.Errorf("party/search = %q/%q", input.PartyID, input.Search)
	}
	if len(input.DocTypes) != 2 || input.DocTypes[0] != domain.DocTypePurchase || input.DocTypes[1] != domain.DocTypePayment {
		t.Errorf("doc types = %v", input.DocTypes)
	}
	if input.From == nil || !input.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v", input.From)
	}
	if input.To == nil || input.To.Day() != 31 {
		t.Errorf("to = %v", input.To)
	}
	if input.Page != 2 || input.PageSize != 50 {
		t.Errorf("page/pageSize = %d/%d", input.Page, input.PageSize)
	}
}

func TestParseStatementQuery_Defaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/statement", nil)

	input, err := ParseStatementQuery(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.Scope != domain.ScopeAll {
		t.Errorf("scope = %q, want all", input.Scope)
	}
	if input.From != nil || input.To != nil {
		t.Errorf("expected open date range, got %v..%v", input.From, input.To)
	}
	if input.Page != 1 || input.PageSize != usecase.DefaultPageSize {
		t.Errorf("page/pageSize = %d/%d", input.Page, input.PageSize)
	}
}

func TestParseStatementQuery_InvalidScope(t *testing.T) {
	req := httptest.NewRequest("GET", "/statement?scope=vendors", nil)

	if _, err := ParseStatementQuery(req); !errors.Is(err, domain.ErrInvalidScope) {
		t.Fatalf("err = %v, want ErrInvalidScope", err)
	}
}

func TestParseStatementQuery_InvalidDocType(t *testing.T) {
	req := httptest.NewRequest("GET", "/statement?types=sale,invoice", nil)

	if _, err := ParseStatementQuery(req); !errors.Is(err, domain.ErrInvalidDocType) {
		t.Fatalf("err = %v, want ErrInvalidDocType", err)
	}
}

func TestParseStatementQuery_MalformedDatesIgnored(t *testing.T) {
	req := httptest.NewRequest("GET", "/statement?from=yesterday&to=2024-13-99", nil)

	input, err := ParseStatementQuery(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.From != nil || input.To != nil {
		t.Errorf("malformed dates should be treated as unset, got %v..%v", input.From, input.To)
	}
}
