package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/bizbooks/internal/adapter/http/dto"
	"github.com/iho/bizbooks/tests/testutil"
)

func nullDec(v int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(v), Valid: true}
}

func TestStockEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	db := testutil.NewTestDB(t)
	defer db.Cleanup()
	db.TruncateAll(ctx)

	db.SeedInventoryItem(ctx, "widget", "Widget", "hardware",
		nullDec(100), nullDec(50), decimal.NewFromInt(10), decimal.NewFromInt(20))
	db.SeedInventoryItem(ctx, "gadget", "Gadget", "hardware",
		nullDec(10), nullDec(3), decimal.NewFromInt(5), decimal.NewFromInt(100))
	db.SeedInventoryItem(ctx, "gizmo", "Gizmo", "",
		nullDec(0), nullDec(-2), decimal.Zero, decimal.NewFromInt(50))

	db.SeedSale(ctx, "sl1", "INV-9", date("2024-02-01"), "", "Walk-in", decimal.NewFromInt(40))
	db.SeedInvoiceLine(ctx, "sale", "sl1", "items", "widget", "Widget",
		decimal.NewFromInt(2), decimal.NewFromInt(20))

	router := newRouter(t, db)

	t.Run("report classifies and attaches last activity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stock/report", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp struct {
			Items []dto.StockRowResponse `json:"items"`
			Count int                    `json:"count"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Count != 3 {
			t.Fatalf("expected 3 items, got %d", resp.Count)
		}

		byID := make(map[string]dto.StockRowResponse, len(resp.Items))
		for _, row := range resp.Items {
			byID[row.ID] = row
		}

		if byID["widget"].Status != "in_stock" {
			t.Errorf("widget status = %s, want in_stock", byID["widget"].Status)
		}
		if byID["gadget"].Status != "low_stock" {
			t.Errorf("gadget status = %s, want low_stock", byID["gadget"].Status)
		}
		if byID["gizmo"].Status != "negative_stock" {
			t.Errorf("gizmo status = %s, want negative_stock", byID["gizmo"].Status)
		}
		if byID["widget"].LastSale == nil || byID["widget"].LastSale.Number != "INV-9" {
			t.Errorf("widget last sale = %+v, want INV-9", byID["widget"].LastSale)
		}
		if byID["gadget"].LastSale != nil {
			t.Errorf("gadget should have no last sale, got %+v", byID["gadget"].LastSale)
		}
	})

	t.Run("summary counts statuses and values negative stock", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stock/summary", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp dto.StockSummaryResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.TotalItems != 3 || resp.InStock != 1 || resp.LowStock != 1 || resp.NegativeStock != 1 {
			t.Fatalf("unexpected counts: %+v", resp)
		}
		// 50*20 + 3*100 + (-2)*50
		if !resp.TotalValuation.Equal(decimal.NewFromInt(1200)) {
			t.Fatalf("valuation = %s, want 1200", resp.TotalValuation)
		}
	})

	t.Run("export returns a workbook", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stock/report/export", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := rec.Header().Get("Content-Type"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
			t.Fatalf("unexpected content type %q", got)
		}
	})
}

func TestPartiesEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	db := testutil.NewTestDB(t)
	defer db.Cleanup()
	db.TruncateAll(ctx)

	db.SeedParty(ctx, "c1", "customer", "Acme Traders", decimal.NewFromInt(500))
	db.SeedParty(ctx, "s1", "supplier", "Bolt Supplies", decimal.Zero)

	router := newRouter(t, db)

	t.Run("list returns every party", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/parties", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp struct {
			Parties []dto.PartyResponse `json:"parties"`
			Count   int                 `json:"count"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Count != 2 {
			t.Fatalf("expected 2 parties, got %d", resp.Count)
		}
	})

	t.Run("get returns one party", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/parties/c1", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp dto.PartyResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Name != "Acme Traders" || resp.Kind != "customer" {
			t.Fatalf("unexpected party %+v", resp)
		}
	})

	t.Run("get unknown party returns 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/parties/nope", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
