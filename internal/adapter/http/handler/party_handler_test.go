package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/bizbooks/internal/adapter/http/dto"
	"github.com/iho/bizbooks/internal/domain"
)

type partyServiceStub struct {
	listFn func(ctx context.Context) ([]domain.Party, error)
	getFn  func(ctx context.Context, id string) (*domain.Party, error)
}

func (s *partyServiceStub) ListParties(ctx context.Context) ([]domain.Party, error) {
	return s.listFn(ctx)
}

func (s *partyServiceStub) GetParty(ctx context.Context, id string) (*domain.Party, error) {
	return s.getFn(ctx, id)
}

func TestPartyHandler_List(t *testing.T) {
	h := NewPartyHandler(&partyServiceStub{
		listFn: func(ctx context.Context) ([]domain.Party, error) {
			return []domain.Party{
				{ID: "c1", Kind: domain.PartyCustomer, Name: "Acme", OpeningBalance: decimal.NewFromInt(500)},
				{ID: "s1", Kind: domain.PartySupplier, Name: "Bolt Co"},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/parties", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Parties []dto.PartyResponse `json:"parties"`
		Count   int                 `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 2 || resp.Parties[0].Name != "Acme" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPartyHandler_Get(t *testing.T) {
	h := NewPartyHandler(&partyServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Party, error) {
			if id != "c1" {
				return nil, domain.ErrPartyNotFound
			}
			return &domain.Party{ID: "c1", Kind: domain.PartyCustomer, Name: "Acme"}, nil
		},
	})

	r := chi.NewRouter()
	r.Get("/parties/{id}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/parties/c1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.PartyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "c1" || resp.Kind != string(domain.PartyCustomer) {
		t.Fatalf("unexpected party: %+v", resp)
	}

	req = httptest.NewRequest(http.MethodGet, "/parties/nope", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
