package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bizbooks/internal/domain"
	"github.com/iho/bizbooks/internal/usecase"
)

// EntryResponse represents one balanced ledger entry in API responses.
type EntryResponse struct {
	ID               string          `json:"id"`
	Date             *time.Time      `json:"date,omitempty"`
	DocType          string          `json:"doc_type"`
	DocNumber        string          `json:"doc_number"`
	Particulars      string          `json:"particulars"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	Balance          decimal.Decimal `json:"balance"`
	BalanceSide      string          `json:"balance_side"`
	CounterpartyID   string          `json:"counterparty_id,omitempty"`
	CounterpartyName string          `json:"counterparty_name"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e domain.LedgerEntry) EntryResponse {
	resp := EntryResponse{
		ID:               e.ID,
		DocType:          string(e.DocType),
		DocNumber:        e.DocNumber,
		Particulars:      e.Particulars,
		Debit:            e.Debit,
		Credit:           e.Credit,
		Balance:          e.Balance,
		BalanceSide:      domain.BalanceSide(e.Balance),
		CounterpartyID:   e.CounterpartyID,
		CounterpartyName: e.CounterpartyName,
	}
	if !e.Date.IsZero() {
		d := e.Date
		resp.Date = &d
	}
	return resp
}

// TotalsResponse represents statement totals.
type TotalsResponse struct {
	TotalDebit     decimal.Decimal `json:"total_debit"`
	TotalCredit    decimal.Decimal `json:"total_credit"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	ClosingSide    string          `json:"closing_side"`
}

// StatementResponse represents one statement page.
type StatementResponse struct {
	Entries      []EntryResponse `json:"entries"`
	Totals       TotalsResponse  `json:"totals"`
	Party        *PartyResponse  `json:"party,omitempty"`
	Page         int             `json:"page"`
	PageSize     int             `json:"page_size"`
	TotalEntries int             `json:"total_entries"`
	TotalPages   int             `json:"total_pages"`
}

// StatementFromUseCase converts a computed statement to a response.
func StatementFromUseCase(s *usecase.Statement) *StatementResponse {
	entries := make([]EntryResponse, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = EntryFromDomain(e)
	}

	resp := &StatementResponse{
		Entries: entries,
		Totals: TotalsResponse{
			TotalDebit:     s.Totals.TotalDebit,
			TotalCredit:    s.Totals.TotalCredit,
			ClosingBalance: s.Totals.ClosingBalance,
			ClosingSide:    domain.BalanceSide(s.Totals.ClosingBalance),
		},
		Page:         s.Page,
		PageSize:     s.PageSize,
		TotalEntries: s.TotalEntries,
		TotalPages:   s.TotalPages,
	}
	if s.Party != nil {
		p := PartyFromDomain(*s.Party)
		resp.Party = &p
	}
	return resp
}

// PartyResponse represents a customer or supplier.
type PartyResponse struct {
	ID             string          `json:"id"`
	Kind           string          `json:"kind"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// PartyFromDomain converts a domain party to a response.
func PartyFromDomain(p domain.Party) PartyResponse {
	return PartyResponse{
		ID:             p.ID,
		Kind:           string(p.Kind),
		Name:           p.Name,
		OpeningBalance: p.OpeningBalance,
	}
}

// PartiesFromDomain converts domain parties to responses.
func PartiesFromDomain(parties []domain.Party) []PartyResponse {
	result := make([]PartyResponse, len(parties))
	for i, p := range parties {
		result[i] = PartyFromDomain(p)
	}
	return result
}

// LastActivityResponse represents the latest transaction line touching
// an inventory item.
type LastActivityResponse struct {
	Number   string          `json:"number,omitempty"`
	Date     *time.Time      `json:"date,omitempty"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
}

func lastActivityFromMatch(m *domain.LineMatch) *LastActivityResponse {
	if m == nil {
		return nil
	}
	resp := &LastActivityResponse{
		Number:   m.Number,
		Quantity: m.Line.Quantity,
		Rate:     m.Line.Rate,
	}
	if !m.Date.IsZero() {
		d := m.Date
		resp.Date = &d
	}
	return resp
}

// StockRowResponse represents one classified inventory item.
type StockRowResponse struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Category          string                `json:"category,omitempty"`
	Status            string                `json:"status"`
	CurrentStock      decimal.Decimal       `json:"current_stock"`
	MinimumStockLevel decimal.Decimal       `json:"minimum_stock_level"`
	SalesRate         decimal.Decimal       `json:"sales_rate"`
	Value             decimal.Decimal       `json:"value"`
	LastSale          *LastActivityResponse `json:"last_sale,omitempty"`
	LastPurchase      *LastActivityResponse `json:"last_purchase,omitempty"`
}

// StockRowsFromUseCase converts stock report rows to responses.
func StockRowsFromUseCase(rows []usecase.StockReportRow) []StockRowResponse {
	result := make([]StockRowResponse, len(rows))
	for i, row := range rows {
		result[i] = StockRowResponse{
			ID:                row.Item.ID,
			Name:              row.Item.Name,
			Category:          row.Item.Category,
			Status:            string(row.Status),
			CurrentStock:      row.CurrentStock,
			MinimumStockLevel: row.Item.MinimumStockLevel,
			SalesRate:         row.Item.SalesRate,
			Value:             row.Value,
			LastSale:          lastActivityFromMatch(row.LastSale),
			LastPurchase:      lastActivityFromMatch(row.LastPurchase),
		}
	}
	return result
}

// StockSummaryResponse represents inventory-wide aggregates.
type StockSummaryResponse struct {
	TotalItems     int             `json:"total_items"`
	InStock        int             `json:"in_stock"`
	LowStock       int             `json:"low_stock"`
	NegativeStock  int             `json:"negative_stock"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
}

// StockSummaryFromUseCase converts a stock summary to a response.
func StockSummaryFromUseCase(s *usecase.StockSummary) *StockSummaryResponse {
	return &StockSummaryResponse{
		TotalItems:     s.TotalItems,
		InStock:        s.InStock,
		LowStock:       s.LowStock,
		NegativeStock:  s.NegativeStock,
		TotalValuation: s.TotalValuation,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
