package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bizbooks/internal/domain"
)

// StatementUseCase builds counterparty statements: it merges every
// document source into one ledger, filters it, folds the running
// balance and pages the result. All computation is in memory; the
// repositories only supply the already-loaded collections.
type StatementUseCase struct {
	saleRepo     SaleRepository
	purchaseRepo PurchaseRepository
	voucherRepo  VoucherRepository
	partyRepo    PartyRepository
	cache        Cache
	cacheTTL     time.Duration
}

// NewStatementUseCase creates a new StatementUseCase. cache may be nil
// to disable statement caching.
func NewStatementUseCase(
	saleRepo SaleRepository,
	purchaseRepo PurchaseRepository,
	voucherRepo VoucherRepository,
	partyRepo PartyRepository,
	cache Cache,
) *StatementUseCase {
	return &StatementUseCase{
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		voucherRepo:  voucherRepo,
		partyRepo:    partyRepo,
		cache:        cache,
		cacheTTL:     StatementCacheTTL,
	}
}

// SetCacheTTL overrides the default statement cache TTL.
func (uc *StatementUseCase) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		uc.cacheTTL = ttl
	}
}

// StatementInput represents the statement criteria plus paging.
type StatementInput struct {
	Scope    domain.StatementScope
	PartyID  string
	DocTypes []domain.DocumentType
	From     *time.Time
	To       *time.Time
	Search   string
	Page     int
	PageSize int
}

// Statement is one page of a balanced statement plus its totals and
// paging metadata. TotalPages lets clients reset a stale page; an
// out-of-range page comes back with empty entries, never an error.
type Statement struct {
	Entries      []domain.LedgerEntry
	Totals       domain.StatementTotals
	Party        *domain.Party
	Page         int
	PageSize     int
	TotalEntries int
	TotalPages   int
}

// BuildStatement computes a statement page from the current document
// collections.
func (uc *StatementUseCase) BuildStatement(ctx context.Context, input StatementInput) (*Statement, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.PageSize < 1 {
		input.PageSize = DefaultPageSize
	}
	if input.PageSize > MaxPageSize {
		input.PageSize = MaxPageSize
	}

	if cached, ok := uc.cachedStatement(ctx, input); ok {
		return cached, nil
	}

	balanced, totals, party, err := uc.buildBalanced(ctx, input)
	if err != nil {
		return nil, err
	}

	statement := &Statement{
		Entries:      domain.Paginate(balanced, input.Page, input.PageSize),
		Totals:       totals,
		Party:        party,
		Page:         input.Page,
		PageSize:     input.PageSize,
		TotalEntries: len(balanced),
		TotalPages:   domain.TotalPages(len(balanced), input.PageSize),
	}

	uc.storeStatement(ctx, input, statement)

	return statement, nil
}

// BuildFullStatement computes the complete, unpaged statement. Used by
// the export path, which needs every row.
func (uc *StatementUseCase) BuildFullStatement(ctx context.Context, input StatementInput) (*Statement, error) {
	balanced, totals, party, err := uc.buildBalanced(ctx, input)
	if err != nil {
		return nil, err
	}

	pages := 0
	if len(balanced) > 0 {
		pages = 1
	}

	return &Statement{
		Entries:      balanced,
		Totals:       totals,
		Party:        party,
		Page:         1,
		PageSize:     len(balanced),
		TotalEntries: len(balanced),
		TotalPages:   pages,
	}, nil
}

// buildBalanced runs the engine pipeline up to the balance fold:
// resolve party, merge, filter, fold.
func (uc *StatementUseCase) buildBalanced(ctx context.Context, input StatementInput) ([]domain.LedgerEntry, domain.StatementTotals, *domain.Party, error) {
	criteria := domain.StatementCriteria{
		Scope:    input.Scope,
		DocTypes: input.DocTypes,
		From:     input.From,
		To:       input.To,
		Search:   input.Search,
	}

	seed := decimal.Zero
	var party *domain.Party
	if input.PartyID != "" {
		p, err := uc.partyRepo.GetByID(ctx, input.PartyID)
		if err != nil {
			return nil, domain.StatementTotals{}, nil, fmt.Errorf("resolve party: %w", err)
		}
		if p == nil {
			return nil, domain.StatementTotals{}, nil, domain.ErrPartyNotFound
		}
		party = p
		criteria.PartyName = p.Name
		seed = p.OpeningBalance
	}

	merged, err := uc.mergedLedger(ctx)
	if err != nil {
		return nil, domain.StatementTotals{}, nil, err
	}

	filtered := domain.FilterEntries(merged, criteria)
	balanced, totals := domain.WithBalances(filtered, seed)

	return balanced, totals, party, nil
}

// mergedLedger loads all four document collections and merges them in
// the fixed order that defines the equal-date tie-break.
func (uc *StatementUseCase) mergedLedger(ctx context.Context) ([]domain.LedgerEntry, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	purchases, err := uc.purchaseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load purchases: %w", err)
	}
	receipts, err := uc.voucherRepo.ListReceipts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load receipts: %w", err)
	}
	payments, err := uc.voucherRepo.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}

	return domain.MergeDocuments(
		domain.SaleDocuments(sales),
		domain.PurchaseDocuments(purchases),
		domain.ReceiptDocuments(receipts),
		domain.PaymentDocuments(payments),
	), nil
}

// cachedStatement looks up a previously computed statement. Cache
// failures fall through to a recompute.
func (uc *StatementUseCase) cachedStatement(ctx context.Context, input StatementInput) (*Statement, bool) {
	if uc.cache == nil {
		return nil, false
	}
	raw, err := uc.cache.Get(ctx, statementCacheKey(input))
	if err != nil || raw == nil {
		return nil, false
	}
	var statement Statement
	if err := json.Unmarshal(raw, &statement); err != nil {
		return nil, false
	}
	return &statement, true
}

func (uc *StatementUseCase) storeStatement(ctx context.Context, input StatementInput, statement *Statement) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(statement)
	if err != nil {
		return
	}
	// Best effort: a failed write just means the next read recomputes.
	_ = uc.cache.Set(ctx, statementCacheKey(input), raw, uc.cacheTTL)
}

// statementCacheKey derives a stable key from the full criteria, so
// any criteria change addresses a different cache slot.
func statementCacheKey(input StatementInput) string {
	types := make([]string, len(input.DocTypes))
	for i, t := range input.DocTypes {
		types[i] = string(t)
	}

	var from, to string
	if input.From != nil {
		from = input.From.Format(time.RFC3339)
	}
	if input.To != nil {
		to = input.To.Format(time.RFC3339)
	}

	sum := sha256.Sum256([]byte(fmt.Sprintf(
		"%s|%s|%s|%s|%s|%s|%d|%d",
		input.Scope, input.PartyID, strings.Join(types, ","),
		from, to, input.Search, input.Page, input.PageSize,
	)))

	return "statement:" + hex.EncodeToString(sum[:])
}
