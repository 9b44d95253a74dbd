package domain

import "github.com/shopspring/decimal"

// Placeholder names used when a source document carries no
// counterparty name.
const (
	UnknownCustomer = "Unknown Customer"
	UnknownSupplier = "Unknown Supplier"
)

// Normalize maps a sale invoice to a ledger entry. Sales post as
// debits against the customer.
func (s SaleInvoice) Normalize() LedgerEntry {
	name := s.CustomerName
	if name == "" {
		name = UnknownCustomer
	}
	return LedgerEntry{
		ID:               entryID(DocTypeSale, s.ID),
		Date:             s.Date,
		DocType:          DocTypeSale,
		DocNumber:        s.Number,
		Particulars:      "Sale to " + name,
		Debit:            s.Total,
		Credit:           decimal.Zero,
		CounterpartyID:   s.CustomerID,
		CounterpartyName: name,
	}
}

// Normalize maps a purchase invoice to a ledger entry. Purchases post
// as credits against the supplier.
func (p PurchaseInvoice) Normalize() LedgerEntry {
	name := p.SupplierName
	if name == "" {
		name = UnknownSupplier
	}
	return LedgerEntry{
		ID:               entryID(DocTypePurchase, p.ID),
		Date:             p.Date,
		DocType:          DocTypePurchase,
		DocNumber:        p.Number,
		Particulars:      "Purchase from " + name,
		Debit:            decimal.Zero,
		Credit:           p.Total,
		CounterpartyID:   p.SupplierID,
		CounterpartyName: name,
	}
}

// Normalize maps a receipt voucher to a ledger entry. Receipts post as
// credits; the payer is free text with no counterparty id.
func (r ReceiptVoucher) Normalize() LedgerEntry {
	name := r.ReceivedFrom
	if name == "" {
		name = UnknownCustomer
	}
	return LedgerEntry{
		ID:               entryID(DocTypeReceipt, r.ID),
		Date:             r.Date,
		DocType:          DocTypeReceipt,
		DocNumber:        r.Number,
		Particulars:      "Receipt from " + name,
		Debit:            decimal.Zero,
		Credit:           r.Amount,
		CounterpartyName: name,
	}
}

// Normalize maps a payment voucher to a ledger entry. Payments post as
// debits; the payee is free text with no counterparty id.
func (p PaymentVoucher) Normalize() LedgerEntry {
	name := p.PaidTo
	if name == "" {
		name = UnknownSupplier
	}
	return LedgerEntry{
		ID:               entryID(DocTypePayment, p.ID),
		Date:             p.Date,
		DocType:          DocTypePayment,
		DocNumber:        p.Number,
		Particulars:      "Payment to " + name,
		Debit:            p.Amount,
		Credit:           decimal.Zero,
		CounterpartyName: name,
	}
}

// entryID derives the stable, deduplicatable entry id from the
// document kind and source id.
func entryID(kind DocumentType, sourceID string) string {
	return string(kind) + "-" + sourceID
}
