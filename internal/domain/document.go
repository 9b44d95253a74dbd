package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType identifies the kind of source document a ledger entry
// was derived from.
type DocumentType string

const (
	DocTypeSale     DocumentType = "sale"
	DocTypePurchase DocumentType = "purchase"
	DocTypeReceipt  DocumentType = "receipt"
	DocTypePayment  DocumentType = "payment"
)

// ParseDocumentType parses a document type string.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch DocumentType(s) {
	case DocTypeSale, DocTypePurchase, DocTypeReceipt, DocTypePayment:
		return DocumentType(s), true
	}
	return "", false
}

// SourceDocument is any financial document that can be normalized into
// a ledger entry. Documents are owned by the data layer and never
// mutated here.
type SourceDocument interface {
	Normalize() LedgerEntry
}

// SaleInvoice is a sales invoice issued to a customer.
type SaleInvoice struct {
	ID           string
	Date         time.Time
	Number       string
	CustomerID   string
	CustomerName string
	Total        decimal.Decimal
}

// PurchaseInvoice is a purchase invoice received from a supplier.
type PurchaseInvoice struct {
	ID           string
	Date         time.Time
	Number       string
	SupplierID   string
	SupplierName string
	Total        decimal.Decimal
}

// ReceiptVoucher records money received. The payer is free text; there
// is no stable link to a customer record.
type ReceiptVoucher struct {
	ID           string
	Date         time.Time
	Number       string
	ReceivedFrom string
	Amount       decimal.Decimal
}

// PaymentVoucher records money paid out. The payee is free text; there
// is no stable link to a supplier record.
type PaymentVoucher struct {
	ID     string
	Date   time.Time
	Number string
	PaidTo string
	Amount decimal.Decimal
}
