package domain

import "sort"

// MergeDocuments normalizes every document from every source collection
// and merges them into one chronological sequence. Entries are
// deduplicated by id, so feeding the same collection twice changes
// nothing. The sort is stable: entries sharing a date keep the order in
// which their collections were supplied, which gives a deterministic
// tie-break when callers pass sales, purchases, receipts, payments in
// that order.
func MergeDocuments(sources ...[]SourceDocument) []LedgerEntry {
	size := 0
	for _, src := range sources {
		size += len(src)
	}

	seen := make(map[string]struct{}, size)
	entries := make([]LedgerEntry, 0, size)

	for _, src := range sources {
		for _, doc := range src {
			e := doc.Normalize()
			if _, dup := seen[e.ID]; dup {
				continue
			}
			seen[e.ID] = struct{}{}
			entries = append(entries, e)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return entries
}

// SaleDocuments converts a sale collection for MergeDocuments.
func SaleDocuments(sales []SaleInvoice) []SourceDocument {
	docs := make([]SourceDocument, len(sales))
	for i, s := range sales {
		docs[i] = s
	}
	return docs
}

// PurchaseDocuments converts a purchase collection for MergeDocuments.
func PurchaseDocuments(purchases []PurchaseInvoice) []SourceDocument {
	docs := make([]SourceDocument, len(purchases))
	for i, p := range purchases {
		docs[i] = p
	}
	return docs
}

// ReceiptDocuments converts a receipt collection for MergeDocuments.
func ReceiptDocuments(receipts []ReceiptVoucher) []SourceDocument {
	docs := make([]SourceDocument, len(receipts))
	for i, r := range receipts {
		docs[i] = r
	}
	return docs
}

// PaymentDocuments converts a payment collection for MergeDocuments.
func PaymentDocuments(payments []PaymentVoucher) []SourceDocument {
	docs := make([]SourceDocument, len(payments))
	for i, p := range payments {
		docs[i] = p
	}
	return docs
}
