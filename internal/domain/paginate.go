package domain

// Paginate slices a balanced sequence into the requested fixed-size
// window, 1-based. An out-of-range page yields an empty slice rather
// than an error or a clamp: a caller holding a stale page after the
// result set shrank is expected to reset to page 1 itself.
func Paginate(entries []LedgerEntry, page, pageSize int) []LedgerEntry {
	if page < 1 || pageSize < 1 {
		return []LedgerEntry{}
	}

	start := (page - 1) * pageSize
	if start >= len(entries) {
		return []LedgerEntry{}
	}

	end := start + pageSize
	if end > len(entries) {
		end = len(entries)
	}

	return entries[start:end]
}

// TotalPages returns the number of windows a sequence paginates into.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
