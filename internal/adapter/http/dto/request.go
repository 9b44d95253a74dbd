package dto

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/iho/bizbooks/internal/domain"
	"github.com/iho/bizbooks/internal/usecase"
)

// Date layouts accepted on statement query parameters, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseStatementQuery maps statement query parameters to use case
// input. Unknown scopes and document types are rejected; malformed
// dates are ignored rather than rejected, matching the engine's
// treat-unparsable-as-unset policy.
func ParseStatementQuery(r *http.Request) (usecase.StatementInput, error) {
	q := r.URL.Query()

	scope, ok := domain.ParseStatementScope(q.Get("scope"))
	if !ok {
		return usecase.StatementInput{}, fmt.Errorf("%w: %q", domain.ErrInvalidScope, q.Get("scope"))
	}

	var docTypes []domain.DocumentType
	if raw := q.Get("types"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			docType, ok := domain.ParseDocumentType(part)
			if !ok {
				return usecase.StatementInput{}, fmt.Errorf("%w: %q", domain.ErrInvalidDocType, part)
			}
			docTypes = append(docTypes, docType)
		}
	}

	return usecase.StatementInput{
		Scope:    scope,
		PartyID:  q.Get("party_id"),
		DocTypes: docTypes,
		From:     parseDate(q.Get("from")),
		To:       parseDate(q.Get("to")),
		Search:   q.Get("q"),
		Page:     parseInt(q.Get("page"), 1),
		PageSize: parseInt(q.Get("page_size"), usecase.DefaultPageSize),
	}, nil
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func parseInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
