package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/bizbooks/internal/adapter/http/dto"
	"github.com/iho/bizbooks/internal/domain"
)

// PartyService defines the behavior needed by PartyHandler.
type PartyService interface {
	ListParties(ctx context.Context) ([]domain.Party, error)
	GetParty(ctx context.Context, id string) (*domain.Party, error)
}

// PartyHandler handles customer and supplier lookups.
type PartyHandler struct {
	partyUC PartyService
}

// NewPartyHandler creates a new PartyHandler.
func NewPartyHandler(partyUC PartyService) *PartyHandler {
	return &PartyHandler{partyUC: partyUC}
}

// List lists all customers and suppliers.
func (h *PartyHandler) List(w http.ResponseWriter, r *http.Request) {
	parties, err := h.partyUC.ListParties(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list parties", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"parties": dto.PartiesFromDomain(parties),
		"count":   len(parties),
	})
}

// Get retrieves one party by id.
func (h *PartyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	party, err := h.partyUC.GetParty(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get party", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PartyFromDomain(*party))
}
