package usecase

import (
	"context"
	"fmt"

	"github.com/iho/bizbooks/internal/domain"
)

// PartyUseCase serves the customer/supplier reference data statement
// clients use to populate the counterparty filter.
type PartyUseCase struct {
	partyRepo PartyRepository
}

// NewPartyUseCase creates a new PartyUseCase.
func NewPartyUseCase(partyRepo PartyRepository) *PartyUseCase {
	return &PartyUseCase{partyRepo: partyRepo}
}

// ListParties lists all customers and suppliers.
func (uc *PartyUseCase) ListParties(ctx context.Context) ([]domain.Party, error) {
	parties, err := uc.partyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load parties: %w", err)
	}
	return parties, nil
}

// GetParty retrieves one party by id.
func (uc *PartyUseCase) GetParty(ctx context.Context, id string) (*domain.Party, error) {
	party, err := uc.partyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load party: %w", err)
	}
	if party == nil {
		return nil, domain.ErrPartyNotFound
	}
	return party, nil
}
