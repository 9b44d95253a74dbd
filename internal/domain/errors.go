package domain

import "errors"

var (
	// Party errors
	ErrPartyNotFound = errors.New("party not found")

	// Statement errors
	ErrInvalidScope   = errors.New("invalid statement scope")
	ErrInvalidDocType = errors.New("invalid document type")
)
