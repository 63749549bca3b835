package services

import "errors"

// Domain errors returned by the engine. Every failure is one of two kinds:
// a referenced record does not exist, or a requested amount exceeds what is
// available. Callers match with errors.Is.
var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrNoMatchingListing   = errors.New("no matching listing")
	ErrInsufficientShares  = errors.New("not enough shares available")
	ErrInsufficientBalance = errors.New("not enough shares owned")
)
