package domain

import "errors"

var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrProposalNotFound = errors.New("proposal not found")
	ErrSessionNotFound  = errors.New("client session not found")
	ErrLikeNotFound     = errors.New("like not found")
	ErrInvalidInput     = errors.New("invalid input")

	// ErrCacheMiss is returned by Cache.Get when the key is absent.
	ErrCacheMiss = errors.New("cache miss")
)
