package contracts

import "errors"

// Error definitions for backend and catalog issues.
var (
	// ErrBackendUnavailable means the native control handles are not
	// initialized; the calling operation cannot proceed.
	ErrBackendUnavailable = errors.New("native control backend not initialized")
	// ErrNoCards means device enumeration found no sound cards.
	ErrNoCards = errors.New("no sound cards detected")
	// ErrCardNotFound means an explicitly requested card index does not exist.
	ErrCardNotFound = errors.New("requested card index not found")
	// ErrControlNotFound means a numid is absent from the live catalog,
	// typically recovered by re-enumerating.
	ErrControlNotFound = errors.New("control not found in native backend")
)
