package swap

import "errors"

var (
	ErrNotInitialized     = errors.New("swap: not initialized")
	ErrAlreadyInitialized = errors.New("swap: already initialized")
	ErrUnauthorized       = errors.New("swap: unauthorized")
	ErrPaused             = errors.New("swap: paused")
	ErrSameState          = errors.New("swap: already in requested state")
	ErrZeroAmount         = errors.New("swap: zero amount")
	ErrZeroAddress        = errors.New("swap: zero address")
	ErrZeroRoot           = errors.New("swap: zero merkle root")
	ErrPendingRootExists  = errors.New("swap: a proposed root is already pending")
	ErrNoPendingRoot      = errors.New("swap: no proposed root pending")
	ErrAlreadyFinalized   = errors.New("swap: distribution already finalized")
	ErrNotFinalized       = errors.New("swap: distribution not finalized")
	ErrNothingBurned      = errors.New("swap: nothing burned yet")
	ErrFinalizeTooEarly   = errors.New("swap: finalize delay not elapsed")
	ErrReopenTooEarly     = errors.New("swap: reopen cooldown not elapsed")
	ErrInexactBurn        = errors.New("swap: burn amount not exact")
)
