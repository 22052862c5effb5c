package staking

import "errors"

var (
	ErrNotInitialized       = errors.New("staking: not initialized")
	ErrAlreadyInitialized   = errors.New("staking: already initialized")
	ErrUnauthorized         = errors.New("staking: unauthorized")
	ErrPaused               = errors.New("staking: paused")
	ErrSameState            = errors.New("staking: already in requested state")
	ErrZeroAmount           = errors.New("staking: zero amount")
	ErrZeroAddress          = errors.New("staking: zero address")
	ErrInvalidDuration      = errors.New("staking: duration not in rate table")
	ErrAlreadyFunded        = errors.New("staking: reserve already funded")
	ErrNotFunded            = errors.New("staking: reserve not funded")
	ErrInsufficientReserves = errors.New("staking: insufficient reward reserves")
	ErrStakeNotFound        = errors.New("staking: stake not found")
	ErrAlreadyWithdrawn     = errors.New("staking: stake already withdrawn")
	ErrNotMatured           = errors.New("staking: stake not matured")
	ErrAlreadyMatured       = errors.New("staking: stake already matured")
	ErrFeeExceedsPrincipal  = errors.New("staking: fee exceeds principal")
	ErrInexactPayout        = errors.New("staking: payout delivery not exact")
)
