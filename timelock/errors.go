package timelock

import "errors"

var (
	ErrNotInitialized          = errors.New("timelock: not initialized")
	ErrAlreadyInitialized      = errors.New("timelock: already initialized")
	ErrUnauthorized            = errors.New("timelock: unauthorized")
	ErrZeroAddress             = errors.New("timelock: zero address")
	ErrZeroID                  = errors.New("timelock: zero proposal id")
	ErrInvalidDelay            = errors.New("timelock: min delay outside allowed range")
	ErrDelayTooShort           = errors.New("timelock: requested delay below minimum")
	ErrAlreadyScheduled        = errors.New("timelock: proposal id already scheduled")
	ErrNotScheduled            = errors.New("timelock: proposal not scheduled")
	ErrPredecessorNotExecuted  = errors.New("timelock: predecessor proposal not executed")
	ErrAlreadyExecuted         = errors.New("timelock: proposal already executed")
	ErrAlreadyCancelled        = errors.New("timelock: proposal already cancelled")
	ErrProposalCancelled       = errors.New("timelock: proposal cancelled")
	ErrNotReady                = errors.New("timelock: proposal delay not elapsed")
)
