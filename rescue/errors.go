package rescue

import "errors"

var (
	ErrNotInitialized     = errors.New("rescue: not initialized")
	ErrAlreadyInitialized = errors.New("rescue: already initialized")
	ErrUnauthorized       = errors.New("rescue: unauthorized")
	ErrPaused             = errors.New("rescue: paused")
	ErrSameState          = errors.New("rescue: already in requested state")
	ErrZeroAmount         = errors.New("rescue: zero amount")
	ErrZeroAddress        = errors.New("rescue: zero address")
	ErrNoPlan             = errors.New("rescue: no plan registered")
	ErrRecoveryIsOwner    = errors.New("rescue: recovery address equals owner")
	ErrInvalidDelay       = errors.New("rescue: delay outside allowed range")
	ErrAlreadyArmed       = errors.New("rescue: rescue already armed")
	ErrNotArmed           = errors.New("rescue: no rescue armed")
	ErrInitiationCooldown = errors.New("rescue: initiation cooldown active")
	ErrNotReady           = errors.New("rescue: rescue delay not elapsed")
	ErrAboveCeiling       = errors.New("rescue: amount above rescue ceiling")
	ErrExecutorExists     = errors.New("rescue: executor already registered")
	ErrExecutorNotFound   = errors.New("rescue: executor not registered")
	ErrExecutorListFull   = errors.New("rescue: executor list full")
	ErrInexactRescue      = errors.New("rescue: rescued amount not exact")
)
