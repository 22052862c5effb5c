package token

import "errors"

var (
	ErrZeroAmount            = errors.New("token: zero amount")
	ErrZeroAddress           = errors.New("token: zero address")
	ErrUnauthorized          = errors.New("token: unauthorized")
	ErrInsufficientBalance   = errors.New("token: insufficient balance")
	ErrInsufficientAllowance = errors.New("token: insufficient allowance")
	ErrTransferRestricted    = errors.New("token: transfer restricted")
	ErrAlreadyConfigured     = errors.New("token: already configured")
	ErrNotConfigured         = errors.New("token: not configured")
	ErrFeeTooHigh            = errors.New("token: transfer fee too high")
	ErrUnknownEndpoint       = errors.New("token: unknown endpoint")
	ErrNoPendingEndpoint     = errors.New("token: no pending endpoint")
	ErrConfirmTooEarly       = errors.New("token: endpoint confirmation too early")
	ErrSameState             = errors.New("token: already in requested state")
)
