package presale

import "errors"

var (
	ErrNotInitialized      = errors.New("presale: not initialized")
	ErrAlreadyInitialized  = errors.New("presale: already initialized")
	ErrUnauthorized        = errors.New("presale: unauthorized")
	ErrClosed              = errors.New("presale: sale closed")
	ErrPaused              = errors.New("presale: paused")
	ErrSameState           = errors.New("presale: already in requested state")
	ErrZeroAmount          = errors.New("presale: zero amount")
	ErrZeroAddress         = errors.New("presale: zero address")
	ErrDeadlineExpired     = errors.New("presale: order deadline expired")
	ErrBelowMinimum        = errors.New("presale: amount below minimum purchase")
	ErrAboveMaximum        = errors.New("presale: amount above maximum purchase")
	ErrCooldownActive      = errors.New("presale: purchase cooldown active")
	ErrDailyLimitReached   = errors.New("presale: daily purchase limit reached")
	ErrAssetNotSupported   = errors.New("presale: payment asset not supported")
	ErrInvalidPaymentAsset = errors.New("presale: payment asset cannot be the sale asset")
	ErrAssetAlreadyListed  = errors.New("presale: payment asset already listed")
	ErrAssetNotListed      = errors.New("presale: payment asset not listed")
	ErrAssetListFull       = errors.New("presale: payment asset list full")
	ErrNonceUsed           = errors.New("presale: nonce already used")
	ErrInvalidSignature    = errors.New("presale: invalid signature")
	ErrBadSigner           = errors.New("presale: order not signed by configured signer")
	ErrUnderpaidTreasury   = errors.New("presale: treasury received less than payment amount")
	ErrInexactDelivery     = errors.New("presale: delivery amount not exact")
)
