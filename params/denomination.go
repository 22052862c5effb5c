package params

// These are the multipliers for SNRG denominations.
// Example: To get the base-unit value of an amount in whole tokens, use
//
//	amount * params.SNRG
const (
	BaseUnit = 1
	SNRG     = 1e9
)
