// Package sysop implements the gsnrg operation protocol.
//
// Operations are JSON-encoded Op envelopes submitted by callers. The
// processor never interprets payloads itself; it calls sysop.Dispatch()
// which routes to the handler registered by the engine package owning
// the kind (staking, presale, swap, rescue, timelock, token).
package sysop

import "encoding/json"

// Kind identifies the type of operation.
type Kind string

const (
	// Custody ledger
	KindTokenTransfer        Kind = "token_transfer"
	KindTokenApprove         Kind = "token_approve"
	KindTokenSetTransferFee  Kind = "token_set_transfer_fee"
	KindTokenSetRestriction  Kind = "token_set_restriction"
	KindTokenProposeEndpoint Kind = "token_propose_endpoint"
	KindTokenConfirmEndpoint Kind = "token_confirm_endpoint"

	// Reserve ledger
	KindStakingInitialize        Kind = "staking_initialize"
	KindStakingFundReserve       Kind = "staking_fund_reserve"
	KindStakingTopUpReserve      Kind = "staking_top_up_reserve"
	KindStakingStake             Kind = "staking_stake"
	KindStakingWithdraw          Kind = "staking_withdraw"
	KindStakingWithdrawEarly     Kind = "staking_withdraw_early"
	KindStakingEmergencyWithdraw Kind = "staking_emergency_withdraw"
	KindStakingPause             Kind = "staking_pause"
	KindStakingUnpause           Kind = "staking_unpause"

	// Purchase gate
	KindPresaleInitialize         Kind = "presale_initialize"
	KindPresaleSetSigner          Kind = "presale_set_signer"
	KindPresaleSetOpen            Kind = "presale_set_open"
	KindPresaleSetMaxPurchase     Kind = "presale_set_max_purchase"
	KindPresaleAddPaymentAsset    Kind = "presale_add_payment_asset"
	KindPresaleRemovePaymentAsset Kind = "presale_remove_payment_asset"
	KindPresalePurchase           Kind = "presale_purchase"
	KindPresalePause              Kind = "presale_pause"
	KindPresaleUnpause            Kind = "presale_unpause"

	// Burn-receipt ledger
	KindSwapInitialize  Kind = "swap_initialize"
	KindSwapBurn        Kind = "swap_burn"
	KindSwapProposeRoot Kind = "swap_propose_root"
	KindSwapCancelRoot  Kind = "swap_cancel_root"
	KindSwapFinalize    Kind = "swap_finalize"
	KindSwapReopen      Kind = "swap_reopen"
	KindSwapPause       Kind = "swap_pause"
	KindSwapUnpause     Kind = "swap_unpause"

	// Rescue registry
	KindRescueInitialize     Kind = "rescue_initialize"
	KindRescueRegisterPlan   Kind = "rescue_register_plan"
	KindRescueInitiate       Kind = "rescue_initiate"
	KindRescueCancel         Kind = "rescue_cancel"
	KindRescueExecute        Kind = "rescue_execute"
	KindRescueAddExecutor    Kind = "rescue_add_executor"
	KindRescueRemoveExecutor Kind = "rescue_remove_executor"
	KindRescueSetMaxAmount   Kind = "rescue_set_max_amount"
	KindRescuePause          Kind = "rescue_pause"
	KindRescueUnpause        Kind = "rescue_unpause"

	// Proposal queue
	KindTimelockInitialize  Kind = "timelock_initialize"
	KindTimelockSchedule    Kind = "timelock_schedule"
	KindTimelockExecute     Kind = "timelock_execute"
	KindTimelockCancel      Kind = "timelock_cancel"
	KindTimelockUpdateDelay Kind = "timelock_update_delay"
)

// Op is the top-level envelope submitted for every operation.
type Op struct {
	Kind    Kind            `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
