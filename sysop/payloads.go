package sysop

import "encoding/json"

// Addresses, hashes and signatures travel as 0x-prefixed hex strings;
// handlers validate and decode them. Amounts are base-unit uint64 values
// and timestamps/delays are unix seconds, matching the storage encoding.

// TransferPayload is the payload for token_transfer.
type TransferPayload struct {
	Asset  string `json:"asset"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

// ApprovePayload is the payload for token_approve.
type ApprovePayload struct {
	Asset   string `json:"asset"`
	Spender string `json:"spender"`
	Amount  uint64 `json:"amount"`
}

// SetTransferFeePayload is the payload for token_set_transfer_fee.
type SetTransferFeePayload struct {
	Asset     string `json:"asset"`
	FeeBps    uint64 `json:"fee_bps"`
	Collector string `json:"collector"`
}

// SetRestrictionPayload is the payload for token_set_restriction.
type SetRestrictionPayload struct {
	Restricted bool `json:"restricted"`
}

// ProposeEndpointPayload is the payload for token_propose_endpoint.
// Endpoint names one of the four pool roles: staking, presale, swap, rescue.
type ProposeEndpointPayload struct {
	Endpoint string `json:"endpoint"`
	Address  string `json:"address"`
}

// ConfirmEndpointPayload is the payload for token_confirm_endpoint.
type ConfirmEndpointPayload struct {
	Endpoint string `json:"endpoint"`
}

// StakingInitializePayload is the payload for staking_initialize.
// An empty Admin defaults to the operation sender.
type StakingInitializePayload struct {
	Admin    string `json:"admin,omitempty"`
	Treasury string `json:"treasury"`
}

// FundReservePayload is the payload for staking_fund_reserve and
// staking_top_up_reserve.
type FundReservePayload struct {
	Amount uint64 `json:"amount"`
}

// StakePayload is the payload for staking_stake.
type StakePayload struct {
	Amount       uint64 `json:"amount"`
	DurationDays uint64 `json:"duration_days"`
}

// WithdrawPayload is the payload for staking_withdraw,
// staking_withdraw_early and staking_emergency_withdraw. Index is the
// per-owner stake record index assigned at stake time.
type WithdrawPayload struct {
	Index uint64 `json:"index"`
}

// PresaleInitializePayload is the payload for presale_initialize.
// An empty Admin defaults to the operation sender.
type PresaleInitializePayload struct {
	Admin    string `json:"admin,omitempty"`
	Signer   string `json:"signer"`
	Treasury string `json:"treasury"`
}

// SetSignerPayload is the payload for presale_set_signer.
type SetSignerPayload struct {
	Signer string `json:"signer"`
}

// SetOpenPayload is the payload for presale_set_open.
type SetOpenPayload struct {
	Open bool `json:"open"`
}

// SetMaxPurchasePayload is the payload for presale_set_max_purchase.
type SetMaxPurchasePayload struct {
	Amount uint64 `json:"amount"`
}

// PaymentAssetPayload is the payload for presale_add_payment_asset and
// presale_remove_payment_asset.
type PaymentAssetPayload struct {
	Asset string `json:"asset"`
}

// PurchasePayload is the payload for presale_purchase. Signature is the
// 65-byte recoverable signature over the order digest, hex encoded.
type PurchasePayload struct {
	PaymentAsset  string `json:"payment_asset"`
	PaymentAmount uint64 `json:"payment_amount"`
	SnrgAmount    uint64 `json:"snrg_amount"`
	Nonce         uint64 `json:"nonce"`
	Deadline      int64  `json:"deadline"`
	Signature     string `json:"signature"`
}

// SwapInitializePayload is the payload for swap_initialize.
// An empty Admin defaults to the operation sender.
type SwapInitializePayload struct {
	Admin string `json:"admin,omitempty"`
}

// BurnPayload is the payload for swap_burn.
type BurnPayload struct {
	Amount uint64 `json:"amount"`
}

// ProposeRootPayload is the payload for swap_propose_root and
// swap_reopen.
type ProposeRootPayload struct {
	Root string `json:"root"`
}

// RescueInitializePayload is the payload for rescue_initialize.
// An empty Admin defaults to the operation sender.
type RescueInitializePayload struct {
	Admin string `json:"admin,omitempty"`
}

// RegisterPlanPayload is the payload for rescue_register_plan.
type RegisterPlanPayload struct {
	Recovery     string `json:"recovery"`
	DelaySeconds int64  `json:"delay_seconds"`
}

// RescueExecutePayload is the payload for rescue_execute. Owner names
// the plan whose rescue is being executed; the caller may be the owner,
// the recovery address or a registered executor.
type RescueExecutePayload struct {
	Owner  string `json:"owner"`
	Amount uint64 `json:"amount"`
}

// ExecutorPayload is the payload for rescue_add_executor and
// rescue_remove_executor.
type ExecutorPayload struct {
	Executor string `json:"executor"`
}

// SetMaxRescuePayload is the payload for rescue_set_max_amount. Zero
// removes the ceiling.
type SetMaxRescuePayload struct {
	Amount uint64 `json:"amount"`
}

// TimelockInitializePayload is the payload for timelock_initialize.
// An empty Admin defaults to the operation sender.
type TimelockInitializePayload struct {
	Admin           string `json:"admin,omitempty"`
	MinDelaySeconds int64  `json:"min_delay_seconds"`
}

// SchedulePayload is the payload for timelock_schedule. ID is a
// caller-chosen 32-byte identifier; Payload is the opaque capability
// invoked at execution. Predecessor, when set, names a proposal that
// must already be executed.
type SchedulePayload struct {
	ID           string          `json:"id"`
	Target       string          `json:"target"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	Predecessor  string          `json:"predecessor,omitempty"`
	DelaySeconds int64           `json:"delay_seconds"`
}

// ProposalIDPayload is the payload for timelock_execute and
// timelock_cancel.
type ProposalIDPayload struct {
	ID string `json:"id"`
}

// UpdateDelayPayload is the payload for timelock_update_delay.
type UpdateDelayPayload struct {
	MinDelaySeconds int64 `json:"min_delay_seconds"`
}
