package token

import "github.com/snrg-network/gsnrg/common"

// EventTransfer is emitted for every ledger transfer. Amount is the
// credited amount; Fee is the portion routed to the fee collector.
type EventTransfer struct {
	Asset  common.Address `json:"asset"`
	From   common.Address `json:"from"`
	To     common.Address `json:"to"`
	Amount uint64         `json:"amount"`
	Fee    uint64         `json:"fee,omitempty"`
}

func (EventTransfer) EventName() string { return "token_transfer" }

// EventApproval is emitted when an allowance is set or revoked.
type EventApproval struct {
	Asset   common.Address `json:"asset"`
	Owner   common.Address `json:"owner"`
	Spender common.Address `json:"spender"`
	Amount  uint64         `json:"amount"`
}

func (EventApproval) EventName() string { return "token_approval" }

// EventMinted is emitted at genesis supply creation.
type EventMinted struct {
	Asset  common.Address `json:"asset"`
	To     common.Address `json:"to"`
	Amount uint64         `json:"amount"`
}

func (EventMinted) EventName() string { return "token_minted" }

// EventBurned is emitted when supply is destroyed.
type EventBurned struct {
	Asset  common.Address `json:"asset"`
	From   common.Address `json:"from"`
	Amount uint64         `json:"amount"`
}

func (EventBurned) EventName() string { return "token_burned" }

// EventRestrictionSet is emitted when the transfer restriction toggles.
type EventRestrictionSet struct {
	Restricted bool `json:"restricted"`
}

func (EventRestrictionSet) EventName() string { return "token_restriction_set" }

// EventTransferFeeSet is emitted when an asset's fee rate changes.
type EventTransferFeeSet struct {
	Asset     common.Address `json:"asset"`
	FeeBps    uint64         `json:"fee_bps"`
	Collector common.Address `json:"collector"`
}

func (EventTransferFeeSet) EventName() string { return "token_transfer_fee_set" }

// EventEndpointProposed is emitted when an endpoint address is staged.
type EventEndpointProposed struct {
	Endpoint      string         `json:"endpoint"`
	Address       common.Address `json:"address"`
	ConfirmableAt int64          `json:"confirmable_at"`
}

func (EventEndpointProposed) EventName() string { return "token_endpoint_proposed" }

// EventEndpointConfirmed is emitted when a staged endpoint goes live.
type EventEndpointConfirmed struct {
	Endpoint string         `json:"endpoint"`
	Address  common.Address `json:"address"`
}

func (EventEndpointConfirmed) EventName() string { return "token_endpoint_confirmed" }
