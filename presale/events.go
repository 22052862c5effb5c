package presale

import "github.com/snrg-network/gsnrg/common"

// EventInitialized records gate configuration.
type EventInitialized struct {
	Admin    common.Address `json:"admin"`
	Signer   common.Address `json:"signer"`
	Treasury common.Address `json:"treasury"`
}

func (EventInitialized) EventName() string { return "presale_initialized" }

// EventSignerSet records a signer-key rotation.
type EventSignerSet struct {
	Signer common.Address `json:"signer"`
}

func (EventSignerSet) EventName() string { return "presale_signer_set" }

// EventOpenSet records the sale opening or closing.
type EventOpenSet struct {
	Open bool `json:"open"`
}

func (EventOpenSet) EventName() string { return "presale_open_set" }

// EventMaxPurchaseSet records a per-purchase ceiling change.
type EventMaxPurchaseSet struct {
	Amount uint64 `json:"amount"`
}

func (EventMaxPurchaseSet) EventName() string { return "presale_max_purchase_set" }

// EventPaymentAssetAdded records a payment asset joining the allow-list.
type EventPaymentAssetAdded struct {
	Asset common.Address `json:"asset"`
}

func (EventPaymentAssetAdded) EventName() string { return "presale_payment_asset_added" }

// EventPaymentAssetRemoved records a payment asset leaving the allow-list.
type EventPaymentAssetRemoved struct {
	Asset common.Address `json:"asset"`
}

func (EventPaymentAssetRemoved) EventName() string { return "presale_payment_asset_removed" }

// EventPurchased records one redeemed purchase order.
type EventPurchased struct {
	Buyer         common.Address `json:"buyer"`
	PaymentAsset  common.Address `json:"payment_asset"`
	PaymentAmount uint64         `json:"payment_amount"`
	SnrgAmount    uint64         `json:"snrg_amount"`
	Nonce         uint64         `json:"nonce"`
}

func (EventPurchased) EventName() string { return "presale_purchased" }

// EventPauseSet records a pause state change.
type EventPauseSet struct {
	Paused bool `json:"paused"`
}

func (EventPauseSet) EventName() string { return "presale_pause_set" }
