package presale

import "github.com/snrg-network/gsnrg/common"

// SaleInfo is the view of the purchase-gate configuration.
type SaleInfo struct {
	Admin       common.Address `json:"admin"`
	Signer      common.Address `json:"signer"`
	Treasury    common.Address `json:"treasury"`
	IsOpen      bool           `json:"is_open"`
	Paused      bool           `json:"paused"`
	MaxPurchase uint64         `json:"max_purchase"`
	MinPurchase uint64         `json:"min_purchase"`
}
