package presale

import (
	"fmt"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/sysop"
)

func init() {
	sysop.DefaultRegistry.Register(&presaleHandler{})
}

// presaleHandler implements sysop.Handler for purchase gate operations.
type presaleHandler struct{}

func (h *presaleHandler) CanHandle(kind sysop.Kind) bool {
	switch kind {
	case sysop.KindPresaleInitialize,
		sysop.KindPresaleSetSigner,
		sysop.KindPresaleSetOpen,
		sysop.KindPresaleSetMaxPurchase,
		sysop.KindPresaleAddPaymentAsset,
		sysop.KindPresaleRemovePaymentAsset,
		sysop.KindPresalePurchase,
		sysop.KindPresalePause,
		sysop.KindPresaleUnpause:
		return true
	}
	return false
}

func (h *presaleHandler) Handle(ctx *sysop.Context, op *sysop.Op) error {
	db := ctx.StateDB
	from := ctx.From

	switch op.Kind {
	case sysop.KindPresaleInitialize:
		var p sysop.PresaleInitializePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("presale initialize: %w", err)
		}
		admin := from
		if p.Admin != "" {
			if !common.IsHexAddress(p.Admin) {
				return fmt.Errorf("presale initialize: invalid admin address: %s", p.Admin)
			}
			admin = common.HexToAddress(p.Admin)
		}
		if !common.IsHexAddress(p.Signer) {
			return fmt.Errorf("presale initialize: invalid signer address: %s", p.Signer)
		}
		if !common.IsHexAddress(p.Treasury) {
			return fmt.Errorf("presale initialize: invalid treasury address: %s", p.Treasury)
		}
		return Initialize(db, admin, common.HexToAddress(p.Signer), common.HexToAddress(p.Treasury))

	case sysop.KindPresaleSetSigner:
		var p sysop.SetSignerPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("presale set signer: %w", err)
		}
		if !common.IsHexAddress(p.Signer) {
			return fmt.Errorf("presale set signer: invalid signer address: %s", p.Signer)
		}
		return SetSigner(db, from, common.HexToAddress(p.Signer))

	case sysop.KindPresaleSetOpen:
		var p sysop.SetOpenPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("presale set open: %w", err)
		}
		return SetOpen(db, from, p.Open)

	case sysop.KindPresaleSetMaxPurchase:
		var p sysop.SetMaxPurchasePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("presale set max purchase: %w", err)
		}
		return SetMaxPurchase(db, from, p.Amount)

	case sysop.KindPresaleAddPaymentAsset:
		var p sysop.PaymentAssetPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("presale add payment asset: %w", err)
		}
		if !common.IsHexAddress(p.Asset) {
			return fmt.Errorf("presale add payment asset: invalid asset address: %s", p.Asset)
		}
		return AddPaymentAsset(db, from, common.HexToAddress(p.Asset))

	case sysop.KindPresaleRemovePaymentAsset:
		var p sysop.PaymentAssetPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("presale remove payment asset: %w", err)
		}
		if !common.IsHexAddress(p.Asset) {
			return fmt.Errorf("presale remove payment asset: invalid asset address: %s", p.Asset)
		}
		return RemovePaymentAsset(db, from, common.HexToAddress(p.Asset))

	case sysop.KindPresalePurchase:
		var p sysop.PurchasePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("presale purchase: %w", err)
		}
		if !common.IsHexAddress(p.PaymentAsset) {
			return fmt.Errorf("presale purchase: invalid payment asset address: %s", p.PaymentAsset)
		}
		sig := common.FromHex(p.Signature)
		return Purchase(db, from, common.HexToAddress(p.PaymentAsset), p.PaymentAmount, p.SnrgAmount, p.Nonce, p.Deadline, sig, ctx.Now)

	case sysop.KindPresalePause:
		return Pause(db, from)

	case sysop.KindPresaleUnpause:
		return Unpause(db, from)
	}
	return fmt.Errorf("presale handler: unsupported operation %q", op.Kind)
}
