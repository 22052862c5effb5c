package token

import (
	"fmt"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/sysop"
)

func init() {
	sysop.DefaultRegistry.Register(&tokenHandler{})
}

// tokenHandler implements sysop.Handler for custody ledger operations.
type tokenHandler struct{}

func (h *tokenHandler) CanHandle(kind sysop.Kind) bool {
	switch kind {
	case sysop.KindTokenTransfer,
		sysop.KindTokenApprove,
		sysop.KindTokenSetTransferFee,
		sysop.KindTokenSetRestriction,
		sysop.KindTokenProposeEndpoint,
		sysop.KindTokenConfirmEndpoint:
		return true
	}
	return false
}

func (h *tokenHandler) Handle(ctx *sysop.Context, op *sysop.Op) error {
	db := ctx.StateDB
	from := ctx.From

	switch op.Kind {
	case sysop.KindTokenTransfer:
		var p sysop.TransferPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("token transfer: %w", err)
		}
		if !common.IsHexAddress(p.Asset) {
			return fmt.Errorf("token transfer: invalid asset address: %s", p.Asset)
		}
		if !common.IsHexAddress(p.To) {
			return fmt.Errorf("token transfer: invalid recipient address: %s", p.To)
		}
		_, err := Transfer(db, common.HexToAddress(p.Asset), OwnerAuthority(from), from, common.HexToAddress(p.To), p.Amount)
		return err

	case sysop.KindTokenApprove:
		var p sysop.ApprovePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("token approve: %w", err)
		}
		if !common.IsHexAddress(p.Asset) {
			return fmt.Errorf("token approve: invalid asset address: %s", p.Asset)
		}
		if !common.IsHexAddress(p.Spender) {
			return fmt.Errorf("token approve: invalid spender address: %s", p.Spender)
		}
		return Approve(db, common.HexToAddress(p.Asset), from, common.HexToAddress(p.Spender), p.Amount)

	case sysop.KindTokenSetTransferFee:
		var p sysop.SetTransferFeePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("token set transfer fee: %w", err)
		}
		if !common.IsHexAddress(p.Asset) {
			return fmt.Errorf("token set transfer fee: invalid asset address: %s", p.Asset)
		}
		var collector common.Address
		if p.Collector != "" {
			if !common.IsHexAddress(p.Collector) {
				return fmt.Errorf("token set transfer fee: invalid collector address: %s", p.Collector)
			}
			collector = common.HexToAddress(p.Collector)
		}
		return SetTransferFee(db, from, common.HexToAddress(p.Asset), collector, p.FeeBps)

	case sysop.KindTokenSetRestriction:
		var p sysop.SetRestrictionPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("token set restriction: %w", err)
		}
		return SetRestriction(db, from, p.Restricted)

	case sysop.KindTokenProposeEndpoint:
		var p sysop.ProposeEndpointPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("token propose endpoint: %w", err)
		}
		if !common.IsHexAddress(p.Address) {
			return fmt.Errorf("token propose endpoint: invalid address: %s", p.Address)
		}
		return ProposeEndpoint(db, from, EndpointKind(p.Endpoint), common.HexToAddress(p.Address), ctx.Now)

	case sysop.KindTokenConfirmEndpoint:
		var p sysop.ConfirmEndpointPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("token confirm endpoint: %w", err)
		}
		return ConfirmEndpoint(db, from, EndpointKind(p.Endpoint), ctx.Now)
	}
	return fmt.Errorf("token handler: unsupported operation %q", op.Kind)
}
