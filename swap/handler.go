package swap

import (
	"fmt"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/sysop"
)

func init() {
	sysop.DefaultRegistry.Register(&swapHandler{})
}

// swapHandler implements sysop.Handler for burn-receipt operations.
type swapHandler struct{}

func (h *swapHandler) CanHandle(kind sysop.Kind) bool {
	switch kind {
	case sysop.KindSwapInitialize,
		sysop.KindSwapBurn,
		sysop.KindSwapProposeRoot,
		sysop.KindSwapCancelRoot,
		sysop.KindSwapFinalize,
		sysop.KindSwapReopen,
		sysop.KindSwapPause,
		sysop.KindSwapUnpause:
		return true
	}
	return false
}

func (h *swapHandler) Handle(ctx *sysop.Context, op *sysop.Op) error {
	db := ctx.StateDB
	from := ctx.From

	switch op.Kind {
	case sysop.KindSwapInitialize:
		var p sysop.SwapInitializePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("swap initialize: %w", err)
		}
		admin := from
		if p.Admin != "" {
			if !common.IsHexAddress(p.Admin) {
				return fmt.Errorf("swap initialize: invalid admin address: %s", p.Admin)
			}
			admin = common.HexToAddress(p.Admin)
		}
		return Initialize(db, admin)

	case sysop.KindSwapBurn:
		var p sysop.BurnPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("swap burn: %w", err)
		}
		return BurnForReceipt(db, from, p.Amount)

	case sysop.KindSwapProposeRoot:
		var p sysop.ProposeRootPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("swap propose root: %w", err)
		}
		return ProposeRoot(db, from, common.HexToHash(p.Root), ctx.Now)

	case sysop.KindSwapCancelRoot:
		return CancelProposedRoot(db, from)

	case sysop.KindSwapFinalize:
		return Finalize(db, from, ctx.Now)

	case sysop.KindSwapReopen:
		var p sysop.ProposeRootPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("swap reopen: %w", err)
		}
		return Reopen(db, from, common.HexToHash(p.Root), ctx.Now)

	case sysop.KindSwapPause:
		return Pause(db, from)

	case sysop.KindSwapUnpause:
		return Unpause(db, from)
	}
	return fmt.Errorf("swap handler: unsupported operation %q", op.Kind)
}
