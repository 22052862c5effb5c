package token

import (
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/common/math"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/params"
)

// EndpointKind names a pool role in the transfer restriction exemption
// set.
type EndpointKind string

const (
	EndpointStaking EndpointKind = "staking"
	EndpointPresale EndpointKind = "presale"
	EndpointSwap    EndpointKind = "swap"
	EndpointRescue  EndpointKind = "rescue"
)

var endpointKinds = []EndpointKind{EndpointStaking, EndpointPresale, EndpointSwap, EndpointRescue}

// ValidEndpointKind reports whether kind names a known endpoint role.
func ValidEndpointKind(kind EndpointKind) bool {
	switch kind {
	case EndpointStaking, EndpointPresale, EndpointSwap, EndpointRescue:
		return true
	}
	return false
}

// checkRestriction enforces the pre-listing transfer restriction: while
// armed, an SNRG transfer must touch the treasury or a confirmed
// endpoint pool on at least one side, or be conducted under a confirmed
// endpoint's pool authority. Endpoints that are not configured yet
// simply never match, so the ledger fails closed. Other assets are
// never restricted.
func checkRestriction(db state.StateDB, asset common.Address, auth Authority, from, to common.Address) error {
	snrg := getSNRGAsset(db)
	if snrg.IsZero() || asset != snrg {
		return nil
	}
	if !getRestricted(db) {
		return nil
	}
	if isExempt(db, from) || isExempt(db, to) {
		return nil
	}
	if auth.system() && isExempt(db, auth.Holder()) {
		return nil
	}
	return ErrTransferRestricted
}

func isExempt(db state.StateDB, addr common.Address) bool {
	if addr == getTreasury(db) {
		return true
	}
	for _, kind := range endpointKinds {
		if ep := getEndpointAddress(db, kind); !ep.IsZero() && ep == addr {
			return true
		}
	}
	return false
}

// SetRestriction arms or lifts the SNRG transfer restriction. Admin
// only; setting the current state again is rejected so an operator
// notices a stale toggle.
func SetRestriction(db state.StateDB, from common.Address, restricted bool) error {
	if from != getAdmin(db) {
		return ErrUnauthorized
	}
	if getRestricted(db) == restricted {
		return ErrSameState
	}
	setRestricted(db, restricted)
	db.AddEvent(EventRestrictionSet{Restricted: restricted})
	return nil
}

// SetTransferFee configures the fee-on-transfer rate for asset. Admin
// only. The rate must leave the recipient a positive remainder, so
// BpsDenominator and above are rejected. A zero rate clears the fee.
func SetTransferFee(db state.StateDB, from, asset, collector common.Address, bps uint64) error {
	if from != getAdmin(db) {
		return ErrUnauthorized
	}
	if asset.IsZero() {
		return ErrZeroAddress
	}
	if bps >= math.BpsDenominator {
		return ErrFeeTooHigh
	}
	if bps > 0 && collector.IsZero() {
		return ErrZeroAddress
	}
	setTransferFeeBps(db, asset, bps)
	setFeeCollector(db, asset, collector)
	db.AddEvent(EventTransferFeeSet{Asset: asset, FeeBps: bps, Collector: collector})
	return nil
}

// ProposeEndpoint stages a new address for an endpoint role. Admin
// only. The proposal becomes confirmable after the endpoint delay.
func ProposeEndpoint(db state.StateDB, from common.Address, kind EndpointKind, addr common.Address, now int64) error {
	if from != getAdmin(db) {
		return ErrUnauthorized
	}
	if !ValidEndpointKind(kind) {
		return ErrUnknownEndpoint
	}
	if addr.IsZero() {
		return ErrZeroAddress
	}
	setPendingEndpoint(db, kind, addr)
	setEndpointProposedAt(db, kind, now)
	db.AddEvent(EventEndpointProposed{
		Endpoint:      string(kind),
		Address:       addr,
		ConfirmableAt: now + params.EndpointConfirmDelaySeconds,
	})
	return nil
}

// ConfirmEndpoint promotes a staged endpoint address after the delay
// has elapsed. Admin only.
func ConfirmEndpoint(db state.StateDB, from common.Address, kind EndpointKind, now int64) error {
	if from != getAdmin(db) {
		return ErrUnauthorized
	}
	if !ValidEndpointKind(kind) {
		return ErrUnknownEndpoint
	}
	pending := getPendingEndpoint(db, kind)
	if pending.IsZero() {
		return ErrNoPendingEndpoint
	}
	if now < getEndpointProposedAt(db, kind)+params.EndpointConfirmDelaySeconds {
		return ErrConfirmTooEarly
	}
	setEndpointAddress(db, kind, pending)
	setPendingEndpoint(db, kind, common.Address{})
	setEndpointProposedAt(db, kind, 0)
	db.AddEvent(EventEndpointConfirmed{Endpoint: string(kind), Address: pending})
	return nil
}

// SetEndpoint writes an endpoint address directly, skipping the
// propose/confirm delay. Genesis wiring only.
func SetEndpoint(db state.StateDB, kind EndpointKind, addr common.Address) error {
	if !ValidEndpointKind(kind) {
		return ErrUnknownEndpoint
	}
	setEndpointAddress(db, kind, addr)
	return nil
}

// Endpoint returns the confirmed address for an endpoint role, zero if
// unconfigured.
func Endpoint(db state.StateDB, kind EndpointKind) common.Address {
	return getEndpointAddress(db, kind)
}

// PendingEndpoint returns the staged address and proposal time for an
// endpoint role.
func PendingEndpoint(db state.StateDB, kind EndpointKind) (common.Address, int64) {
	return getPendingEndpoint(db, kind), getEndpointProposedAt(db, kind)
}

// IsRestricted reports whether the SNRG transfer restriction is armed.
func IsRestricted(db state.StateDB) bool {
	return getRestricted(db)
}
