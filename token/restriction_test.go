package token

import (
	"errors"
	"testing"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/params"
)

func TestRestrictionFailsClosed(t *testing.T) {
	db := newTestLedger(t)
	snrg := params.TokenAddress
	if err := Mint(db, snrg, alice, 1000); err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	// no endpoints configured, neither side is the treasury
	if _, err := Transfer(db, snrg, OwnerAuthority(alice), alice, bob, 100); !errors.Is(err, ErrTransferRestricted) {
		t.Fatalf("user transfer while restricted: have %v, want ErrTransferRestricted", err)
	}

	// treasury on one side passes
	if _, err := Transfer(db, snrg, OwnerAuthority(alice), alice, testTreasury, 100); err != nil {
		t.Fatalf("treasury-bound transfer failed: %v", err)
	}
}

func TestRestrictionEndpointExemption(t *testing.T) {
	db := newTestLedger(t)
	snrg := params.TokenAddress
	if err := Mint(db, snrg, alice, 1000); err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	if err := SetEndpoint(db, EndpointStaking, params.StakingAddress); err != nil {
		t.Fatalf("set endpoint failed: %v", err)
	}
	if _, err := Transfer(db, snrg, OwnerAuthority(alice), alice, params.StakingAddress, 100); err != nil {
		t.Fatalf("endpoint-bound transfer failed: %v", err)
	}
	// still restricted for plain user pairs
	if _, err := Transfer(db, snrg, OwnerAuthority(alice), alice, bob, 100); !errors.Is(err, ErrTransferRestricted) {
		t.Fatalf("user transfer: have %v, want ErrTransferRestricted", err)
	}
}

func TestRestrictionPoolAuthorityExemption(t *testing.T) {
	db := newTestLedger(t)
	snrg := params.TokenAddress
	if err := Mint(db, snrg, alice, 1000); err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if err := SetEndpoint(db, EndpointRescue, params.RescueAddress); err != nil {
		t.Fatalf("set endpoint failed: %v", err)
	}
	if err := Approve(db, snrg, alice, params.RescueAddress, 500); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	// A user pair transfer conducted under the endpoint's pool authority
	// passes even though neither side is exempt.
	if _, err := Transfer(db, snrg, SystemAuthority(params.RescueAddress), alice, bob, 100); err != nil {
		t.Fatalf("pool-authorized transfer failed: %v", err)
	}
	// The same pair under a non-endpoint pool authority stays restricted.
	if err := Approve(db, snrg, alice, params.TimelockAddress, 500); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if _, err := Transfer(db, snrg, SystemAuthority(params.TimelockAddress), alice, bob, 100); !errors.Is(err, ErrTransferRestricted) {
		t.Fatalf("non-endpoint pool transfer: have %v, want ErrTransferRestricted", err)
	}
}

func TestRestrictionOnlyCoversSNRG(t *testing.T) {
	db := newTestLedger(t)
	if err := Mint(db, testUSD, alice, 1000); err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if _, err := Transfer(db, testUSD, OwnerAuthority(alice), alice, bob, 100); err != nil {
		t.Fatalf("non-SNRG transfer failed: %v", err)
	}
}

func TestSetRestriction(t *testing.T) {
	db := newTestLedger(t)
	snrg := params.TokenAddress
	if err := Mint(db, snrg, alice, 1000); err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	if err := SetRestriction(db, alice, false); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("non-admin toggle: have %v, want ErrUnauthorized", err)
	}
	if err := SetRestriction(db, testAdmin, true); !errors.Is(err, ErrSameState) {
		t.Fatalf("same-state toggle: have %v, want ErrSameState", err)
	}

	if err := SetRestriction(db, testAdmin, false); err != nil {
		t.Fatalf("lift failed: %v", err)
	}
	if _, err := Transfer(db, snrg, OwnerAuthority(alice), alice, bob, 100); err != nil {
		t.Fatalf("transfer after lift failed: %v", err)
	}
}

func TestProposeConfirmEndpoint(t *testing.T) {
	db := newTestLedger(t)
	now := int64(1_700_000_000)

	if err := ProposeEndpoint(db, alice, EndpointSwap, params.SwapAddress, now); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("non-admin propose: have %v, want ErrUnauthorized", err)
	}
	if err := ProposeEndpoint(db, testAdmin, EndpointKind("oracle"), params.SwapAddress, now); !errors.Is(err, ErrUnknownEndpoint) {
		t.Fatalf("unknown endpoint: have %v, want ErrUnknownEndpoint", err)
	}
	if err := ConfirmEndpoint(db, testAdmin, EndpointSwap, now); !errors.Is(err, ErrNoPendingEndpoint) {
		t.Fatalf("confirm without pending: have %v, want ErrNoPendingEndpoint", err)
	}

	if err := ProposeEndpoint(db, testAdmin, EndpointSwap, params.SwapAddress, now); err != nil {
		t.Fatalf("propose failed: %v", err)
	}
	pending, at := PendingEndpoint(db, EndpointSwap)
	if pending != params.SwapAddress || at != now {
		t.Fatalf("pending %s at %d, want %s at %d", pending, at, params.SwapAddress, now)
	}

	early := now + params.EndpointConfirmDelaySeconds - 1
	if err := ConfirmEndpoint(db, testAdmin, EndpointSwap, early); !errors.Is(err, ErrConfirmTooEarly) {
		t.Fatalf("early confirm: have %v, want ErrConfirmTooEarly", err)
	}

	ready := now + params.EndpointConfirmDelaySeconds
	if err := ConfirmEndpoint(db, testAdmin, EndpointSwap, ready); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if got := Endpoint(db, EndpointSwap); got != params.SwapAddress {
		t.Fatalf("endpoint %s, want %s", got, params.SwapAddress)
	}
	pending, at = PendingEndpoint(db, EndpointSwap)
	if !pending.IsZero() || at != 0 {
		t.Fatalf("pending not cleared: %s at %d", pending, at)
	}
}

func TestSetTransferFeeValidation(t *testing.T) {
	db := newTestLedger(t)

	if err := SetTransferFee(db, alice, testUSD, carol, 100); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("non-admin: have %v, want ErrUnauthorized", err)
	}
	if err := SetTransferFee(db, testAdmin, testUSD, carol, 10_000); !errors.Is(err, ErrFeeTooHigh) {
		t.Fatalf("100%% fee: have %v, want ErrFeeTooHigh", err)
	}
	if err := SetTransferFee(db, testAdmin, testUSD, common.Address{}, 100); !errors.Is(err, ErrZeroAddress) {
		t.Fatalf("zero collector: have %v, want ErrZeroAddress", err)
	}

	if err := SetTransferFee(db, testAdmin, testUSD, carol, 250); err != nil {
		t.Fatalf("set fee failed: %v", err)
	}
	bps, collector := TransferFee(db, testUSD)
	if bps != 250 || collector != carol {
		t.Fatalf("fee %d/%s, want 250/%s", bps, collector, carol)
	}

	// clearing the fee needs no collector
	if err := SetTransferFee(db, testAdmin, testUSD, common.Address{}, 0); err != nil {
		t.Fatalf("clear fee failed: %v", err)
	}
	bps, _ = TransferFee(db, testUSD)
	if bps != 0 {
		t.Fatalf("fee %d after clear, want 0", bps)
	}
}
