package token

import (
	"errors"
	"testing"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/params"
)

var (
	testTreasury = common.HexToAddress("0x00000000000000000000000000000000000aaaa1")
	testAdmin    = common.HexToAddress("0x00000000000000000000000000000000000aaaa2")
	testUSD      = common.HexToAddress("0x00000000000000000000000000000000000bbbb1")
	alice        = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob          = common.HexToAddress("0x2222222222222222222222222222222222222222")
	carol        = common.HexToAddress("0x3333333333333333333333333333333333333333")
)

// newTestLedger returns a configured state. The SNRG restriction is
// armed by Configure, so ledger mechanics tests use the unrestricted
// testUSD asset.
func newTestLedger(t *testing.T) *state.DB {
	t.Helper()
	db := state.New()
	if err := Configure(db, params.TokenAddress, testTreasury, testAdmin); err != nil {
		t.Fatalf("configure failed: %v", err)
	}
	return db
}

func TestConfigureOnce(t *testing.T) {
	db := newTestLedger(t)
	err := Configure(db, params.TokenAddress, testTreasury, testAdmin)
	if !errors.Is(err, ErrAlreadyConfigured) {
		t.Fatalf("second configure: have %v, want ErrAlreadyConfigured", err)
	}
	if SNRGAsset(db) != params.TokenAddress {
		t.Fatalf("snrg asset %s, want %s", SNRGAsset(db), params.TokenAddress)
	}
	if Treasury(db) != testTreasury {
		t.Fatalf("treasury %s, want %s", Treasury(db), testTreasury)
	}
	if !IsRestricted(db) {
		t.Fatal("restriction not armed after configure")
	}
}

func TestMintAndSupply(t *testing.T) {
	db := newTestLedger(t)
	if err := Mint(db, testUSD, alice, 1_000_000); err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if got := BalanceOf(db, testUSD, alice); got != 1_000_000 {
		t.Fatalf("balance %d, want 1000000", got)
	}
	if got := TotalSupply(db, testUSD); got != 1_000_000 {
		t.Fatalf("supply %d, want 1000000", got)
	}

	if err := Mint(db, testUSD, alice, 0); !errors.Is(err, ErrZeroAmount) {
		t.Fatalf("zero mint: have %v, want ErrZeroAmount", err)
	}
	if err := Mint(db, testUSD, common.Address{}, 1); !errors.Is(err, ErrZeroAddress) {
		t.Fatalf("mint to zero: have %v, want ErrZeroAddress", err)
	}
}

func TestTransfer(t *testing.T) {
	db := newTestLedger(t)
	if err := Mint(db, testUSD, alice, 1000); err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	credited, err := Transfer(db, testUSD, OwnerAuthority(alice), alice, bob, 400)
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if credited != 400 {
		t.Fatalf("credited %d, want 400", credited)
	}
	if got := BalanceOf(db, testUSD, alice); got != 600 {
		t.Fatalf("sender balance %d, want 600", got)
	}
	if got := BalanceOf(db, testUSD, bob); got != 400 {
		t.Fatalf("recipient balance %d, want 400", got)
	}
}

func TestTransferValidation(t *testing.T) {
	db := newTestLedger(t)
	if err := Mint(db, testUSD, alice, 1000); err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	if _, err := Transfer(db, testUSD, OwnerAuthority(alice), alice, bob, 0); !errors.Is(err, ErrZeroAmount) {
		t.Fatalf("zero amount: have %v, want ErrZeroAmount", err)
	}
	if _, err := Transfer(db, testUSD, OwnerAuthority(alice), alice, common.Address{}, 1); !errors.Is(err, ErrZeroAddress) {
		t.Fatalf("zero recipient: have %v, want ErrZeroAddress", err)
	}
	if _, err := Transfer(db, testUSD, OwnerAuthority(alice), alice, bob, 1001); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("overdraft: have %v, want ErrInsufficientBalance", err)
	}
	// bob's owner authority cannot debit alice
	if _, err := Transfer(db, testUSD, OwnerAuthority(bob), alice, carol, 100); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("foreign debit: have %v, want ErrUnauthorized", err)
	}
}

func TestDelegatedTransfer(t *testing.T) {
	db := newTestLedger(t)
	pool := params.RescueAddress
	if err := Mint(db, testUSD, alice, 1000); err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	// no allowance yet
	if _, err := Transfer(db, testUSD, SystemAuthority(pool), alice, bob, 100); !errors.Is(err, ErrInsufficientAllowance) {
		t.Fatalf("no allowance: have %v, want ErrInsufficientAllowance", err)
	}

	if err := Approve(db, testUSD, alice, pool, 250); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if got := Allowance(db, testUSD, alice, pool); got != 250 {
		t.Fatalf("allowance %d, want 250", got)
	}

	if _, err := Transfer(db, testUSD, SystemAuthority(pool), alice, bob, 100); err != nil {
		t.Fatalf("delegated transfer failed: %v", err)
	}
	if got := Allowance(db, testUSD, alice, pool); got != 150 {
		t.Fatalf("allowance after spend %d, want 150", got)
	}
	if got := BalanceOf(db, testUSD, bob); got != 100 {
		t.Fatalf("recipient balance %d, want 100", got)
	}

	// exceeding the remainder fails and consumes nothing
	if _, err := Transfer(db, testUSD, SystemAuthority(pool), alice, bob, 200); !errors.Is(err, ErrInsufficientAllowance) {
		t.Fatalf("over-allowance: have %v, want ErrInsufficientAllowance", err)
	}
	if got := Allowance(db, testUSD, alice, pool); got != 150 {
		t.Fatalf("allowance after failed spend %d, want 150", got)
	}

	// revoke
	if err := Approve(db, testUSD, alice, pool, 0); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if _, err := Transfer(db, testUSD, SystemAuthority(pool), alice, bob, 1); !errors.Is(err, ErrInsufficientAllowance) {
		t.Fatalf("after revoke: have %v, want ErrInsufficientAllowance", err)
	}
}

func TestFeeOnTransfer(t *testing.T) {
	db := newTestLedger(t)
	if err := Mint(db, testUSD, alice, 2_000_000); err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if err := SetTransferFee(db, testAdmin, testUSD, carol, 500); err != nil {
		t.Fatalf("set fee failed: %v", err)
	}

	credited, err := Transfer(db, testUSD, OwnerAuthority(alice), alice, bob, 1_000_000)
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if credited != 950_000 {
		t.Fatalf("credited %d, want 950000", credited)
	}
	if got := BalanceOf(db, testUSD, bob); got != 950_000 {
		t.Fatalf("recipient %d, want 950000", got)
	}
	if got := BalanceOf(db, testUSD, carol); got != 50_000 {
		t.Fatalf("collector %d, want 50000", got)
	}
	if got := BalanceOf(db, testUSD, alice); got != 1_000_000 {
		t.Fatalf("sender %d, want 1000000", got)
	}
}

func TestBurn(t *testing.T) {
	db := newTestLedger(t)
	if err := Mint(db, testUSD, alice, 1000); err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	if err := Burn(db, testUSD, OwnerAuthority(alice), alice, 300); err != nil {
		t.Fatalf("burn failed: %v", err)
	}
	if got := BalanceOf(db, testUSD, alice); got != 700 {
		t.Fatalf("balance %d, want 700", got)
	}
	if got := TotalSupply(db, testUSD); got != 700 {
		t.Fatalf("supply %d, want 700", got)
	}

	if err := Burn(db, testUSD, OwnerAuthority(alice), alice, 701); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("over-burn: have %v, want ErrInsufficientBalance", err)
	}
	if err := Burn(db, testUSD, OwnerAuthority(bob), alice, 1); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("foreign burn: have %v, want ErrUnauthorized", err)
	}
}

func TestTransferEmitsEvent(t *testing.T) {
	db := newTestLedger(t)
	if err := Mint(db, testUSD, alice, 1000); err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	db.ResetEvents()

	if _, err := Transfer(db, testUSD, OwnerAuthority(alice), alice, bob, 10); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	events := db.Events()
	if len(events) != 1 {
		t.Fatalf("have %d events, want 1", len(events))
	}
	ev, ok := events[0].(EventTransfer)
	if !ok {
		t.Fatalf("event type %T, want EventTransfer", events[0])
	}
	if ev.From != alice || ev.To != bob || ev.Amount != 10 || ev.Fee != 0 {
		t.Fatalf("unexpected event %+v", ev)
	}
}
