package presale

import (
	"crypto/ecdsa"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/crypto"
	"github.com/snrg-network/gsnrg/params"
	"github.com/snrg-network/gsnrg/token"
)

// Deterministic order-signing key for fixtures.
const signerKeyHex = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

var (
	gateAdmin    = common.HexToAddress("0x00000000000000000000000000000000000aaaa1")
	gateTreasury = common.HexToAddress("0x00000000000000000000000000000000000aaaa2")
	feeTaker     = common.HexToAddress("0x00000000000000000000000000000000000aaaa3")
	payUSD       = common.HexToAddress("0x00000000000000000000000000000000000bbbb1")
	buyer        = common.HexToAddress("0x1111111111111111111111111111111111111111")
)

const (
	inventory   = uint64(100_000_000) * 1_000_000_000
	orderAmount = params.MinPurchaseAmount
	payAmount   = uint64(2_500) * 1_000_000
)

func newTestGate(t *testing.T) (*state.DB, *ecdsa.PrivateKey) {
	t.Helper()
	db := state.New()
	key, err := crypto.HexToECDSA(signerKeyHex)
	if err != nil {
		t.Fatalf("load signer key: %v", err)
	}
	if err := token.Configure(db, params.TokenAddress, gateTreasury, gateAdmin); err != nil {
		t.Fatalf("configure token: %v", err)
	}
	if err := token.SetEndpoint(db, token.EndpointPresale, params.PresaleAddress); err != nil {
		t.Fatalf("set endpoint: %v", err)
	}
	if err := token.Mint(db, params.TokenAddress, params.PresaleAddress, inventory); err != nil {
		t.Fatalf("mint inventory: %v", err)
	}
	if err := token.Mint(db, payUSD, buyer, 100*payAmount); err != nil {
		t.Fatalf("mint payment funds: %v", err)
	}
	if err := Initialize(db, gateAdmin, crypto.PubkeyToAddress(key.PublicKey), gateTreasury); err != nil {
		t.Fatalf("initialize gate: %v", err)
	}
	if err := AddPaymentAsset(db, gateAdmin, payUSD); err != nil {
		t.Fatalf("add payment asset: %v", err)
	}
	if err := SetOpen(db, gateAdmin, true); err != nil {
		t.Fatalf("open sale: %v", err)
	}
	return db, key
}

func signOrder(t *testing.T, key *ecdsa.PrivateKey, orderBuyer, asset common.Address, payment, snrg, nonce uint64, deadline int64) []byte {
	t.Helper()
	digest := OrderDigest(orderBuyer, asset, payment, snrg, nonce, deadline)
	sig, err := crypto.Sign(digest.Bytes(), key)
	if err != nil {
		t.Fatalf("sign order: %v", err)
	}
	return sig
}

func TestInitializeOnce(t *testing.T) {
	db, key := newTestGate(t)
	signer := crypto.PubkeyToAddress(key.PublicKey)

	err := Initialize(db, gateAdmin, signer, gateTreasury)
	if err != ErrAlreadyInitialized {
		t.Fatalf("second initialize: have %v, want %v", err, ErrAlreadyInitialized)
	}

	info := Info(db)
	if info.Admin != gateAdmin || info.Signer != signer || info.Treasury != gateTreasury {
		t.Fatalf("unexpected info %+v", info)
	}
	if info.IsOpen != true || info.Paused != false {
		t.Fatalf("unexpected flags %+v", info)
	}
	if info.MaxPurchase != params.DefaultMaxPurchaseAmount {
		t.Fatalf("max purchase %d, want %d", info.MaxPurchase, params.DefaultMaxPurchaseAmount)
	}

	fresh := state.New()
	if err := Initialize(fresh, gateAdmin, common.Address{}, gateTreasury); err != ErrZeroAddress {
		t.Fatalf("zero signer: have %v, want %v", err, ErrZeroAddress)
	}
}

func TestPurchaseHappyPath(t *testing.T) {
	db, key := newTestGate(t)
	now := int64(1_700_000_000)
	deadline := now + 600

	sig := signOrder(t, key, buyer, payUSD, payAmount, orderAmount, 1, deadline)
	db.ResetEvents()
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 1, deadline, sig, now); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	if have := token.BalanceOf(db, params.TokenAddress, buyer); have != orderAmount {
		t.Fatalf("buyer balance %d, want %d", have, orderAmount)
	}
	if have := token.BalanceOf(db, payUSD, gateTreasury); have != payAmount {
		t.Fatalf("treasury balance %d, want %d", have, payAmount)
	}
	if have := token.BalanceOf(db, params.TokenAddress, params.PresaleAddress); have != inventory-orderAmount {
		t.Fatalf("inventory %d, want %d", have, inventory-orderAmount)
	}
	if !IsNonceUsed(db, 1) {
		t.Fatal("nonce 1 not recorded")
	}
	if have := RemainingPurchasesToday(db, buyer, now); have != params.MaxPurchasesPerDay-1 {
		t.Fatalf("remaining purchases %d, want %d", have, params.MaxPurchasesPerDay-1)
	}

	var found bool
	for _, raw := range db.Events() {
		ev, ok := raw.(EventPurchased)
		if !ok {
			continue
		}
		found = true
		if ev.Buyer != buyer || ev.PaymentAsset != payUSD || ev.PaymentAmount != payAmount || ev.SnrgAmount != orderAmount || ev.Nonce != 1 {
			t.Fatalf("unexpected purchase event %+v", ev)
		}
	}
	if !found {
		t.Fatal("no purchase event emitted")
	}
}

func TestPurchaseValidation(t *testing.T) {
	now := int64(1_700_000_000)

	fresh := state.New()
	if err := Purchase(fresh, buyer, payUSD, payAmount, orderAmount, 1, now+600, nil, now); err != ErrNotInitialized {
		t.Fatalf("uninitialized: have %v, want %v", err, ErrNotInitialized)
	}

	db, _ := newTestGate(t)

	if err := SetOpen(db, gateAdmin, false); err != nil {
		t.Fatalf("close sale: %v", err)
	}
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 1, now+600, nil, now); err != ErrClosed {
		t.Fatalf("closed: have %v, want %v", err, ErrClosed)
	}
	if err := SetOpen(db, gateAdmin, true); err != nil {
		t.Fatalf("reopen sale: %v", err)
	}

	if err := Pause(db, gateAdmin); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 1, now+600, nil, now); err != ErrPaused {
		t.Fatalf("paused: have %v, want %v", err, ErrPaused)
	}
	if err := Unpause(db, gateAdmin); err != nil {
		t.Fatalf("unpause: %v", err)
	}

	if err := Purchase(db, buyer, payUSD, 0, orderAmount, 1, now+600, nil, now); err != ErrZeroAmount {
		t.Fatalf("zero payment: have %v, want %v", err, ErrZeroAmount)
	}
	if err := Purchase(db, buyer, payUSD, payAmount, 0, 1, now+600, nil, now); err != ErrZeroAmount {
		t.Fatalf("zero sale amount: have %v, want %v", err, ErrZeroAmount)
	}
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 1, now-1, nil, now); err != ErrDeadlineExpired {
		t.Fatalf("expired deadline: have %v, want %v", err, ErrDeadlineExpired)
	}

	unlisted := common.HexToAddress("0x00000000000000000000000000000000000bbbb9")
	if err := Purchase(db, buyer, unlisted, payAmount, orderAmount, 1, now+600, nil, now); err != ErrAssetNotSupported {
		t.Fatalf("unlisted asset: have %v, want %v", err, ErrAssetNotSupported)
	}

	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount-1, 1, now+600, nil, now); err != ErrBelowMinimum {
		t.Fatalf("below minimum: have %v, want %v", err, ErrBelowMinimum)
	}
	above := params.DefaultMaxPurchaseAmount + 1
	if err := Purchase(db, buyer, payUSD, payAmount, above, 1, now+600, nil, now); err != ErrAboveMaximum {
		t.Fatalf("above maximum: have %v, want %v", err, ErrAboveMaximum)
	}
}

func TestOrderAuthentication(t *testing.T) {
	db, key := newTestGate(t)
	now := int64(1_700_000_000)
	deadline := now + 600

	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 1, deadline, nil, now); err != ErrInvalidSignature {
		t.Fatalf("nil signature: have %v, want %v", err, ErrInvalidSignature)
	}
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 1, deadline, make([]byte, 64), now); err != ErrInvalidSignature {
		t.Fatalf("short signature: have %v, want %v", err, ErrInvalidSignature)
	}

	sig := signOrder(t, key, buyer, payUSD, payAmount, orderAmount, 1, deadline)
	bad := append([]byte(nil), sig...)
	bad[crypto.RecoveryIDOffset] = 4
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 1, deadline, bad, now); err != ErrInvalidSignature {
		t.Fatalf("bad recovery id: have %v, want %v", err, ErrInvalidSignature)
	}

	stranger, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	forged := signOrder(t, stranger, buyer, payUSD, payAmount, orderAmount, 1, deadline)
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 1, deadline, forged, now); err != ErrBadSigner {
		t.Fatalf("forged order: have %v, want %v", err, ErrBadSigner)
	}

	// A valid signature over different parameters must not authorize this
	// order. The digest binds every field.
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount+1_000_000_000, 1, deadline, sig, now); err != ErrBadSigner {
		t.Fatalf("tampered amount: have %v, want %v", err, ErrBadSigner)
	}
	otherBuyer := common.HexToAddress("0x2222222222222222222222222222222222222222")
	if err := Purchase(db, otherBuyer, payUSD, payAmount, orderAmount, 1, deadline, sig, now); err != ErrBadSigner {
		t.Fatalf("stolen order: have %v, want %v", err, ErrBadSigner)
	}

	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 1, deadline, sig, now); err != nil {
		t.Fatalf("genuine order rejected: %v", err)
	}
}

func TestNonceReplay(t *testing.T) {
	db, key := newTestGate(t)
	now := int64(1_700_000_000)
	deadline := now + 3_600

	sig := signOrder(t, key, buyer, payUSD, payAmount, orderAmount, 42, deadline)
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 42, deadline, sig, now); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	// Past the cooldown, same signed order again.
	later := now + params.PurchaseCooldownSeconds + 1
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 42, deadline, sig, later); err != ErrNonceUsed {
		t.Fatalf("replay: have %v, want %v", err, ErrNonceUsed)
	}
}

func TestPurchaseCooldown(t *testing.T) {
	db, key := newTestGate(t)
	clk := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))

	now := clk.Now().Unix()
	sig := signOrder(t, key, buyer, payUSD, payAmount, orderAmount, 1, now+600)
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 1, now+600, sig, now); err != nil {
		t.Fatalf("first purchase: %v", err)
	}

	clk.Advance(time.Duration(params.PurchaseCooldownSeconds-1) * time.Second)
	now = clk.Now().Unix()
	sig = signOrder(t, key, buyer, payUSD, payAmount, orderAmount, 2, now+600)
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 2, now+600, sig, now); err != ErrCooldownActive {
		t.Fatalf("inside cooldown: have %v, want %v", err, ErrCooldownActive)
	}
	if IsNonceUsed(db, 2) {
		t.Fatal("failed purchase consumed nonce")
	}

	clk.Advance(time.Second)
	now = clk.Now().Unix()
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 2, now+600, sig, now); err != nil {
		t.Fatalf("after cooldown: %v", err)
	}
}

func TestDailyLimitBoundary(t *testing.T) {
	db, key := newTestGate(t)
	clk := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))

	for n := uint64(1); n <= params.MaxPurchasesPerDay; n++ {
		now := clk.Now().Unix()
		sig := signOrder(t, key, buyer, payUSD, payAmount, orderAmount, n, now+600)
		require.NoError(t, Purchase(db, buyer, payUSD, payAmount, orderAmount, n, now+600, sig, now))
		clk.Advance(10 * time.Minute)
	}

	now := clk.Now().Unix()
	require.Equal(t, uint64(0), RemainingPurchasesToday(db, buyer, now))

	sig := signOrder(t, key, buyer, payUSD, payAmount, orderAmount, 11, now+600)
	require.ErrorIs(t, Purchase(db, buyer, payUSD, payAmount, orderAmount, 11, now+600, sig, now), ErrDailyLimitReached)
	require.False(t, IsNonceUsed(db, 11), "failed purchase consumed nonce")

	// A full day after the window opened the counter resets, and the first
	// purchase of the new window counts as one.
	clk.Advance(24 * time.Hour)
	now = clk.Now().Unix()
	require.Equal(t, uint64(params.MaxPurchasesPerDay), RemainingPurchasesToday(db, buyer, now))

	sig = signOrder(t, key, buyer, payUSD, payAmount, orderAmount, 11, now+600)
	require.NoError(t, Purchase(db, buyer, payUSD, payAmount, orderAmount, 11, now+600, sig, now))
	require.Equal(t, uint64(params.MaxPurchasesPerDay-1), RemainingPurchasesToday(db, buyer, now))
}

func TestUnderpaidTreasuryRejected(t *testing.T) {
	db, key := newTestGate(t)
	now := int64(1_700_000_000)

	// A fee on the payment asset shaves the treasury credit below the order
	// amount.
	require.NoError(t, token.SetTransferFee(db, gateAdmin, payUSD, feeTaker, 500))

	sig := signOrder(t, key, buyer, payUSD, payAmount, orderAmount, 1, now+600)
	require.ErrorIs(t, Purchase(db, buyer, payUSD, payAmount, orderAmount, 1, now+600, sig, now), ErrUnderpaidTreasury)
	require.False(t, IsNonceUsed(db, 1))
	require.Equal(t, uint64(params.MaxPurchasesPerDay), RemainingPurchasesToday(db, buyer, now))
}

func TestInexactDeliveryRejected(t *testing.T) {
	db, key := newTestGate(t)
	now := int64(1_700_000_000)

	// A fee on the sale asset itself makes the delivery leg land short.
	require.NoError(t, token.SetTransferFee(db, gateAdmin, params.TokenAddress, feeTaker, 250))

	sig := signOrder(t, key, buyer, payUSD, payAmount, orderAmount, 1, now+600)
	require.ErrorIs(t, Purchase(db, buyer, payUSD, payAmount, orderAmount, 1, now+600, sig, now), ErrInexactDelivery)
	require.False(t, IsNonceUsed(db, 1))
}

func TestNativePayment(t *testing.T) {
	db, key := newTestGate(t)
	now := int64(1_700_000_000)

	if err := token.Mint(db, params.NativeAsset, buyer, 10*payAmount); err != nil {
		t.Fatalf("mint native funds: %v", err)
	}

	// The native asset is accepted without being on the allow-list.
	sig := signOrder(t, key, buyer, params.NativeAsset, payAmount, orderAmount, 1, now+600)
	if err := Purchase(db, buyer, params.NativeAsset, payAmount, orderAmount, 1, now+600, sig, now); err != nil {
		t.Fatalf("native purchase failed: %v", err)
	}
	if have := token.BalanceOf(db, params.NativeAsset, gateTreasury); have != payAmount {
		t.Fatalf("treasury native balance %d, want %d", have, payAmount)
	}
}

func TestSignerRotation(t *testing.T) {
	db, key := newTestGate(t)
	now := int64(1_700_000_000)

	next, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	if err := SetSigner(db, buyer, crypto.PubkeyToAddress(next.PublicKey)); err != ErrUnauthorized {
		t.Fatalf("unauthorized rotation: have %v, want %v", err, ErrUnauthorized)
	}
	if err := SetSigner(db, gateAdmin, common.Address{}); err != ErrZeroAddress {
		t.Fatalf("zero signer: have %v, want %v", err, ErrZeroAddress)
	}
	if err := SetSigner(db, gateAdmin, crypto.PubkeyToAddress(next.PublicKey)); err != nil {
		t.Fatalf("rotate signer: %v", err)
	}

	old := signOrder(t, key, buyer, payUSD, payAmount, orderAmount, 1, now+600)
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 1, now+600, old, now); err != ErrBadSigner {
		t.Fatalf("retired key accepted: have %v, want %v", err, ErrBadSigner)
	}
	fresh := signOrder(t, next, buyer, payUSD, payAmount, orderAmount, 1, now+600)
	if err := Purchase(db, buyer, payUSD, payAmount, orderAmount, 1, now+600, fresh, now); err != nil {
		t.Fatalf("new key rejected: %v", err)
	}
}

func TestPaymentAssetList(t *testing.T) {
	db, _ := newTestGate(t)

	if err := AddPaymentAsset(db, buyer, feeTaker); err != ErrUnauthorized {
		t.Fatalf("unauthorized add: have %v, want %v", err, ErrUnauthorized)
	}
	if err := AddPaymentAsset(db, gateAdmin, common.Address{}); err != ErrZeroAddress {
		t.Fatalf("zero asset: have %v, want %v", err, ErrZeroAddress)
	}
	if err := AddPaymentAsset(db, gateAdmin, params.TokenAddress); err != ErrInvalidPaymentAsset {
		t.Fatalf("sale asset as payment: have %v, want %v", err, ErrInvalidPaymentAsset)
	}
	if err := AddPaymentAsset(db, gateAdmin, payUSD); err != ErrAssetAlreadyListed {
		t.Fatalf("duplicate add: have %v, want %v", err, ErrAssetAlreadyListed)
	}

	var extra []common.Address
	for i := byte(0); i < params.MaxPaymentAssets-1; i++ {
		asset := common.BytesToAddress([]byte{0xcc, i + 1})
		extra = append(extra, asset)
		if err := AddPaymentAsset(db, gateAdmin, asset); err != nil {
			t.Fatalf("add asset %d: %v", i, err)
		}
	}
	overflow := common.BytesToAddress([]byte{0xcc, 0xff})
	if err := AddPaymentAsset(db, gateAdmin, overflow); err != ErrAssetListFull {
		t.Fatalf("list overflow: have %v, want %v", err, ErrAssetListFull)
	}

	if err := RemovePaymentAsset(db, gateAdmin, overflow); err != ErrAssetNotListed {
		t.Fatalf("remove unlisted: have %v, want %v", err, ErrAssetNotListed)
	}

	// Removing the head swaps the tail into its place and keeps the list
	// dense.
	if err := RemovePaymentAsset(db, gateAdmin, payUSD); err != nil {
		t.Fatalf("remove listed: %v", err)
	}
	if IsPaymentAssetSupported(db, payUSD) {
		t.Fatal("removed asset still supported")
	}
	assets := PaymentAssets(db)
	if len(assets) != params.MaxPaymentAssets-1 {
		t.Fatalf("list length %d, want %d", len(assets), params.MaxPaymentAssets-1)
	}
	if assets[0] != extra[len(extra)-1] {
		t.Fatalf("head %s, want swapped tail %s", assets[0], extra[len(extra)-1])
	}
	for _, asset := range extra {
		if !IsPaymentAssetSupported(db, asset) {
			t.Fatalf("asset %s lost from list", asset)
		}
	}

	if !IsPaymentAssetSupported(db, params.NativeAsset) {
		t.Fatal("native asset not supported")
	}
}

func TestMaxPurchaseBounds(t *testing.T) {
	db, _ := newTestGate(t)
	now := int64(1_700_000_000)

	if err := SetMaxPurchase(db, buyer, params.MinPurchaseAmount); err != ErrUnauthorized {
		t.Fatalf("unauthorized: have %v, want %v", err, ErrUnauthorized)
	}
	if err := SetMaxPurchase(db, gateAdmin, params.MinPurchaseAmount-1); err != ErrBelowMinimum {
		t.Fatalf("ceiling below floor: have %v, want %v", err, ErrBelowMinimum)
	}
	if err := SetMaxPurchase(db, gateAdmin, params.MinPurchaseAmount); err != nil {
		t.Fatalf("set ceiling: %v", err)
	}
	if err := Purchase(db, buyer, payUSD, payAmount, 2*params.MinPurchaseAmount, 1, now+600, nil, now); err != ErrAboveMaximum {
		t.Fatalf("above lowered ceiling: have %v, want %v", err, ErrAboveMaximum)
	}
}

func TestPauseState(t *testing.T) {
	db, _ := newTestGate(t)

	if err := Pause(db, buyer); err != ErrUnauthorized {
		t.Fatalf("unauthorized pause: have %v, want %v", err, ErrUnauthorized)
	}
	if err := Unpause(db, gateAdmin); err != ErrSameState {
		t.Fatalf("unpause while running: have %v, want %v", err, ErrSameState)
	}
	if err := Pause(db, gateAdmin); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := Pause(db, gateAdmin); err != ErrSameState {
		t.Fatalf("double pause: have %v, want %v", err, ErrSameState)
	}

	// Configuration stays available while paused.
	if err := SetMaxPurchase(db, gateAdmin, 2*params.MinPurchaseAmount); err != nil {
		t.Fatalf("configure while paused: %v", err)
	}
	if err := Unpause(db, gateAdmin); err != nil {
		t.Fatalf("unpause: %v", err)
	}
}
