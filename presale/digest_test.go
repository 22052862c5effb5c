package presale

import (
	"testing"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/crypto"
	"github.com/snrg-network/gsnrg/params"
)

// TestOrderDigestVector pins the digest bytes. External signing tooling
// reproduces this hash from the order fields alone, so it must never
// change for a given input.
func TestOrderDigestVector(t *testing.T) {
	want := common.HexToHash("0xdaa0345a41b4ef56c1c3a10af5637ad43d50490e3ad26d37fd1bd8dac2a38825")
	if have := OrderDigest(buyer, payUSD, payAmount, orderAmount, 7, 1_700_000_600); have != want {
		t.Fatalf("digest %s, want %s", have, want)
	}
}

func TestOrderDigestBindsEveryField(t *testing.T) {
	base := OrderDigest(buyer, payUSD, payAmount, orderAmount, 7, 1_700_000_600)

	variants := map[string]common.Hash{
		"buyer":    OrderDigest(gateAdmin, payUSD, payAmount, orderAmount, 7, 1_700_000_600),
		"asset":    OrderDigest(buyer, params.NativeAsset, payAmount, orderAmount, 7, 1_700_000_600),
		"payment":  OrderDigest(buyer, payUSD, payAmount+1, orderAmount, 7, 1_700_000_600),
		"amount":   OrderDigest(buyer, payUSD, payAmount, orderAmount+1, 7, 1_700_000_600),
		"nonce":    OrderDigest(buyer, payUSD, payAmount, orderAmount, 8, 1_700_000_600),
		"deadline": OrderDigest(buyer, payUSD, payAmount, orderAmount, 7, 1_700_000_601),
	}
	for field, digest := range variants {
		if digest == base {
			t.Fatalf("changing %s did not change the digest", field)
		}
	}

	if again := OrderDigest(buyer, payUSD, payAmount, orderAmount, 7, 1_700_000_600); again != base {
		t.Fatalf("digest not deterministic: %s != %s", again, base)
	}
}

func TestRecoverOrderSigner(t *testing.T) {
	key, err := crypto.HexToECDSA(signerKeyHex)
	if err != nil {
		t.Fatalf("load key: %v", err)
	}
	want := crypto.PubkeyToAddress(key.PublicKey)
	digest := OrderDigest(buyer, payUSD, payAmount, orderAmount, 7, 1_700_000_600)

	sig, err := crypto.Sign(digest.Bytes(), key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	have, err := RecoverOrderSigner(digest, sig)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if have != want {
		t.Fatalf("recovered %s, want %s", have, want)
	}

	// Second recovery is served from the cache and must agree.
	cached, err := RecoverOrderSigner(digest, sig)
	if err != nil {
		t.Fatalf("cached recover: %v", err)
	}
	if cached != want {
		t.Fatalf("cached signer %s, want %s", cached, want)
	}

	if _, err := RecoverOrderSigner(digest, sig[:64]); err != ErrInvalidSignature {
		t.Fatalf("truncated signature: have %v, want %v", err, ErrInvalidSignature)
	}
	if _, err := RecoverOrderSigner(digest, nil); err != ErrInvalidSignature {
		t.Fatalf("nil signature: have %v, want %v", err, ErrInvalidSignature)
	}
}
