package presale

import (
	"math/big"

	lru "github.com/hashicorp/golang-lru"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/crypto"
	"github.com/snrg-network/gsnrg/params"
)

// inmemorySigners bounds the recovered-signer cache. Replayed digests (RPC
// dry runs followed by the real apply) hit the cache instead of rerunning
// pubkey recovery.
const inmemorySigners = 4096

var signerCache, _ = lru.NewARC(inmemorySigners)

// OrderDigest computes the signing hash for a purchase order. The preimage
// binds every order field plus the pool address and a protocol tag, so a
// signature cannot be replayed for another buyer, another amount, or another
// deployment. The result is the text-prefixed hash of the raw keccak, which
// is what wallet SignText flows produce.
func OrderDigest(buyer, paymentAsset common.Address, paymentAmount, snrgAmount, nonce uint64, deadline int64) common.Hash {
	raw := crypto.Keccak256(
		buyer.Bytes(),
		paymentAsset.Bytes(),
		le64(paymentAmount),
		le64(snrgAmount),
		le64(nonce),
		le64(uint64(deadline)),
		params.PresaleAddress.Bytes(),
		[]byte(params.PresaleDomainSeparator),
	)
	return common.BytesToHash(crypto.TextHash(raw))
}

// RecoverOrderSigner extracts the address that signed digest from a 65-byte
// [R || S || V] signature. Results are cached by digest and signature.
func RecoverOrderSigner(digest common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, ErrInvalidSignature
	}
	key := common.BytesToHash(crypto.Keccak256(digest.Bytes(), sig))
	if addr, ok := signerCache.Get(key); ok {
		return addr.(common.Address), nil
	}

	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if !crypto.ValidateSignatureValues(sig[crypto.RecoveryIDOffset], r, s) {
		return common.Address{}, ErrInvalidSignature
	}
	pub, err := crypto.SigToPub(digest.Bytes(), sig)
	if err != nil {
		return common.Address{}, ErrInvalidSignature
	}
	signer := crypto.PubkeyToAddress(*pub)
	signerCache.Add(key, signer)
	return signer, nil
}
