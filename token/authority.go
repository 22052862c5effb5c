package token

import "github.com/snrg-network/gsnrg/common"

// Authority answers "who may move this balance" for a custody transfer.
// Two variants exist: the authority of an externally signing owner, and
// the derived authority of a pool. Owner authorities debit only their
// own slot. Pool authorities additionally spend allowances delegated to
// the pool, which is how the rescue registry moves a victim's funds
// without ever taking custody of them.
//
// The interface is sealed; use OwnerAuthority or SystemAuthority.
type Authority interface {
	// Holder is the address whose own custody slots the authority may
	// debit directly.
	Holder() common.Address

	system() bool
}

type ownerAuthority common.Address

func (a ownerAuthority) Holder() common.Address { return common.Address(a) }
func (a ownerAuthority) system() bool           { return false }

type systemAuthority common.Address

func (a systemAuthority) Holder() common.Address { return common.Address(a) }
func (a systemAuthority) system() bool           { return true }

// OwnerAuthority returns the authority of an externally signed caller.
func OwnerAuthority(owner common.Address) Authority { return ownerAuthority(owner) }

// SystemAuthority returns the derived authority of a pool address. Only
// engine code constructs these, for pools the engine itself controls.
func SystemAuthority(pool common.Address) Authority { return systemAuthority(pool) }
