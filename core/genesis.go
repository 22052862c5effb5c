package core

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/rawdb"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/params"
	"github.com/snrg-network/gsnrg/presale"
	"github.com/snrg-network/gsnrg/rescue"
	"github.com/snrg-network/gsnrg/snrgdb"
	"github.com/snrg-network/gsnrg/staking"
	"github.com/snrg-network/gsnrg/swap"
	"github.com/snrg-network/gsnrg/timelock"
	"github.com/snrg-network/gsnrg/token"
)

var (
	// ErrGenesisExists is returned when initializing a store that already
	// carries a genesis marker.
	ErrGenesisExists = errors.New("core: data directory already initialized")

	// ErrNoGenesis is returned when opening a store that was never
	// initialized.
	ErrNoGenesis = errors.New("core: data directory not initialized")
)

// Genesis specifies the initial custody state: the SNRG supply, the parties
// administering the engines, and the allocations moved into the pools before
// the first operation.
type Genesis struct {
	// Admin administers every engine after genesis.
	Admin common.Address `json:"admin"`

	// Treasury receives the minted supply and presale payments.
	Treasury common.Address `json:"treasury"`

	// OrderSigner authorizes presale purchase orders.
	OrderSigner common.Address `json:"order_signer"`

	// TotalSupply is minted to the treasury.
	TotalSupply uint64 `json:"total_supply"`

	// SaleAllocation moves from the treasury into the presale pool as
	// deliverable inventory.
	SaleAllocation uint64 `json:"sale_allocation"`

	// RewardReserve funds the staking reward reserve.
	RewardReserve uint64 `json:"reward_reserve"`

	// TimelockMinDelaySeconds is the proposal queue's minimum delay. Zero
	// selects the floor.
	TimelockMinDelaySeconds int64 `json:"timelock_min_delay_seconds,omitempty"`
}

// Validate checks the genesis document for internal consistency.
func (g *Genesis) Validate() error {
	if g.Admin == (common.Address{}) {
		return errors.New("core: genesis admin is zero")
	}
	if g.Treasury == (common.Address{}) {
		return errors.New("core: genesis treasury is zero")
	}
	if g.OrderSigner == (common.Address{}) {
		return errors.New("core: genesis order signer is zero")
	}
	if g.TotalSupply == 0 {
		return errors.New("core: genesis total supply is zero")
	}
	if g.SaleAllocation > g.TotalSupply || g.RewardReserve > g.TotalSupply-g.SaleAllocation {
		return errors.New("core: genesis allocations exceed total supply")
	}
	return nil
}

// Apply writes the genesis state: configure the ledger, mint the supply,
// confirm the pool endpoints, initialize every engine, and move the sale
// and reserve allocations into their pools. The caller commits.
func (g *Genesis) Apply(db state.StateDB) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := token.Configure(db, params.TokenAddress, g.Treasury, g.Admin); err != nil {
		return err
	}
	if err := token.Mint(db, params.TokenAddress, g.Treasury, g.TotalSupply); err != nil {
		return err
	}
	endpoints := []struct {
		kind token.EndpointKind
		pool common.Address
	}{
		{token.EndpointStaking, params.StakingAddress},
		{token.EndpointPresale, params.PresaleAddress},
		{token.EndpointSwap, params.SwapAddress},
		{token.EndpointRescue, params.RescueAddress},
	}
	for _, e := range endpoints {
		if err := token.SetEndpoint(db, e.kind, e.pool); err != nil {
			return fmt.Errorf("confirm %s endpoint: %w", e.kind, err)
		}
	}
	if err := staking.Initialize(db, g.Admin, g.Treasury); err != nil {
		return err
	}
	if err := presale.Initialize(db, g.Admin, g.OrderSigner, g.Treasury); err != nil {
		return err
	}
	if err := swap.Initialize(db, g.Admin); err != nil {
		return err
	}
	if err := rescue.Initialize(db, g.Admin); err != nil {
		return err
	}
	minDelay := g.TimelockMinDelaySeconds
	if minDelay == 0 {
		minDelay = params.TimelockMinDelayFloorSeconds
	}
	if err := timelock.Initialize(db, g.Admin, minDelay); err != nil {
		return err
	}

	treasuryAuth := token.OwnerAuthority(g.Treasury)
	if g.SaleAllocation > 0 {
		if _, err := token.Transfer(db, params.TokenAddress, treasuryAuth, g.Treasury, params.PresaleAddress, g.SaleAllocation); err != nil {
			return fmt.Errorf("fund sale inventory: %w", err)
		}
	}
	if g.RewardReserve > 0 {
		if g.Admin != g.Treasury {
			if _, err := token.Transfer(db, params.TokenAddress, treasuryAuth, g.Treasury, g.Admin, g.RewardReserve); err != nil {
				return fmt.Errorf("stage reward reserve: %w", err)
			}
		}
		if err := staking.FundReserve(db, g.Admin, g.RewardReserve); err != nil {
			return fmt.Errorf("fund reward reserve: %w", err)
		}
	}
	return nil
}

// SetupGenesis initializes a backing store with the genesis state and
// records the genesis document as the store's marker. A store that already
// carries a marker is refused.
func SetupGenesis(db snrgdb.KeyValueStore, g *Genesis) error {
	if rawdb.ReadGenesisMarker(db) != nil {
		return ErrGenesisExists
	}
	statedb := state.NewWithStore(db)
	if err := g.Apply(statedb); err != nil {
		return err
	}
	if err := statedb.Commit(); err != nil {
		return err
	}
	snapshot, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return rawdb.WriteGenesisMarker(db, snapshot)
}

// ReadGenesis retrieves the genesis document recorded at initialization.
func ReadGenesis(db snrgdb.KeyValueReader) (*Genesis, error) {
	data := rawdb.ReadGenesisMarker(db)
	if data == nil {
		return nil, ErrNoGenesis
	}
	var g Genesis
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("core: corrupt genesis marker: %v", err)
	}
	return &g, nil
}
