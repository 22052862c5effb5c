// Package node wires a data directory into a running custody processor:
// leveldb store underneath, word-addressed state over it, the operation
// processor on top.
package node

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/snrg-network/gsnrg/core"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/snrgdb"
	"github.com/snrg-network/gsnrg/snrgdb/leveldb"
)

// Node is an open custody data directory.
type Node struct {
	config  *Config
	log     *slog.Logger
	db      snrgdb.KeyValueStore
	state   *state.DB
	proc    *core.Processor
	genesis *core.Genesis

	closeOnce sync.Once
	closeErr  error
}

// Open opens an initialized data directory. Directories that never went
// through genesis setup are refused with core.ErrNoGenesis; initialization
// is a separate, explicit step.
func Open(conf *Config) (*Node, error) {
	conf = conf.withDefaults()
	logger := conf.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	db, err := leveldb.New(conf.statePath(), conf.DatabaseCache, conf.DatabaseHandles, conf.ReadOnly)
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}
	genesis, err := core.ReadGenesis(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	st := state.NewWithStore(db)
	n := &Node{
		config:  conf,
		log:     logger,
		db:      db,
		state:   st,
		proc:    core.NewProcessor(st, conf.Clock, logger),
		genesis: genesis,
	}
	logger.Info("custody node open", "datadir", conf.DataDir, "treasury", genesis.Treasury)
	return n, nil
}

// Init creates and initializes a fresh data directory from the genesis
// document, then closes the store again. It refuses directories that
// already carry a genesis marker.
func Init(conf *Config, genesis *core.Genesis) error {
	conf = conf.withDefaults()
	db, err := leveldb.New(conf.statePath(), conf.DatabaseCache, conf.DatabaseHandles, false)
	if err != nil {
		return fmt.Errorf("open state database: %w", err)
	}
	defer db.Close()
	return core.SetupGenesis(db, genesis)
}

// Processor returns the operation processor bound to this node's state.
func (n *Node) Processor() *core.Processor { return n.proc }

// State returns the node's custody state.
func (n *Node) State() *state.DB { return n.state }

// Genesis returns the genesis document the data directory was initialized
// with.
func (n *Node) Genesis() *core.Genesis { return n.genesis }

// Close releases the backing store. Safe to call more than once.
func (n *Node) Close() error {
	n.closeOnce.Do(func() {
		n.closeErr = n.db.Close()
		n.log.Info("custody node closed", "datadir", n.config.DataDir)
	})
	return n.closeErr
}
