// Copyright 2025 The gsnrg Authors
// This file is part of the gsnrg library.
//
// The gsnrg library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The gsnrg library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the gsnrg library. If not, see <http://www.gnu.org/licenses/>.

package params

import (
	"github.com/snrg-network/gsnrg/common"
)

// SNRG system addresses: fixed, well-known addresses used by the engines.
// Each engine keeps its storage words and its custody pool balance under its
// own address; outbound pool transfers are authorized by a system credential
// scoped to that address.
var (
	// TokenAddress anchors the custody ledger state: per-asset balances,
	// allowances, supply counters, the asset registry and the transfer
	// restriction configuration.
	TokenAddress = common.HexToAddress("0x00000000000000000000000000000000534E5230") // "SNR0"

	// StakingAddress holds the reserve-ledger state and the staking custody
	// pool (staked principal plus the funded reward reserve).
	StakingAddress = common.HexToAddress("0x00000000000000000000000000000000534E5231") // "SNR1"

	// PresaleAddress holds the purchase-gate state and the sale inventory pool
	// tokens are delivered from.
	PresaleAddress = common.HexToAddress("0x00000000000000000000000000000000534E5232") // "SNR2"

	// SwapAddress holds the burn-receipt ledger state. Burned value never sits
	// here; burns reduce supply directly.
	SwapAddress = common.HexToAddress("0x00000000000000000000000000000000534E5233") // "SNR3"

	// RescueAddress holds rescue-plan state and is the spender of the
	// delegated allowances rescue executions draw on.
	RescueAddress = common.HexToAddress("0x00000000000000000000000000000000534E5234") // "SNR4"

	// TimelockAddress holds the proposal queue and is the caller identity for
	// operations dispatched by matured proposals.
	TimelockAddress = common.HexToAddress("0x00000000000000000000000000000000534E5235") // "SNR5"
)

// NativeAsset is the asset id of the native payment unit. The zero address is
// reserved for it; every other asset id is a regular 20-byte address.
var NativeAsset = common.Address{}

// SecondsPerDay is the day length used by every time-window computation.
const SecondsPerDay = 86_400

// Reserve-ledger (staking) parameters.
var (
	// StakingRateBps maps lock duration in days to the reward rate in basis
	// points. Durations must match a key exactly; there is no interpolation.
	StakingRateBps = map[uint64]uint64{
		30:  125,
		60:  250,
		90:  375,
		180: 500,
	}

	// StakingDurationsDays lists the configured durations in ascending order.
	// Used wherever the table has to be walked deterministically.
	StakingDurationsDays = []uint64{30, 60, 90, 180}
)

const (
	// EarlyWithdrawalFeeBps is charged on principal when a stake is withdrawn
	// before maturity. The reward is forfeited in full.
	EarlyWithdrawalFeeBps = 500 // 5%

	// EmergencyWithdrawalFeeBps is charged on principal for an emergency exit
	// at any time. The reward is forfeited in full.
	EmergencyWithdrawalFeeBps = 1_000 // 10%
)

// Purchase-gate (presale) parameters.
const (
	// PurchaseCooldownSeconds is the minimum spacing between two purchases by
	// the same buyer.
	PurchaseCooldownSeconds = 300

	// MaxPurchasesPerDay bounds purchases per buyer inside one daily window.
	MaxPurchasesPerDay = 10

	// MinPurchaseAmount is the smallest accepted sale amount, in base units.
	MinPurchaseAmount = uint64(1_000) * SNRG

	// DefaultMaxPurchaseAmount is the initial per-purchase ceiling; admins may
	// raise or lower it after initialization.
	DefaultMaxPurchaseAmount = uint64(5_000_000) * SNRG

	// MaxPaymentAssets bounds the payment-asset allow-list.
	MaxPaymentAssets = 10

	// PresaleDomainSeparator ties purchase-order signatures to this protocol.
	// The digest additionally includes the presale pool address, tying it to
	// one deployment.
	PresaleDomainSeparator = "snrg_presale_v1"
)

// Burn-receipt ledger (swap) parameters.
const (
	// SwapFinalizeDelaySeconds must elapse between proposing a distribution
	// root and finalizing it.
	SwapFinalizeDelaySeconds = 48 * 3_600 // 48h

	// SwapReopenCooldownSeconds must elapse after a finalization before the
	// ledger may be reopened with a corrected root.
	SwapReopenCooldownSeconds = 7 * SecondsPerDay
)

// Self-rescue registry parameters.
const (
	// RescueMinDelaySeconds and RescueMaxDelaySeconds bound the per-plan delay
	// between arming a rescue and its earliest execution.
	RescueMinDelaySeconds = 7 * SecondsPerDay
	RescueMaxDelaySeconds = 365 * SecondsPerDay

	// RescueInitiationCooldownSeconds bounds how often a plan can be armed.
	// Cancelling an armed rescue releases the cooldown.
	RescueInitiationCooldownSeconds = 90 * SecondsPerDay

	// MaxRescueExecutors bounds the registered executor set.
	MaxRescueExecutors = 10
)

// Proposal-queue (timelock) parameters.
const (
	// TimelockMinDelayFloorSeconds and TimelockMaxDelaySeconds bound the
	// configurable minimum queue delay.
	TimelockMinDelayFloorSeconds = 2 * SecondsPerDay
	TimelockMaxDelaySeconds      = 30 * SecondsPerDay
)

// EndpointConfirmDelaySeconds must elapse between proposing and confirming a
// transfer-restriction endpoint.
const EndpointConfirmDelaySeconds = 24 * 3_600
