// Package metrics exposes prometheus collectors for the custody engines.
// The processor updates them as it applies operations; serving them is the
// embedding program's concern.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OperationsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gsnrg_operations_applied_total",
			Help: "Total number of operations applied successfully",
		},
		[]string{"kind"},
	)

	OperationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gsnrg_operations_failed_total",
			Help: "Total number of operations rejected or reverted",
		},
		[]string{"kind"},
	)

	StakingRewardReserve = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gsnrg_staking_reward_reserve",
			Help: "Reward reserve currently held by the staking pool",
		},
	)

	StakingPromisedRewards = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gsnrg_staking_promised_rewards",
			Help: "Rewards promised to open stakes and not yet paid",
		},
	)

	SwapTotalBurned = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gsnrg_swap_burned_total",
			Help: "Cumulative amount burned for swap receipts",
		},
	)

	PresalePurchases = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gsnrg_presale_purchases_total",
			Help: "Total number of completed presale purchases",
		},
	)
)
