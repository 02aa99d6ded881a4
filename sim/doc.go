// Package sim provides the day-stepped solidarity fund simulator.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - params.go: the immutable Parameters record and its validation
//   - simulator.go: the day loop, per-run state and governance hook
//   - payout.go: fund contribution and delivery payment formulas
//
// # Model
//
// Each day draws a demand multiplier (variation.go), realizes an integer order
// count, pays a share of commission, logistic fee and solidarity pool into the
// fund, and pays delivery partners per shift with tiered weekly bonuses. When the
// closing balance drops below LowBalanceThreshold, governance (governance.go)
// raises the runtime logistic fee for the remaining days of the run.
//
// After the loop, metrics.go derives totals, ROI, break-even day and peak
// drawdown; recommendations.go maps them onto advisory messages; report.go
// renders a text report and a structured export.
//
// # Determinism
//
// All randomness flows through a UniformSource. By default it is a demand
// stream seeded from SimConfig.Seed and re-seeded on every Run, so the same Simulator run twice produces identical results. Governance
// decisions are recorded in sim/trace.
package sim
