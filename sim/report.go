package sim

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/solidarity-fund/fund-sim/sim/trace"
)

// ExportRecord is the structured form of the last run, suitable for JSON
// serialization or flattening into one row per DayResult.
type ExportRecord struct {
	Parameters      Parameters       `json:"parameters"`
	Results         []DayResult      `json:"results"`
	Metrics         FinancialMetrics `json:"metrics"`
	Recommendations []string         `json:"recommendations"`
}

// Export returns the last run's parameters, results, metrics and recommendations.
// Before the first Run, Results and Recommendations are empty.
func (s *Simulator) Export() ExportRecord {
	out := s.Output()
	return ExportRecord{
		Parameters:      s.params,
		Results:         out.Results,
		Metrics:         out.Metrics,
		Recommendations: out.Recommendations,
	}
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// Report renders the last run as a multi-section text report.
// It performs no computation beyond formatting.
func (s *Simulator) Report() string {
	var sb strings.Builder

	sb.WriteString("=== Solidarity Fund Simulation Report ===\n")
	if !s.hasRun {
		sb.WriteString("No simulation has been run.\n")
		return sb.String()
	}

	p := s.params
	sb.WriteString("\n--- Parameters ---\n")
	fmt.Fprintf(&sb, "Simulation Days        : %d\n", p.SimulationDays)
	fmt.Fprintf(&sb, "Daily Orders           : %s\n", decimal.NewFromFloat(p.DailyOrders).String())
	fmt.Fprintf(&sb, "Average Order Value    : %s\n", money(p.AverageOrderValue))
	fmt.Fprintf(&sb, "Commission Rate        : %s\n", percent(p.MarketplaceCommissionRate))
	fmt.Fprintf(&sb, "Logistic Fee (initial) : %s\n", money(p.LogisticFeeBase))
	fmt.Fprintf(&sb, "Logistic Fee (final)   : %s\n", money(s.runtimeLogisticFee))
	fmt.Fprintf(&sb, "Active Deliverers      : %d\n", p.ActiveDeliverers)
	fmt.Fprintf(&sb, "Deliveries per Driver  : %d\n", p.DeliveriesPerDriver)

	m := s.metrics
	sb.WriteString("\n--- Financial Metrics ---\n")
	fmt.Fprintf(&sb, "Total Contributions    : %s\n", money(m.TotalContributions))
	fmt.Fprintf(&sb, "Total Payments         : %s\n", money(m.TotalPayments))
	fmt.Fprintf(&sb, "Net Balance            : %s\n", money(m.NetBalance))
	fmt.Fprintf(&sb, "Final Fund Balance     : %s\n", money(s.balance))
	fmt.Fprintf(&sb, "Average ROI            : %s\n", percent(m.AverageROI))
	if m.BreakEvenDay > 0 {
		fmt.Fprintf(&sb, "Break-even Day         : %d\n", m.BreakEvenDay)
	} else {
		sb.WriteString("Break-even Day         : not reached\n")
	}
	fmt.Fprintf(&sb, "Peak Deficit           : %s\n", money(m.PeakDeficit))
	fmt.Fprintf(&sb, "Peak Surplus           : %s\n", money(m.PeakSurplus))

	gs := trace.Summarize(s.Trace)
	sb.WriteString("\n--- Governance ---\n")
	if gs.Interventions == 0 {
		sb.WriteString("No governance interventions.\n")
	} else {
		fmt.Fprintf(&sb, "Interventions          : %d (days %d-%d)\n", gs.Interventions, gs.FirstDay, gs.LastDay)
		actions := make([]string, 0, len(gs.ActionCounts))
		for a := range gs.ActionCounts {
			actions = append(actions, a)
		}
		sort.Strings(actions)
		for _, a := range actions {
			fmt.Fprintf(&sb, "  %-22s: %d\n", a, gs.ActionCounts[a])
		}
		fmt.Fprintf(&sb, "Fee Multiplier         : x%s\n", decimal.NewFromFloat(gs.FeeMultiplier).StringFixed(4))
		fmt.Fprintf(&sb, "Lowest Trigger Balance : %s\n", money(gs.LowestBalance))
	}

	sb.WriteString("\n--- Recommendations ---\n")
	if len(s.recommendations) == 0 {
		sb.WriteString("No recommendations; the fund is within expected bounds.\n")
	}
	for i, r := range s.recommendations {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, r)
	}
	return sb.String()
}
