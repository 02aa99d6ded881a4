package sim

import "fmt"

// Recommendation thresholds.
const (
	CriticalROIThreshold        = -20.0
	HighROIThreshold            = 20.0
	ReserveFundDeficitThreshold = -10_000.0
	SlowBreakEvenDay            = 30
	SurplusDistributionLevel    = 50_000.0
)

// Recommendations turns metrics into an ordered list of advisory messages.
// Rules are independent except the ROI deficit rules, which are mutually exclusive.
// Never returns nil.
func Recommendations(m FinancialMetrics) []string {
	recs := make([]string, 0)

	switch {
	case m.AverageROI < CriticalROIThreshold:
		recs = append(recs, fmt.Sprintf("CRITICAL: average ROI %.2f%% is below %.0f%%; the fund is structurally in deficit. Raise the commission share or the logistic fee.", m.AverageROI, CriticalROIThreshold))
	case m.AverageROI < 0:
		recs = append(recs, fmt.Sprintf("WARNING: average ROI %.2f%% is negative; the fund is slowly losing money. Monitor governance adjustments closely.", m.AverageROI))
	case m.AverageROI > HighROIThreshold:
		recs = append(recs, fmt.Sprintf("High profitability: average ROI %.2f%% exceeds %.0f%%. Consider lowering fees or increasing delivery partner bonuses.", m.AverageROI, HighROIThreshold))
	}

	if m.PeakDeficit < ReserveFundDeficitThreshold {
		recs = append(recs, fmt.Sprintf("Peak deficit %.2f is below %.0f; establish a reserve fund to absorb shortfalls.", m.PeakDeficit, ReserveFundDeficitThreshold))
	}
	if m.BreakEvenDay > SlowBreakEvenDay {
		recs = append(recs, fmt.Sprintf("Break-even reached only on day %d; equilibrium is slow. Consider an initial capital injection.", m.BreakEvenDay))
	}
	if m.PeakSurplus > SurplusDistributionLevel {
		recs = append(recs, fmt.Sprintf("Peak surplus %.2f exceeds %.0f; consider distributing part of the surplus to delivery partners.", m.PeakSurplus, SurplusDistributionLevel))
	}
	return recs
}
