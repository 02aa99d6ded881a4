// Derives portfolio-style metrics from a completed day series.

package sim

// FinancialMetrics aggregates a run's DayResults for reporting.
type FinancialMetrics struct {
	TotalContributions float64 `json:"total_contributions"`
	TotalPayments      float64 `json:"total_payments"`
	NetBalance         float64 `json:"net_balance"`
	AverageROI         float64 `json:"average_roi"`    // percentage; 0 when contributions are 0
	BreakEvenDay       int     `json:"break_even_day"` // first day with FundBalance >= 0; 0 if never
	PeakDeficit        float64 `json:"peak_deficit"`   // minimum FundBalance observed
	PeakSurplus        float64 `json:"peak_surplus"`   // maximum FundBalance observed
}

// ComputeMetrics derives FinancialMetrics from an ordered DayResult series.
// Safe for nil or empty series (returns zero-value fields).
func ComputeMetrics(results []DayResult) FinancialMetrics {
	var m FinancialMetrics
	if len(results) == 0 {
		return m
	}

	m.PeakDeficit = results[0].FundBalance
	m.PeakSurplus = results[0].FundBalance
	for i, r := range results {
		m.TotalContributions += r.FundContributions
		m.TotalPayments += r.DeliveryPayments
		if m.BreakEvenDay == 0 && r.FundBalance >= 0 {
			m.BreakEvenDay = i + 1
		}
		m.PeakDeficit = min(m.PeakDeficit, r.FundBalance)
		m.PeakSurplus = max(m.PeakSurplus, r.FundBalance)
	}

	m.NetBalance = m.TotalContributions - m.TotalPayments
	if m.TotalContributions != 0 {
		m.AverageROI = m.NetBalance / m.TotalContributions * 100
	}
	return m
}
