package trace

// GovernanceSummary aggregates statistics from a GovernanceTrace.
type GovernanceSummary struct {
	Interventions int
	ActionCounts  map[string]int // action -> number of days it fired
	FirstDay      int            // 0 if governance never fired
	LastDay       int
	FeeMultiplier float64 // final fee / fee before the first intervention; 1 if none
	LowestBalance float64 // lowest balance that triggered an intervention
}

// Summarize computes aggregate statistics from a GovernanceTrace.
// Safe for nil or empty traces (returns zero counts and a multiplier of 1).
func Summarize(gt *GovernanceTrace) *GovernanceSummary {
	summary := &GovernanceSummary{
		ActionCounts:  make(map[string]int),
		FeeMultiplier: 1,
	}
	if gt == nil || len(gt.Records) == 0 {
		return summary
	}

	summary.Interventions = len(gt.Records)
	summary.FirstDay = gt.Records[0].Day
	summary.LastDay = gt.Records[len(gt.Records)-1].Day
	summary.LowestBalance = gt.Records[0].Balance
	for _, r := range gt.Records {
		summary.ActionCounts[r.Action]++
		if r.Balance < summary.LowestBalance {
			summary.LowestBalance = r.Balance
		}
	}

	first := gt.Records[0].PreviousFee
	last := gt.Records[len(gt.Records)-1].NewFee
	if first > 0 {
		summary.FeeMultiplier = last / first
	}
	return summary
}
