// Package trace provides governance decision recording for fund simulations.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// GovernanceRecord captures a single governance intervention.
type GovernanceRecord struct {
	Day         int
	Balance     float64 // closing balance that triggered the decision
	Action      string
	PreviousFee float64
	NewFee      float64
	Reason      string
}
