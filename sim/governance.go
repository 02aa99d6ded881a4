package sim

import "fmt"

// Governance thresholds on the day's closing fund balance.
const (
	LowBalanceThreshold      = 5_000.0
	CriticalBalanceThreshold = 2_000.0

	RateIncreaseFactor          = 1.2
	EmergencyRateIncreaseFactor = 1.5
)

// GovernanceAction tags a day on which governance adjusted the logistic fee.
type GovernanceAction string

const (
	// GovernanceNone means the balance was healthy; the fee is unchanged.
	GovernanceNone GovernanceAction = ""
	// GovernanceRateIncrease raises the fee by RateIncreaseFactor.
	GovernanceRateIncrease GovernanceAction = "rate_increase"
	// GovernanceEmergencyRateIncrease raises the fee by EmergencyRateIncreaseFactor.
	GovernanceEmergencyRateIncrease GovernanceAction = "emergency_rate_increase"
)

// Adjustments is the payload attached to a DayResult when governance fired.
type Adjustments struct {
	PreviousLogisticFee float64 `json:"previous_logistic_fee"`
	NewLogisticFee      float64 `json:"new_logistic_fee"`
	Reason              string  `json:"reason"`
}

// EvaluateGovernance is a proportional-threshold controller: it returns the
// action for the given closing balance and the logistic fee to use from the
// next day on. There is no cooldown, so consecutive breaches compound.
func EvaluateGovernance(balance, logisticFee float64) (GovernanceAction, float64) {
	switch {
	case balance < CriticalBalanceThreshold:
		return GovernanceEmergencyRateIncrease, logisticFee * EmergencyRateIncreaseFactor
	case balance < LowBalanceThreshold:
		return GovernanceRateIncrease, logisticFee * RateIncreaseFactor
	default:
		return GovernanceNone, logisticFee
	}
}

func governanceReason(action GovernanceAction, balance float64) string {
	switch action {
	case GovernanceEmergencyRateIncrease:
		return fmt.Sprintf("fund balance %.2f below critical threshold %.0f", balance, CriticalBalanceThreshold)
	case GovernanceRateIncrease:
		return fmt.Sprintf("fund balance %.2f below low threshold %.0f", balance, LowBalanceThreshold)
	default:
		return ""
	}
}
