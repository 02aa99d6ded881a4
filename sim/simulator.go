// sim/simulator.go
package sim

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/solidarity-fund/fund-sim/sim/trace"
)

// DayResult is the outcome of one simulated day. Results are append-only and ordered by Day.
type DayResult struct {
	Day               int              `json:"day"`
	Orders            int              `json:"orders"`
	FundContributions float64          `json:"fund_contributions"`
	DeliveryPayments  float64          `json:"delivery_payments"`
	FundBalance       float64          `json:"fund_balance"`  // running total after this day
	Profitability     float64          `json:"profitability"` // percentage; 0 when contributions are 0
	GovernanceAction  GovernanceAction `json:"governance_action,omitempty"`
	Adjustments       *Adjustments     `json:"adjustments,omitempty"`
}

// SimulationOutput bundles the three artifacts of a run.
type SimulationOutput struct {
	Results         []DayResult      `json:"results"`
	Metrics         FinancialMetrics `json:"metrics"`
	Recommendations []string         `json:"recommendations"`
}

// Simulator is the core object that holds the fund state and the day loop.
// A Simulator is not safe for concurrent use; concurrent runs need one Simulator each.
type Simulator struct {
	params Parameters
	cfg    SimConfig

	uniform UniformSource

	// Per-run state, rebuilt by every Run.
	balance            float64
	runtimeLogisticFee float64 // the only value governance mutates
	results            []DayResult
	metrics            FinancialMetrics
	recommendations    []string
	hasRun             bool

	// Trace holds the governance decisions of the last run.
	Trace *trace.GovernanceTrace
}

// NewSimulator validates params and cfg and returns a Simulator ready to Run.
func NewSimulator(params Parameters, cfg SimConfig) (*Simulator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		params: params,
		cfg:    cfg,
		Trace:  trace.NewGovernanceTrace(),
	}, nil
}

// Run is the stateless entry point: it builds a fresh Simulator, runs it and returns the output.
func Run(params Parameters, cfg SimConfig) (SimulationOutput, error) {
	s, err := NewSimulator(params, cfg)
	if err != nil {
		return SimulationOutput{}, err
	}
	return s.Run(), nil
}

// Run simulates days 1..SimulationDays from a freshly reset state and derives
// metrics and recommendations from the completed series.
func (s *Simulator) Run() SimulationOutput {
	s.reset()
	logrus.Infof("Starting fund simulation: days=%d, daily_orders=%.0f, opening_balance=%.2f, governance=%v, variation=%v",
		s.params.SimulationDays, s.params.DailyOrders, s.balance, !s.cfg.DisableGovernance, !s.cfg.DisableVariation)

	for day := 1; day <= s.params.SimulationDays; day++ {
		result := s.simulateDay(day)
		if !s.cfg.DisableGovernance && result.FundBalance < LowBalanceThreshold {
			s.applyGovernance(&result)
		}
		s.results = append(s.results, result)
	}

	s.metrics = ComputeMetrics(s.results)
	s.recommendations = Recommendations(s.metrics)
	s.hasRun = true

	logrus.Infof("Fund simulation complete: net_balance=%.2f, average_roi=%.2f%%, break_even_day=%d, interventions=%d",
		s.metrics.NetBalance, s.metrics.AverageROI, s.metrics.BreakEvenDay, len(s.Trace.Records))
	return s.Output()
}

// reset restores opening state so consecutive runs never leak into each other.
func (s *Simulator) reset() {
	s.balance = s.cfg.openingBalance()
	s.runtimeLogisticFee = s.params.LogisticFeeBase
	s.results = make([]DayResult, 0, s.params.SimulationDays)
	s.metrics = FinancialMetrics{}
	s.recommendations = nil
	s.Trace.Reset()

	if s.cfg.Uniform != nil {
		s.uniform = s.cfg.Uniform
		return
	}
	// Re-seed per run: the same Simulator run twice replays the same demand stream.
	s.uniform = NewDemandSource(s.cfg.Seed)
}

func (s *Simulator) variation() float64 {
	if s.cfg.DisableVariation {
		return 1.0
	}
	return DailyVariation(s.uniform)
}

// simulateDay advances the fund by one day. Governance annotations are attached by Run.
func (s *Simulator) simulateDay(day int) DayResult {
	m := s.variation()
	orders := max(1, int(math.Floor(s.params.DailyOrders*m)))

	contributions := FundContributions(s.params, s.runtimeLogisticFee, orders)
	payments := DeliveryPayments(orders, s.params.DeliveriesPerDriver)
	s.balance += contributions - payments

	profitability := 0.0
	if contributions != 0 {
		profitability = (contributions - payments) / contributions * 100
	}

	logrus.Debugf("[day %04d] multiplier=%.4f orders=%d contributions=%.2f payments=%.2f balance=%.2f",
		day, m, orders, contributions, payments, s.balance)

	return DayResult{
		Day:               day,
		Orders:            orders,
		FundContributions: contributions,
		DeliveryPayments:  payments,
		FundBalance:       s.balance,
		Profitability:     profitability,
	}
}

// applyGovernance evaluates the controller for the day's closing balance and
// tags the result when the logistic fee changes.
func (s *Simulator) applyGovernance(result *DayResult) {
	action, newFee := EvaluateGovernance(result.FundBalance, s.runtimeLogisticFee)
	if action == GovernanceNone {
		return
	}
	previous := s.runtimeLogisticFee
	s.runtimeLogisticFee = newFee
	reason := governanceReason(action, result.FundBalance)

	result.GovernanceAction = action
	result.Adjustments = &Adjustments{
		PreviousLogisticFee: previous,
		NewLogisticFee:      newFee,
		Reason:              reason,
	}
	s.Trace.Record(trace.GovernanceRecord{
		Day:         result.Day,
		Balance:     result.FundBalance,
		Action:      string(action),
		PreviousFee: previous,
		NewFee:      newFee,
		Reason:      reason,
	})

	if action == GovernanceEmergencyRateIncrease {
		logrus.Warnf("[day %04d] %s: logistic fee %.4f -> %.4f (%s)", result.Day, action, previous, newFee, reason)
	} else {
		logrus.Infof("[day %04d] %s: logistic fee %.4f -> %.4f (%s)", result.Day, action, previous, newFee, reason)
	}
}

// Output returns the artifacts of the last run. Results are copied so callers cannot
// mutate the Simulator's state.
func (s *Simulator) Output() SimulationOutput {
	results := make([]DayResult, len(s.results))
	copy(results, s.results)
	recs := make([]string, len(s.recommendations))
	copy(recs, s.recommendations)
	return SimulationOutput{
		Results:         results,
		Metrics:         s.metrics,
		Recommendations: recs,
	}
}

// Parameters returns the input record the Simulator was built with.
func (s *Simulator) Parameters() Parameters {
	return s.params
}

// LogisticFee returns the runtime logistic fee at the end of the last run.
func (s *Simulator) LogisticFee() float64 {
	return s.runtimeLogisticFee
}

// Balance returns the fund balance at the end of the last run.
func (s *Simulator) Balance() float64 {
	return s.balance
}
