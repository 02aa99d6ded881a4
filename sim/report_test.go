package sim

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_BeforeRun(t *testing.T) {
	s, err := NewSimulator(exampleParameters(), SimConfig{})
	require.NoError(t, err)

	report := s.Report()
	assert.Contains(t, report, "No simulation has been run.")
	assert.Empty(t, s.Export().Results)
}

func TestReport_ContainsHeadlineMetricsAndRecommendations(t *testing.T) {
	// GIVEN the reference scenario run without variation
	s, err := NewSimulator(exampleParameters(), SimConfig{DisableVariation: true})
	require.NoError(t, err)
	out := s.Run()

	// WHEN rendered
	report := s.Report()

	// THEN every section is present
	for _, section := range []string{"--- Parameters ---", "--- Financial Metrics ---", "--- Governance ---", "--- Recommendations ---"} {
		assert.Contains(t, report, section)
	}
	// AND money is rendered with two decimals
	assert.Contains(t, report, "Logistic Fee (initial) : 0.75")
	assert.Contains(t, report, "Total Contributions    : "+money(out.Metrics.TotalContributions))
	// AND governance interventions are summarized
	assert.Contains(t, report, string(GovernanceRateIncrease))
	// AND each recommendation is listed
	require.NotEmpty(t, out.Recommendations)
	for _, r := range out.Recommendations {
		assert.Contains(t, report, r)
	}
}

func TestReport_NoBreakEven(t *testing.T) {
	// GIVEN a fund that opens in deficit and keeps losing money
	s, err := NewSimulator(drainingParameters(5), SimConfig{DisableVariation: true, DisableGovernance: true}.WithOpeningBalance(-1_000))
	require.NoError(t, err)
	s.Run()

	report := s.Report()
	assert.Contains(t, report, "Break-even Day         : not reached")
	assert.Contains(t, report, "No governance interventions.")
}

func TestExport_MatchesLastRun(t *testing.T) {
	// GIVEN a completed run
	s, err := NewSimulator(exampleParameters(), SimConfig{Seed: 8})
	require.NoError(t, err)
	out := s.Run()

	// WHEN exported
	rec := s.Export()

	// THEN it carries the run's artifacts and the input record
	assert.Equal(t, exampleParameters(), rec.Parameters)
	assert.Equal(t, out.Results, rec.Results)
	assert.Equal(t, out.Metrics, rec.Metrics)
	assert.Equal(t, out.Recommendations, rec.Recommendations)

	// AND it serializes with snake_case keys
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	for _, key := range []string{`"parameters"`, `"results"`, `"metrics"`, `"recommendations"`, `"fund_balance"`, `"break_even_day"`, `"governance_action"`} {
		assert.True(t, strings.Contains(string(data), key), "missing %s", key)
	}
}

func TestMoney_RoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, "3922.50", money(3922.5))
	assert.Equal(t, "-6877.50", money(-6877.5))
	assert.Equal(t, "0.00", money(0))
	assert.Equal(t, "12.50%", percent(12.5))
}
