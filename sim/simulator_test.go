package sim

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_ExampleScenario_FirstDay(t *testing.T) {
	// GIVEN the reference scenario with variation disabled
	s, err := NewSimulator(exampleParameters(), SimConfig{DisableVariation: true})
	require.NoError(t, err)

	// WHEN it runs
	out := s.Run()
	day1 := out.Results[0]

	// THEN day 1 realizes exactly the baseline volume
	assert.Equal(t, 1, day1.Day)
	assert.Equal(t, 1000, day1.Orders)
	assert.InDelta(t, 3922.5, day1.FundContributions, 1e-6)
	assert.InDelta(t, 10800.0, day1.DeliveryPayments, 1e-6)
	assert.InDelta(t, DefaultOpeningBalance+3922.5-10800, day1.FundBalance, 1e-6)
	assert.InDelta(t, (3922.5-10800)/3922.5*100, day1.Profitability, 1e-9)

	// AND the closing balance of 3,122.50 triggers a regular rate increase
	assert.Equal(t, GovernanceRateIncrease, day1.GovernanceAction)
}

func TestSimulator_BalanceRecurrence(t *testing.T) {
	// GIVEN a seeded run with variation and governance
	s, err := NewSimulator(exampleParameters(), SimConfig{Seed: 42}.WithOpeningBalance(25_000))
	require.NoError(t, err)

	// WHEN it runs
	out := s.Run()

	// THEN each day's balance is the previous one plus that day's net flow
	prev := 25_000.0
	for _, r := range out.Results {
		want := prev + (r.FundContributions - r.DeliveryPayments)
		if r.FundBalance != want {
			t.Fatalf("day %d: balance %v, want %v", r.Day, r.FundBalance, want)
		}
		prev = r.FundBalance
	}
	assert.Equal(t, prev, s.Balance())
}

func TestSimulator_ResultsCoverEveryDay(t *testing.T) {
	for _, days := range []int{1, 7, 365} {
		p := exampleParameters()
		p.SimulationDays = days
		out, err := Run(p, SimConfig{Seed: 3})
		require.NoError(t, err)
		require.Len(t, out.Results, days)
		for i, r := range out.Results {
			assert.Equal(t, i+1, r.Day)
		}
	}
}

func TestSimulator_OrderFloor_ExtremeNegativeShock(t *testing.T) {
	// GIVEN a single baseline order and draws that always clamp to 0.5
	p := exampleParameters()
	p.DailyOrders = 1
	p.SimulationDays = 10
	s, err := NewSimulator(p, SimConfig{Uniform: scriptedSource(0.999999999, 0.5)})
	require.NoError(t, err)

	// WHEN it runs
	out := s.Run()

	// THEN floor(0.5) is lifted to one order every day
	for _, r := range out.Results {
		assert.Equal(t, 1, r.Orders, "day %d", r.Day)
	}
}

func TestSimulator_OrderFloor_SeededSample(t *testing.T) {
	p := exampleParameters()
	p.DailyOrders = 1.5
	p.SimulationDays = 500
	out, err := Run(p, SimConfig{Seed: 11})
	require.NoError(t, err)
	for _, r := range out.Results {
		if r.Orders < 1 {
			t.Fatalf("day %d: orders = %d, want >= 1", r.Day, r.Orders)
		}
	}
}

func TestSimulator_Determinism_SameSeedIdenticalResults(t *testing.T) {
	// GIVEN two simulators with identical parameters and seed
	a, err := NewSimulator(exampleParameters(), SimConfig{Seed: 2024})
	require.NoError(t, err)
	b, err := NewSimulator(exampleParameters(), SimConfig{Seed: 2024})
	require.NoError(t, err)

	// THEN they produce bit-identical series
	assert.Equal(t, a.Run().Results, b.Run().Results)
}

func TestSimulator_Determinism_DifferentSeedsDiverge(t *testing.T) {
	a, _ := Run(exampleParameters(), SimConfig{Seed: 1})
	b, _ := Run(exampleParameters(), SimConfig{Seed: 2})

	same := true
	for i := range a.Results {
		if a.Results[i].Orders != b.Results[i].Orders {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds produced identical order volumes")
}

func TestSimulator_RerunResetsState(t *testing.T) {
	// GIVEN a simulator that already ran (and whose governance raised the fee)
	s, err := NewSimulator(exampleParameters(), SimConfig{Seed: 5})
	require.NoError(t, err)
	first := s.Run()
	require.NotEqual(t, exampleParameters().LogisticFeeBase, s.LogisticFee())

	// WHEN it runs again
	second := s.Run()

	// THEN nothing leaks: same length, same series, same trace size
	require.Len(t, second.Results, exampleParameters().SimulationDays)
	assert.Equal(t, first.Results, second.Results)
	assert.Equal(t, first.Metrics, second.Metrics)
	assert.Equal(t, first.Recommendations, second.Recommendations)
}

func TestSimulator_OutputIsACopy(t *testing.T) {
	s, err := NewSimulator(exampleParameters(), SimConfig{Seed: 5})
	require.NoError(t, err)
	out := s.Run()

	out.Results[0].Orders = -1
	assert.NotEqual(t, -1, s.Output().Results[0].Orders)
}

func TestSimulator_ConcurrentRunsAreIndependent(t *testing.T) {
	// GIVEN sequential reference runs for several seeds
	const n = 8
	want := make([]SimulationOutput, n)
	for i := 0; i < n; i++ {
		out, err := Run(exampleParameters(), SimConfig{Seed: int64(i)})
		require.NoError(t, err)
		want[i] = out
	}

	// WHEN the same runs execute concurrently, one Simulator each
	got := make([]SimulationOutput, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], _ = Run(exampleParameters(), SimConfig{Seed: int64(i)})
		}(i)
	}
	wg.Wait()

	// THEN each matches its sequential counterpart
	for i := 0; i < n; i++ {
		assert.Equal(t, want[i].Results, got[i].Results, "seed %d", i)
	}
}

func TestSimulator_ZeroContributions_NoNaN(t *testing.T) {
	// GIVEN parameters where nothing flows into the fund
	p := exampleParameters()
	p.AverageOrderValue = 0
	p.LogisticFeeBase = 0
	p.SimulationDays = 5

	out, err := Run(p, SimConfig{Seed: 1})
	require.NoError(t, err)

	// THEN profitability and ROI fall back to 0
	for _, r := range out.Results {
		assert.Equal(t, 0.0, r.Profitability, "day %d", r.Day)
	}
	assert.Equal(t, 0.0, out.Metrics.AverageROI)
}
