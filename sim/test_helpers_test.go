package sim

import "math/rand"

func newRandFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// scriptedSource replays values cyclically as a UniformSource.
func scriptedSource(values ...float64) UniformSource {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

// exampleParameters is the reference scenario: 1000 orders of 50 at 12% commission.
func exampleParameters() Parameters {
	return Parameters{
		DailyOrders:               1000,
		AverageOrderValue:         50,
		MarketplaceCommissionRate: 12,
		LogisticFeeBase:           0.75,
		ActiveDeliverers:          50,
		DeliveriesPerDriver:       20,
		SimulationDays:            30,
	}
}

// drainingParameters lose money every day: 100 orders pay 100 into the fund
// at the input fee and cost 680 in one shift of 100 deliveries.
func drainingParameters(days int) Parameters {
	return Parameters{
		DailyOrders:               100,
		AverageOrderValue:         0,
		MarketplaceCommissionRate: 0,
		LogisticFeeBase:           4,
		DeliveriesPerDriver:       100,
		SimulationDays:            days,
	}
}
