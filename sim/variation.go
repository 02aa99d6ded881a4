package sim

import "math"

const (
	// VariationStdDev is the standard deviation of the daily demand multiplier.
	VariationStdDev = 0.2
	// MinVariation and MaxVariation bound daily demand shocks to ±50% of baseline.
	MinVariation = 0.5
	MaxVariation = 1.5
)

// DailyVariation draws a demand multiplier centered at 1.0 using the Box–Muller
// transform over two uniform samples, clamped to [MinVariation, MaxVariation].
func DailyVariation(src UniformSource) float64 {
	// src yields [0, 1); 1-u maps it onto (0, 1] so ln(u1) is always defined.
	u1 := 1 - src()
	u2 := src()
	z0 := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return math.Min(MaxVariation, math.Max(MinVariation, 1+VariationStdDev*z0))
}
