package sim

import (
	"fmt"
	"math"
)

// DefaultOpeningBalance is the fund balance on day 0 of every run.
const DefaultOpeningBalance = 10_000.0

// SimConfig groups run options that are not part of the economic model.
// The zero value enables variation and governance, seeds the demand stream
// with 0 and opens at DefaultOpeningBalance.
type SimConfig struct {
	Seed              int64         // seed for the demand stream
	OpeningBalance    *float64      // nil = DefaultOpeningBalance
	DisableVariation  bool          // fix the daily multiplier at 1.0
	DisableGovernance bool          // never adjust the logistic fee
	Uniform           UniformSource // overrides the seeded demand stream when non-nil
}

// WithOpeningBalance returns a copy of cfg opening at balance.
func (cfg SimConfig) WithOpeningBalance(balance float64) SimConfig {
	cfg.OpeningBalance = &balance
	return cfg
}

func (cfg SimConfig) openingBalance() float64 {
	if cfg.OpeningBalance == nil {
		return DefaultOpeningBalance
	}
	return *cfg.OpeningBalance
}

func (cfg SimConfig) validate() error {
	ob := cfg.openingBalance()
	if math.IsNaN(ob) || math.IsInf(ob, 0) {
		return fmt.Errorf("%w: opening balance must be a finite number, got %f", ErrInvalidParameters, ob)
	}
	return nil
}
