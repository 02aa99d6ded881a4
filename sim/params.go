package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameters is wrapped by every validation failure returned from
// Parameters.Validate and NewSimulator.
var ErrInvalidParameters = errors.New("invalid simulation parameters")

// MaxDailyOrders bounds the baseline so the realized order count fits in an
// int32 even at MaxVariation.
const MaxDailyOrders = math.MaxInt32 / MaxVariation

// Parameters is the immutable input record of one simulation run.
// The Simulator copies it at construction; governance never writes back to it.
type Parameters struct {
	DailyOrders               float64 `yaml:"daily_orders" json:"daily_orders"`                               // baseline expected orders per day (> 0)
	AverageOrderValue         float64 `yaml:"average_order_value" json:"average_order_value"`                 // monetary value per order
	MarketplaceCommissionRate float64 `yaml:"marketplace_commission_rate" json:"marketplace_commission_rate"` // percentage, 0-100
	LogisticFeeBase           float64 `yaml:"logistic_fee_base" json:"logistic_fee_base"`                     // flat fee per order; governance raises a runtime copy
	ActiveDeliverers          int     `yaml:"active_deliverers" json:"active_deliverers"`                     // informational only
	DeliveriesPerDriver       int     `yaml:"deliveries_per_driver" json:"deliveries_per_driver"`             // shift capacity (>= 1)
	SimulationDays            int     `yaml:"simulation_days" json:"simulation_days"`                         // days to simulate (>= 1)
}

// Validate rejects parameter records that would produce degenerate output.
// Non-finite values and negative money or rate fields are rejected rather than clamped.
func (p Parameters) Validate() error {
	floats := []struct {
		name string
		val  float64
	}{
		{"daily_orders", p.DailyOrders},
		{"average_order_value", p.AverageOrderValue},
		{"marketplace_commission_rate", p.MarketplaceCommissionRate},
		{"logistic_fee_base", p.LogisticFeeBase},
	}
	for _, f := range floats {
		if err := validateFiniteNonNegative(f.name, f.val); err != nil {
			return err
		}
	}
	if p.DailyOrders <= 0 {
		return fmt.Errorf("%w: daily_orders must be positive, got %f", ErrInvalidParameters, p.DailyOrders)
	}
	if p.DailyOrders > MaxDailyOrders {
		return fmt.Errorf("%w: daily_orders must be at most %.0f, got %g", ErrInvalidParameters, MaxDailyOrders, p.DailyOrders)
	}
	if p.MarketplaceCommissionRate > 100 {
		return fmt.Errorf("%w: marketplace_commission_rate must be in [0, 100], got %f", ErrInvalidParameters, p.MarketplaceCommissionRate)
	}
	if p.ActiveDeliverers < 0 {
		return fmt.Errorf("%w: active_deliverers must be non-negative, got %d", ErrInvalidParameters, p.ActiveDeliverers)
	}
	if p.DeliveriesPerDriver < 1 {
		return fmt.Errorf("%w: deliveries_per_driver must be at least 1, got %d", ErrInvalidParameters, p.DeliveriesPerDriver)
	}
	if p.SimulationDays < 1 {
		return fmt.Errorf("%w: simulation_days must be at least 1, got %d", ErrInvalidParameters, p.SimulationDays)
	}
	return nil
}

func validateFiniteNonNegative(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %f", ErrInvalidParameters, name, val)
	}
	if val < 0 {
		return fmt.Errorf("%w: %s must be non-negative, got %f", ErrInvalidParameters, name, val)
	}
	return nil
}
