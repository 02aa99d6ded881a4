package sim

import "math"

// Fund contribution shares, each a fraction of its base quantity.
const (
	CommissionFundShare = 0.60 // share of marketplace commission paid into the fund
	LogisticFundShare   = 0.25 // share of the logistic fee paid into the fund
	SolidarityPoolShare = 0.15 // solidarity pool as a share of marketplace commission
	SolidarityFundShare = 0.15 // share of the solidarity pool paid into the fund
)

// Delivery partner payment constants.
const (
	PerDeliveryRate             = 5.0 // base payment per delivery
	SpeedBonusPerDelivery       = 0.5
	ReliabilityBonusPerDelivery = 0.3
	WeeklyProjectionDays        = 7 // shift deliveries are scaled by this to project weekly volume
)

// bonusTier maps a minimum weekly delivery count to its bonus.
type bonusTier struct {
	MinWeeklyDeliveries int
	Bonus               float64
}

// weeklyBonusTiers is ordered highest tier first; lower bounds are inclusive.
var weeklyBonusTiers = []bonusTier{
	{MinWeeklyDeliveries: 80, Bonus: 100},
	{MinWeeklyDeliveries: 60, Bonus: 60},
	{MinWeeklyDeliveries: 40, Bonus: 30},
	{MinWeeklyDeliveries: 20, Bonus: 10},
}

// FundContributionPerOrder returns what one order pays into the fund given the
// current logistic fee (which governance may have raised above the input value).
func FundContributionPerOrder(p Parameters, logisticFee float64) float64 {
	commission := p.AverageOrderValue * (p.MarketplaceCommissionRate / 100)
	commissionShare := commission * CommissionFundShare
	logisticShare := logisticFee * LogisticFundShare
	solidarityShare := commission * SolidarityPoolShare * SolidarityFundShare
	return commissionShare + logisticShare + solidarityShare
}

// FundContributions returns the day's total fund inflow for the realized order count.
func FundContributions(p Parameters, logisticFee float64, orders int) float64 {
	return FundContributionPerOrder(p, logisticFee) * float64(orders)
}

// WeeklyBonus maps a projected weekly delivery count onto the tiered bonus schedule.
func WeeklyBonus(weeklyDeliveries int) float64 {
	for _, tier := range weeklyBonusTiers {
		if weeklyDeliveries >= tier.MinWeeklyDeliveries {
			return tier.Bonus
		}
	}
	return 0
}

// ShiftPayment returns the payment for a single driver shift.
func ShiftPayment(deliveries int) float64 {
	d := float64(deliveries)
	base := d * PerDeliveryRate
	weekly := WeeklyBonus(deliveries * WeeklyProjectionDays)
	performance := d*SpeedBonusPerDelivery + d*ReliabilityBonusPerDelivery
	return base + weekly + performance
}

// ShiftCount returns ceil(orders / deliveriesPerDriver).
func ShiftCount(orders, deliveriesPerDriver int) int {
	if orders <= 0 || deliveriesPerDriver <= 0 {
		return 0
	}
	return int(math.Ceil(float64(orders) / float64(deliveriesPerDriver)))
}

// DeliveryPayments partitions orders into shifts of deliveriesPerDriver
// (the last shift takes the remainder) and sums the shift payments.
// Full shifts all earn the same amount, so the cost is constant in orders.
func DeliveryPayments(orders, deliveriesPerDriver int) float64 {
	if ShiftCount(orders, deliveriesPerDriver) == 0 {
		return 0
	}
	full, remainder := orders/deliveriesPerDriver, orders%deliveriesPerDriver
	total := float64(full) * ShiftPayment(deliveriesPerDriver)
	if remainder > 0 {
		total += ShiftPayment(remainder)
	}
	return total
}
