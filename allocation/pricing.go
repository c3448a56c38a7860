package allocation

import "foodshare-api/models"

// Shares of the matched value paid to or charged to each party. They sum to
// 40% of the actual value, not 100%; changing that needs a product decision.
const (
	RestaurantPayoutRate = 0.10
	AcceptorCostRate     = 0.20
	PlatformProfitRate   = 0.10
)

type Pricing struct {
	ActualValue      float64 `json:"actualValue"`
	RestaurantPayout float64 `json:"restaurantPayout"`
	AcceptorCost     float64 `json:"acceptorCost"`
	PlatformProfit   float64 `json:"platformProfit"`
}

// UnitValue is the item's listed value spread over its current quantity.
// An empty item divides by one.
func UnitValue(item models.FoodItem) float64 {
	qty := item.Quantity
	if qty <= 0 {
		qty = 1
	}
	return item.FoodValue / float64(qty)
}

// Quote prices qty units taken from item, using the quantity before any decrement.
func Quote(item models.FoodItem, qty int) Pricing {
	actual := UnitValue(item) * float64(qty)
	return Pricing{
		ActualValue:      actual,
		RestaurantPayout: actual * RestaurantPayoutRate,
		AcceptorCost:     actual * AcceptorCostRate,
		PlatformProfit:   actual * PlatformProfitRate,
	}
}
