package allocation

import (
	"math"
	"testing"
	"time"

	"foodshare-api/models"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func makeItem(food string, qty int, value float64, expiresIn time.Duration) models.FoodItem {
	return models.FoodItem{Food: food, Quantity: qty, FoodValue: value, ExpiryTime: now.Add(expiresIn)}
}

func makeRestaurant(id uint, name string, items ...models.FoodItem) models.Restaurant {
	for i := range items {
		items[i].ID = id*100 + uint(i)
		items[i].RestaurantID = id
	}
	return models.Restaurant{ID: id, Name: name, IsVerified: true, Items: items}
}

func makeAcceptor(id uint, food string, qty int) models.Acceptor {
	return models.Acceptor{ID: id, Name: "acceptor", Email: "a@example.com", Food: food, Quantity: qty}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestQuote(t *testing.T) {
	tests := []struct {
		name   string
		item   models.FoodItem
		qty    int
		actual float64
	}{
		{"seafood platter", models.FoodItem{Quantity: 30, FoodValue: 300}, 10, 100},
		{"whole item", models.FoodItem{Quantity: 4, FoodValue: 50}, 4, 50},
		{"fractional unit", models.FoodItem{Quantity: 3, FoodValue: 10}, 1, 10.0 / 3},
		{"empty item divides by one", models.FoodItem{Quantity: 0, FoodValue: 40}, 0, 0},
		{"zero value", models.FoodItem{Quantity: 8, FoodValue: 0}, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Quote(tt.item, tt.qty)
			if !approx(p.ActualValue, tt.actual) {
				t.Errorf("actualValue: expected %v, got %v", tt.actual, p.ActualValue)
			}
			if !approx(p.RestaurantPayout, 0.10*tt.actual) ||
				!approx(p.AcceptorCost, 0.20*tt.actual) ||
				!approx(p.PlatformProfit, 0.10*tt.actual) {
				t.Errorf("unexpected split: %+v", p)
			}
		})
	}
}

func TestUnitValueZeroQuantity(t *testing.T) {
	if got := UnitValue(models.FoodItem{Quantity: 0, FoodValue: 25}); got != 25 {
		t.Errorf("expected divisor 1 for empty item, got unit value %v", got)
	}
}

func TestPlanScenarioA(t *testing.T) {
	restaurants := []models.Restaurant{
		makeRestaurant(1, "Oceanic Resort", makeItem("Seafood Platter", 30, 300, time.Hour)),
	}
	d := Plan(makeAcceptor(7, "Seafood Platter", 10), restaurants, now)

	if !d.Result.Matched || d.Restaurant == nil {
		t.Fatalf("expected a match, got %+v", d.Result)
	}
	if got := d.Restaurant.Items[0].Quantity; got != 20 {
		t.Errorf("expected remaining quantity 20, got %d", got)
	}
	p := d.Result.Pricing
	if !approx(p.ActualValue, 100) || !approx(p.RestaurantPayout, 10) ||
		!approx(p.AcceptorCost, 20) || !approx(p.PlatformProfit, 10) {
		t.Errorf("unexpected pricing: %+v", p)
	}
	if d.Result.MatchInfo != "Matched with Oceanic Resort. Payout: 10.00, Cost: 20.00" {
		t.Errorf("unexpected match info: %q", d.Result.MatchInfo)
	}
	if *d.Result.MatchedRestaurantID != 1 {
		t.Errorf("expected restaurant 1, got %d", *d.Result.MatchedRestaurantID)
	}
	if !d.Acceptor.IsVerified {
		t.Error("expected acceptor to be verified")
	}
}

func TestPlanDoesNotMutateSnapshot(t *testing.T) {
	restaurants := []models.Restaurant{
		makeRestaurant(1, "r1", makeItem("Rice", 10, 100, time.Hour)),
	}
	acceptor := makeAcceptor(1, "rice", 4)

	d := Plan(acceptor, restaurants, now)

	if restaurants[0].Items[0].Quantity != 10 {
		t.Errorf("snapshot item changed to %d", restaurants[0].Items[0].Quantity)
	}
	if acceptor.IsVerified {
		t.Error("input acceptor changed")
	}
	if d.Restaurant.Items[0].Quantity != 6 {
		t.Errorf("expected decision quantity 6, got %d", d.Restaurant.Items[0].Quantity)
	}
}

func TestPlanNoMatch(t *testing.T) {
	tests := []struct {
		name     string
		acceptor models.Acceptor
		items    []models.FoodItem
	}{
		{"scenario B: not enough quantity", makeAcceptor(1, "Seafood Platter", 50),
			[]models.FoodItem{makeItem("Seafood Platter", 30, 300, time.Hour)}},
		{"scenario C: expired", makeAcceptor(1, "Seafood Platter", 10),
			[]models.FoodItem{makeItem("Seafood Platter", 30, 300, -time.Minute)}},
		{"expiry equal to now", makeAcceptor(1, "Seafood Platter", 10),
			[]models.FoodItem{makeItem("Seafood Platter", 30, 300, 0)}},
		{"different food", makeAcceptor(1, "Bread", 1),
			[]models.FoodItem{makeItem("Seafood Platter", 30, 300, time.Hour)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Plan(tt.acceptor, []models.Restaurant{makeRestaurant(1, "r", tt.items...)}, now)
			if d.Result.Matched || d.Restaurant != nil || d.Result.Pricing != nil {
				t.Errorf("expected no match, got %+v", d.Result)
			}
			if d.Result.MatchInfo != NoMatchInfo {
				t.Errorf("unexpected info %q", d.Result.MatchInfo)
			}
			if !d.Acceptor.IsVerified || !d.Result.Success {
				t.Error("expected resolved acceptor and successful result")
			}
		})
	}
}

func TestPlanFirstFit(t *testing.T) {
	// later candidates are cheaper, larger, or expire sooner, and must still lose
	restaurants := []models.Restaurant{
		makeRestaurant(1, "first",
			makeItem("Salad", 2, 20, time.Hour),        // too small
			makeItem("Salad", 5, 500, 48*time.Hour),    // first fit
			makeItem("Salad", 50, 50, 30*time.Minute)), // cheaper, larger
		makeRestaurant(2, "second", makeItem("Salad", 100, 1, time.Hour)),
	}

	d := Plan(makeAcceptor(1, "SALAD", 3), restaurants, now)

	if d.Restaurant == nil || d.Restaurant.ID != 1 || d.ItemIndex != 1 {
		t.Fatalf("expected restaurant 1 item 1, got %+v idx=%d", d.Restaurant, d.ItemIndex)
	}
	if d.Restaurant.Items[1].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", d.Restaurant.Items[1].Quantity)
	}
	if d.Restaurant.Items[2].Quantity != 50 || d.Restaurant.Items[0].Quantity != 2 {
		t.Error("expected other items untouched")
	}
}

func TestPlanSkipsToNextRestaurant(t *testing.T) {
	restaurants := []models.Restaurant{
		makeRestaurant(1, "expired", makeItem("Meals", 40, 400, -time.Hour)),
		makeRestaurant(2, "fresh", makeItem("meals", 40, 400, time.Hour)),
	}
	d := Plan(makeAcceptor(1, "Meals", 40), restaurants, now)
	if d.Restaurant == nil || d.Restaurant.ID != 2 {
		t.Fatalf("expected match at restaurant 2, got %+v", d.Restaurant)
	}
	if d.Restaurant.Items[0].Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", d.Restaurant.Items[0].Quantity)
	}
}

func TestPlanAuditEntry(t *testing.T) {
	acceptor := makeAcceptor(1, "Rice", 1)
	acceptor.Name = "City Shelter"
	d := Plan(acceptor, nil, now)

	a := d.Activity
	if a.ActorType != models.ActorSystem || a.ActorName != AuditActorName || a.Action != AuditAction {
		t.Errorf("unexpected audit actor/action: %+v", a)
	}
	if a.Details != "Acceptor City Shelter matched. "+NoMatchInfo {
		t.Errorf("unexpected details %q", a.Details)
	}
	if !a.Timestamp.Equal(now) {
		t.Errorf("expected timestamp %v, got %v", now, a.Timestamp)
	}
}
