package allocation

import (
	"fmt"
	"strings"
	"time"

	"foodshare-api/models"
)

const (
	NoMatchInfo = "No matching fresh verified food found."

	AuditActorName = "Pricing Engine"
	AuditAction    = "Matched & Priced"
)

// Result is the response body of a verify-acceptor call.
type Result struct {
	Success             bool             `json:"success"`
	Data                *models.Acceptor `json:"data"`
	MatchInfo           string           `json:"matchInfo"`
	Pricing             *Pricing         `json:"pricing"`
	Matched             bool             `json:"matched"`
	MatchedRestaurantID *uint            `json:"matchedRestaurantId,omitempty"`
}

// Decision is everything one allocation changes, computed without touching a store.
type Decision struct {
	Acceptor models.Acceptor
	// Restaurant is the matched restaurant with the item already decremented, nil without a match.
	Restaurant *models.Restaurant
	ItemIndex  int
	Activity   models.ActivityLog
	Result     Result
}

// FindFirst returns the position of the first item, scanning restaurants then
// items in slice order, that can serve the request at now. Callers pass only
// verified restaurants.
func FindFirst(restaurants []models.Restaurant, food string, qty int, now time.Time) (int, int, bool) {
	food = strings.ToLower(food)
	for ri := range restaurants {
		for ii, item := range restaurants[ri].Items {
			if item.Matches(food, qty, now) {
				return ri, ii, true
			}
		}
	}
	return -1, -1, false
}

// Plan matches acceptor against the verified restaurants snapshot. It never
// modifies its arguments: the updated records come back in the Decision.
func Plan(acceptor models.Acceptor, restaurants []models.Restaurant, now time.Time) Decision {
	d := Decision{Acceptor: acceptor, ItemIndex: -1}
	info := NoMatchInfo

	ri, ii, ok := FindFirst(restaurants, acceptor.Food, acceptor.Quantity, now)
	if ok {
		matched := restaurants[ri]
		matched.Items = append([]models.FoodItem(nil), matched.Items...)

		pricing := Quote(matched.Items[ii], acceptor.Quantity)
		matched.Items[ii].Quantity -= acceptor.Quantity

		info = fmt.Sprintf("Matched with %s. Payout: %.2f, Cost: %.2f",
			matched.Name, pricing.RestaurantPayout, pricing.AcceptorCost)

		d.Restaurant = &matched
		d.ItemIndex = ii
		d.Result.Pricing = &pricing
		d.Result.Matched = true
		d.Result.MatchedRestaurantID = &matched.ID
	}

	d.Acceptor.IsVerified = true
	d.Result.Success = true
	d.Result.MatchInfo = info
	d.Activity = models.ActivityLog{
		ActorType:  models.ActorSystem,
		ActorName:  AuditActorName,
		ActorEmail: "system@foodshare.local",
		Action:     AuditAction,
		Details:    fmt.Sprintf("Acceptor %s matched. %s", acceptor.Name, info),
		Timestamp:  now,
	}
	return d
}
