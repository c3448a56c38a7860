package store

import (
	"context"
	"fmt"
	"time"

	"foodshare-api/models"
)

type sampleRestaurant struct {
	name, email, location, food string
	quantity                    int
	membership                  models.Membership
}

var sampleRestaurants = []sampleRestaurant{
	{"Grand Imperial Hotel", "info@grandimperial.com", "Mumbai Central", "Lunch Buffet", 50, models.MembershipGold},
	{"Oceanic Resort", "contact@oceanic.io", "Goa Beach Road", "Seafood Platter", 30, models.MembershipSilver},
	{"The Green Bistro", "hello@greenbistro.com", "Bangalore Tech Park", "Organic Salads", 20, models.MembershipGold},
	{"Urban Tandoor", "order@urbantandoor.in", "Delhi Metro Heights", "North Indian Meals", 45, models.MembershipBasic},
}

// Seed populates an empty store with verified sample donors. It reports
// whether anything was inserted; a store that already has restaurants is left alone.
func Seed(ctx context.Context, s Store, now time.Time) (bool, error) {
	existing, err := s.ListRestaurants(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	expiry := now.Add(24 * time.Hour)
	for _, sr := range sampleRestaurants {
		r := models.Restaurant{
			Name:       sr.name,
			Email:      sr.email,
			Location:   sr.location,
			Membership: sr.membership,
			IsVerified: true,
			Items: []models.FoodItem{{
				Food:       sr.food,
				Quantity:   sr.quantity,
				Category:   "Meals",
				FoodValue:  float64(sr.quantity * 10),
				ExpiryTime: expiry,
			}},
		}
		if err := s.CreateRestaurant(ctx, &r); err != nil {
			return false, fmt.Errorf("seed %s: %w", sr.name, err)
		}
	}

	entries := []models.ActivityLog{
		{ActorType: models.ActorSystem, ActorName: "Storage Engine", Action: "Ecosystem Wake-up", Details: "Sample donors loaded into " + s.Engine() + ".", Timestamp: now},
		{ActorType: models.ActorAdmin, ActorName: "Admin", Action: "Storage Audit", Details: fmt.Sprintf("%d verified restaurants available for matching.", len(sampleRestaurants)), Timestamp: now},
	}
	for i := range entries {
		if err := s.AppendActivity(ctx, &entries[i]); err != nil {
			return false, fmt.Errorf("seed activity: %w", err)
		}
	}
	return true, nil
}
