package models

import (
	"strings"
	"time"
)

// Membership tiers offered to donors and acceptors
type Membership string

const (
	MembershipBasic  Membership = "Basic"
	MembershipSilver Membership = "Silver"
	MembershipGold   Membership = "Gold"
)

type Restaurant struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Email       string     `json:"email" gorm:"not null"`
	Phone       string     `json:"phone"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Membership  Membership `json:"membership" gorm:"default:'Basic'"`
	Rating      float64    `json:"rating" gorm:"default:0"`
	IsVerified  bool       `json:"is_verified" gorm:"default:false;index"`
	Items       []FoodItem `json:"items,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Status maps the verified flag onto the restaurant lifecycle
func (r Restaurant) Status() VerificationStatus {
	if r.IsVerified {
		return StatusVerified
	}
	return StatusPending
}

// FoodItem is one donated listing. FoodValue is the total value of Quantity
// as listed, so the unit value shrinks with the quantity left.
type FoodItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Food         string    `json:"food" gorm:"not null"`
	Quantity     int       `json:"quantity" gorm:"not null"`
	Category     string    `json:"category"`
	FoodValue    float64   `json:"food_value"`
	ExpiryTime   time.Time `json:"expiry_time" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// Matches reports whether the item can serve qty units of food at time now
func (i FoodItem) Matches(food string, qty int, now time.Time) bool {
	return strings.ToLower(i.Food) == strings.ToLower(food) &&
		i.Quantity >= qty &&
		now.Before(i.ExpiryTime)
}
