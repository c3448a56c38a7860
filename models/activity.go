package models

import "time"

// Actor types recorded in the audit trail
const (
	ActorRestaurant = "Restaurant"
	ActorAcceptor   = "Acceptor"
	ActorDelivery   = "Delivery"
	ActorAdmin      = "Admin"
	ActorSystem     = "System"
)

// ActivityLog is one append-only audit trail entry
type ActivityLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ActorType  string    `json:"actor_type" gorm:"not null"`
	ActorName  string    `json:"actor_name" gorm:"not null"`
	ActorEmail string    `json:"actor_email"`
	Action     string    `json:"action" gorm:"not null"`
	Details    string    `json:"details"`
	Timestamp  time.Time `json:"timestamp" gorm:"index"`
}
