package models

import "time"

// Acceptor is a request for a quantity of a named food
type Acceptor struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name" gorm:"not null"`
	Email      string     `json:"email" gorm:"not null"`
	Phone      string     `json:"phone"`
	Location   string     `json:"location"`
	Food       string     `json:"food" gorm:"not null"`
	Quantity   int        `json:"quantity" gorm:"not null"`
	Membership Membership `json:"membership" gorm:"default:'Basic'"`
	IsVerified bool       `json:"is_verified" gorm:"default:false;index"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Status maps the verified flag onto the request lifecycle
func (a Acceptor) Status() RequestStatus {
	if a.IsVerified {
		return RequestResolved
	}
	return RequestPending
}
