package models

import "time"

const DeliveryAvailable = "Available"

type DeliveryPerson struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email" gorm:"not null"`
	Phone         string    `json:"phone" gorm:"not null"`
	Location      string    `json:"location" gorm:"not null"`
	VehicleType   string    `json:"vehicle_type" gorm:"not null"`
	LicenseNumber string    `json:"license_number"`
	IsVerified    bool      `json:"is_verified" gorm:"default:false"`
	Status        string    `json:"status" gorm:"default:'Available'"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (d DeliveryPerson) VerificationStatus() VerificationStatus {
	if d.IsVerified {
		return StatusVerified
	}
	return StatusPending
}
