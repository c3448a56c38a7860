package models

// UserRole defines roles carried in access tokens
type UserRole string

const (
	RoleAdmin UserRole = "admin"
)
