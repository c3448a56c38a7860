package models

// RequestStatus represents the lifecycle of an acceptor request
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestResolved RequestStatus = "RESOLVED"
)

// VerificationStatus represents admin approval of a restaurant or delivery person
type VerificationStatus string

const (
	StatusPending  VerificationStatus = "PENDING"
	StatusVerified VerificationStatus = "VERIFIED"
)
