// Package store holds the swappable persistence backends for restaurants,
// acceptors, delivery people and the activity log.
package store

import (
	"context"
	"errors"

	"foodshare-api/models"
)

// ErrNotFound is returned when an id does not resolve so handlers can respond with 404.
var ErrNotFound = errors.New("record not found")

type RestaurantStore interface {
	CreateRestaurant(ctx context.Context, r *models.Restaurant) error
	// ListRestaurants returns every restaurant, newest first.
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// FindVerifiedRestaurants returns verified restaurants in store order (ascending id),
	// with their items in listing order.
	FindVerifiedRestaurants(ctx context.Context) ([]models.Restaurant, error)
	FindRestaurantByID(ctx context.Context, id uint) (*models.Restaurant, error)
	SaveRestaurant(ctx context.Context, r *models.Restaurant) error
	// VerifyRestaurant sets only the verified flag.
	VerifyRestaurant(ctx context.Context, id uint) error
	DeleteRestaurant(ctx context.Context, id uint) error
}

type AcceptorStore interface {
	CreateAcceptor(ctx context.Context, a *models.Acceptor) error
	// ListAcceptors returns every acceptor, newest first.
	ListAcceptors(ctx context.Context) ([]models.Acceptor, error)
	FindVerifiedAcceptors(ctx context.Context) ([]models.Acceptor, error)
	FindAcceptorByID(ctx context.Context, id uint) (*models.Acceptor, error)
	SaveAcceptor(ctx context.Context, a *models.Acceptor) error
	DeleteAcceptor(ctx context.Context, id uint) error
}

type DeliveryStore interface {
	CreateDelivery(ctx context.Context, d *models.DeliveryPerson) error
	ListDeliveries(ctx context.Context) ([]models.DeliveryPerson, error)
	FindDeliveryByID(ctx context.Context, id uint) (*models.DeliveryPerson, error)
	VerifyDelivery(ctx context.Context, id uint) error
	DeleteDelivery(ctx context.Context, id uint) error
}

type ActivityStore interface {
	AppendActivity(ctx context.Context, entry *models.ActivityLog) error
	// ListActivities returns the audit trail, newest first.
	ListActivities(ctx context.Context) ([]models.ActivityLog, error)
	DeleteActivity(ctx context.Context, id uint) error
}

// Stats counts the records held by a store
type Stats struct {
	Restaurants         int64 `json:"restaurants"`
	VerifiedRestaurants int64 `json:"verified_restaurants"`
	FoodItems           int64 `json:"food_items"`
	Acceptors           int64 `json:"acceptors"`
	ResolvedAcceptors   int64 `json:"resolved_acceptors"`
	Deliveries          int64 `json:"deliveries"`
	Activities          int64 `json:"activities"`
}

// Store is the full persistence surface used by the HTTP layer.
type Store interface {
	RestaurantStore
	AcceptorStore
	DeliveryStore
	ActivityStore

	Stats(ctx context.Context) (Stats, error)
	// Engine names the backend, e.g. "SQLite (GORM)".
	Engine() string
	Close() error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*GormStore)(nil)
)
