package store

import (
	"context"
	"errors"
	"fmt"

	"foodshare-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists records through GORM; the dialect (sqlite, postgres)
// is chosen by whoever opened the *gorm.DB.
type GormStore struct {
	DB   *gorm.DB
	name string
}

// NewGormStore migrates the schema and wraps db.
func NewGormStore(db *gorm.DB, name string) (*GormStore, error) {
	err := db.AutoMigrate(
		&models.Restaurant{},
		&models.FoodItem{},
		&models.Acceptor{},
		&models.DeliveryPerson{},
		&models.ActivityLog{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &GormStore{DB: db, name: name}, nil
}

func (s *GormStore) Engine() string { return s.name }

func (s *GormStore) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// markVerified flips is_verified alone, leaving item quantities to the allocation engine.
func (s *GormStore) markVerified(ctx context.Context, model any, id uint) error {
	res := s.DB.WithContext(ctx).Model(model).Where("id = ?", id).Update("is_verified", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("food_items.id asc")
}

// ── Restaurants ─────────────────────────────────────────────────────────────

func (s *GormStore) CreateRestaurant(ctx context.Context, r *models.Restaurant) error {
	if r.Membership == "" {
		r.Membership = models.MembershipBasic
	}
	return s.DB.WithContext(ctx).Create(r).Error
}

func (s *GormStore) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := s.DB.WithContext(ctx).Preload("Items", orderedItems).
		Order("created_at desc, id desc").Find(&restaurants).Error
	return restaurants, err
}

func (s *GormStore) FindVerifiedRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := s.DB.WithContext(ctx).Preload("Items", orderedItems).
		Where("is_verified = ?", true).
		Order("id asc").Find(&restaurants).Error
	return restaurants, err
}

func (s *GormStore) FindRestaurantByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.DB.WithContext(ctx).Preload("Items", orderedItems).First(&restaurant, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &restaurant, nil
}

// SaveRestaurant writes the restaurant row and each of its items in one transaction.
func (s *GormStore) SaveRestaurant(ctx context.Context, r *models.Restaurant) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Restaurant{}).Where("id = ?", r.ID).Select("*").
			Omit("id", "created_at", clause.Associations).Updates(r)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		for i := range r.Items {
			r.Items[i].RestaurantID = r.ID
			if err := tx.Save(&r.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) VerifyRestaurant(ctx context.Context, id uint) error {
	return s.markVerified(ctx, &models.Restaurant{}, id)
}

func (s *GormStore) DeleteRestaurant(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Restaurant{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("restaurant_id = ?", id).Delete(&models.FoodItem{}).Error
	})
}

// ── Acceptors ───────────────────────────────────────────────────────────────

func (s *GormStore) CreateAcceptor(ctx context.Context, a *models.Acceptor) error {
	if a.Membership == "" {
		a.Membership = models.MembershipBasic
	}
	return s.DB.WithContext(ctx).Create(a).Error
}

func (s *GormStore) ListAcceptors(ctx context.Context) ([]models.Acceptor, error) {
	var acceptors []models.Acceptor
	err := s.DB.WithContext(ctx).Order("created_at desc, id desc").Find(&acceptors).Error
	return acceptors, err
}

func (s *GormStore) FindVerifiedAcceptors(ctx context.Context) ([]models.Acceptor, error) {
	var acceptors []models.Acceptor
	err := s.DB.WithContext(ctx).Where("is_verified = ?", true).Order("id asc").Find(&acceptors).Error
	return acceptors, err
}

func (s *GormStore) FindAcceptorByID(ctx context.Context, id uint) (*models.Acceptor, error) {
	var acceptor models.Acceptor
	if err := s.DB.WithContext(ctx).First(&acceptor, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &acceptor, nil
}

func (s *GormStore) SaveAcceptor(ctx context.Context, a *models.Acceptor) error {
	res := s.DB.WithContext(ctx).Model(&models.Acceptor{}).Where("id = ?", a.ID).
		Select("*").Omit("id", "created_at").Updates(a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteAcceptor(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Acceptor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ── Delivery people ─────────────────────────────────────────────────────────

func (s *GormStore) CreateDelivery(ctx context.Context, d *models.DeliveryPerson) error {
	if d.Status == "" {
		d.Status = models.DeliveryAvailable
	}
	return s.DB.WithContext(ctx).Create(d).Error
}

func (s *GormStore) ListDeliveries(ctx context.Context) ([]models.DeliveryPerson, error) {
	var deliveries []models.DeliveryPerson
	err := s.DB.WithContext(ctx).Order("created_at desc, id desc").Find(&deliveries).Error
	return deliveries, err
}

func (s *GormStore) FindDeliveryByID(ctx context.Context, id uint) (*models.DeliveryPerson, error) {
	var d models.DeliveryPerson
	if err := s.DB.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

func (s *GormStore) VerifyDelivery(ctx context.Context, id uint) error {
	return s.markVerified(ctx, &models.DeliveryPerson{}, id)
}

func (s *GormStore) DeleteDelivery(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.DeliveryPerson{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ── Activity log ────────────────────────────────────────────────────────────

func (s *GormStore) AppendActivity(ctx context.Context, entry *models.ActivityLog) error {
	return s.DB.WithContext(ctx).Create(entry).Error
}

func (s *GormStore) ListActivities(ctx context.Context) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	err := s.DB.WithContext(ctx).Order("timestamp desc, id desc").Find(&logs).Error
	return logs, err
}

func (s *GormStore) DeleteActivity(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.ActivityLog{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	db := s.DB.WithContext(ctx)
	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&st.Restaurants, db.Model(&models.Restaurant{})},
		{&st.VerifiedRestaurants, db.Model(&models.Restaurant{}).Where("is_verified = ?", true)},
		{&st.FoodItems, db.Model(&models.FoodItem{})},
		{&st.Acceptors, db.Model(&models.Acceptor{})},
		{&st.ResolvedAcceptors, db.Model(&models.Acceptor{}).Where("is_verified = ?", true)},
		{&st.Deliveries, db.Model(&models.DeliveryPerson{})},
		{&st.Activities, db.Model(&models.ActivityLog{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return st, err
		}
	}
	return st, nil
}
