package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"foodshare-api/models"
)

// snapshot is the on-disk shape of a MemoryStore
type snapshot struct {
	Restaurants     []models.Restaurant     `json:"restaurants"`
	Acceptors       []models.Acceptor       `json:"acceptors"`
	DeliveryPersons []models.DeliveryPerson `json:"delivery_persons"`
	ActivityLogs    []models.ActivityLog    `json:"activity_logs"`
	NextID          uint                    `json:"next_id"`
}

// MemoryStore keeps every record in process memory behind one RWMutex.
// When path is set, the whole dataset is written to that JSON file after
// every mutation and loaded from it on open.
// Reads return deep copies, so callers only change stored state through Save*.
type MemoryStore struct {
	mu   sync.RWMutex
	path string
	data snapshot
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now, data: snapshot{NextID: 1}}
}

// OpenFileStore loads path if it exists and persists every mutation back to it.
func OpenFileStore(path string) (*MemoryStore, error) {
	s := NewMemoryStore()
	s.path = path

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if s.data.NextID == 0 {
		s.data.NextID = s.data.maxID() + 1
	}
	return s, nil
}

func (s *MemoryStore) Engine() string {
	if s.path != "" {
		return "Local JSON (" + s.path + ")"
	}
	return "In-Memory"
}

func (s *MemoryStore) Close() error { return nil }

func (d *snapshot) nextID() uint {
	id := d.NextID
	d.NextID++
	return id
}

func (d *snapshot) maxID() uint {
	var highest uint
	bump := func(id uint) {
		if id > highest {
			highest = id
		}
	}
	for _, r := range d.Restaurants {
		bump(r.ID)
		for _, it := range r.Items {
			bump(it.ID)
		}
	}
	for _, a := range d.Acceptors {
		bump(a.ID)
	}
	for _, p := range d.DeliveryPersons {
		bump(p.ID)
	}
	for _, l := range d.ActivityLogs {
		bump(l.ID)
	}
	return highest
}

// clone copies the top-level slices. Stored restaurants are replaced whole,
// never edited in place, so their item slices can be shared.
func (d snapshot) clone() snapshot {
	d.Restaurants = append([]models.Restaurant(nil), d.Restaurants...)
	d.Acceptors = append([]models.Acceptor(nil), d.Acceptors...)
	d.DeliveryPersons = append([]models.DeliveryPerson(nil), d.DeliveryPersons...)
	d.ActivityLogs = append([]models.ActivityLog(nil), d.ActivityLogs...)
	return d
}

// update applies fn to a copy of the dataset and keeps it only once it is
// on disk, so a failed write leaves memory as it was. Callers hold mu.
func (s *MemoryStore) update(fn func(d *snapshot) error) error {
	next := s.data.clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.write(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

func (s *MemoryStore) write(d snapshot) error {
	if s.path == "" {
		return nil
	}
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, s.path)
}

func copyRestaurant(r models.Restaurant) models.Restaurant {
	c := r
	c.Items = append([]models.FoodItem(nil), r.Items...)
	return c
}

// ── Restaurants ─────────────────────────────────────────────────────────────

func (s *MemoryStore) CreateRestaurant(_ context.Context, r *models.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(d *snapshot) error {
		now := s.now()
		r.ID = d.nextID()
		r.CreatedAt, r.UpdatedAt = now, now
		if r.Membership == "" {
			r.Membership = models.MembershipBasic
		}
		for i := range r.Items {
			r.Items[i].ID = d.nextID()
			r.Items[i].RestaurantID = r.ID
			r.Items[i].CreatedAt = now
		}
		d.Restaurants = append(d.Restaurants, copyRestaurant(*r))
		return nil
	})
}

func (s *MemoryStore) ListRestaurants(_ context.Context) ([]models.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Restaurant, 0, len(s.data.Restaurants))
	for i := len(s.data.Restaurants) - 1; i >= 0; i-- {
		out = append(out, copyRestaurant(s.data.Restaurants[i]))
	}
	return out, nil
}

func (s *MemoryStore) FindVerifiedRestaurants(_ context.Context) ([]models.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Restaurant
	for _, r := range s.data.Restaurants {
		if r.IsVerified {
			out = append(out, copyRestaurant(r))
		}
	}
	return out, nil
}

func (s *MemoryStore) FindRestaurantByID(_ context.Context, id uint) (*models.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.data.Restaurants {
		if r.ID == id {
			c := copyRestaurant(r)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) SaveRestaurant(_ context.Context, r *models.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(d *snapshot) error {
		for i := range d.Restaurants {
			if d.Restaurants[i].ID != r.ID {
				continue
			}
			saved := copyRestaurant(*r)
			saved.UpdatedAt = s.now()
			for j := range saved.Items {
				if saved.Items[j].ID == 0 {
					saved.Items[j].ID = d.nextID()
					saved.Items[j].RestaurantID = r.ID
					saved.Items[j].CreatedAt = saved.UpdatedAt
				}
			}
			d.Restaurants[i] = saved
			*r = copyRestaurant(saved)
			return nil
		}
		return ErrNotFound
	})
}

func (s *MemoryStore) VerifyRestaurant(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(d *snapshot) error {
		for i := range d.Restaurants {
			if d.Restaurants[i].ID == id {
				verified := copyRestaurant(d.Restaurants[i])
				verified.IsVerified = true
				verified.UpdatedAt = s.now()
				d.Restaurants[i] = verified
				return nil
			}
		}
		return ErrNotFound
	})
}

func (s *MemoryStore) DeleteRestaurant(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(d *snapshot) error {
		for i, r := range d.Restaurants {
			if r.ID == id {
				d.Restaurants = append(d.Restaurants[:i], d.Restaurants[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

// ── Acceptors ───────────────────────────────────────────────────────────────

func (s *MemoryStore) CreateAcceptor(_ context.Context, a *models.Acceptor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(d *snapshot) error {
		now := s.now()
		a.ID = d.nextID()
		a.CreatedAt, a.UpdatedAt = now, now
		if a.Membership == "" {
			a.Membership = models.MembershipBasic
		}
		d.Acceptors = append(d.Acceptors, *a)
		return nil
	})
}

func (s *MemoryStore) ListAcceptors(_ context.Context) ([]models.Acceptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Acceptor, 0, len(s.data.Acceptors))
	for i := len(s.data.Acceptors) - 1; i >= 0; i-- {
		out = append(out, s.data.Acceptors[i])
	}
	return out, nil
}

func (s *MemoryStore) FindVerifiedAcceptors(_ context.Context) ([]models.Acceptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Acceptor
	for _, a := range s.data.Acceptors {
		if a.IsVerified {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *MemoryStore) FindAcceptorByID(_ context.Context, id uint) (*models.Acceptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.data.Acceptors {
		if a.ID == id {
			c := a
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) SaveAcceptor(_ context.Context, a *models.Acceptor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(d *snapshot) error {
		for i := range d.Acceptors {
			if d.Acceptors[i].ID == a.ID {
				saved := *a
				saved.UpdatedAt = s.now()
				d.Acceptors[i] = saved
				*a = saved
				return nil
			}
		}
		return ErrNotFound
	})
}

func (s *MemoryStore) DeleteAcceptor(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(d *snapshot) error {
		for i, a := range d.Acceptors {
			if a.ID == id {
				d.Acceptors = append(d.Acceptors[:i], d.Acceptors[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

// ── Delivery people ─────────────────────────────────────────────────────────

func (s *MemoryStore) CreateDelivery(_ context.Context, p *models.DeliveryPerson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(d *snapshot) error {
		now := s.now()
		p.ID = d.nextID()
		p.CreatedAt, p.UpdatedAt = now, now
		if p.Status == "" {
			p.Status = models.DeliveryAvailable
		}
		d.DeliveryPersons = append(d.DeliveryPersons, *p)
		return nil
	})
}

func (s *MemoryStore) ListDeliveries(_ context.Context) ([]models.DeliveryPerson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DeliveryPerson, 0, len(s.data.DeliveryPersons))
	for i := len(s.data.DeliveryPersons) - 1; i >= 0; i-- {
		out = append(out, s.data.DeliveryPersons[i])
	}
	return out, nil
}

func (s *MemoryStore) FindDeliveryByID(_ context.Context, id uint) (*models.DeliveryPerson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.DeliveryPersons {
		if p.ID == id {
			c := p
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) VerifyDelivery(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(d *snapshot) error {
		for i := range d.DeliveryPersons {
			if d.DeliveryPersons[i].ID == id {
				d.DeliveryPersons[i].IsVerified = true
				d.DeliveryPersons[i].UpdatedAt = s.now()
				return nil
			}
		}
		return ErrNotFound
	})
}

func (s *MemoryStore) DeleteDelivery(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(d *snapshot) error {
		for i, p := range d.DeliveryPersons {
			if p.ID == id {
				d.DeliveryPersons = append(d.DeliveryPersons[:i], d.DeliveryPersons[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

// ── Activity log ────────────────────────────────────────────────────────────

func (s *MemoryStore) AppendActivity(_ context.Context, entry *models.ActivityLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(d *snapshot) error {
		entry.ID = d.nextID()
		if entry.Timestamp.IsZero() {
			entry.Timestamp = s.now()
		}
		d.ActivityLogs = append(d.ActivityLogs, *entry)
		return nil
	})
}

func (s *MemoryStore) ListActivities(_ context.Context) ([]models.ActivityLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]models.ActivityLog(nil), s.data.ActivityLogs...)
	// stable keeps insertion order reversed for equal timestamps
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID > out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *MemoryStore) DeleteActivity(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(d *snapshot) error {
		for i, l := range d.ActivityLogs {
			if l.ID == id {
				d.ActivityLogs = append(d.ActivityLogs[:i], d.ActivityLogs[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

func (s *MemoryStore) Stats(_ context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var st Stats
	for _, r := range s.data.Restaurants {
		st.Restaurants++
		st.FoodItems += int64(len(r.Items))
		if r.IsVerified {
			st.VerifiedRestaurants++
		}
	}
	for _, a := range s.data.Acceptors {
		st.Acceptors++
		if a.IsVerified {
			st.ResolvedAcceptors++
		}
	}
	st.Deliveries = int64(len(s.data.DeliveryPersons))
	st.Activities = int64(len(s.data.ActivityLogs))
	return st, nil
}
