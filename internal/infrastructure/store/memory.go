package store

import (
	"sync"
	"time"

	"github.com/jiningying/property-chat-agent/internal/domain"
)

// MemoryStore is a thread-safe in-memory profile store. Profiles live
// for the lifetime of the process and reset on restart.
type MemoryStore struct {
	profiles map[string]*domain.UserProfile
	mutex    sync.RWMutex
}

// NewMemoryStore creates an empty in-memory profile store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]*domain.UserProfile),
	}
}

// GetOrCreate returns the profile for the user, creating it with
// default preferences on first reference. Creation is idempotent.
func (s *MemoryStore) GetOrCreate(userID string) *domain.UserProfile {
	s.mutex.RLock()
	profile, exists := s.profiles[userID]
	s.mutex.RUnlock()
	if exists {
		return profile
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if profile, exists := s.profiles[userID]; exists {
		return profile
	}

	profile = defaultProfile(userID)
	s.profiles[userID] = profile
	return profile
}

// Get returns the profile for the user without creating one.
func (s *MemoryStore) Get(userID string) (*domain.UserProfile, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	profile, exists := s.profiles[userID]
	return profile, exists
}

// Size returns the number of stored profiles.
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.profiles)
}

// defaultProfile is the starting point for every new user: a
// first-time buyer looking at inner-Melbourne apartments.
func defaultProfile(userID string) *domain.UserProfile {
	return &domain.UserProfile{
		UserID:             userID,
		Name:               "Property Seeker",
		UserType:           domain.UserFirstTimeBuyer,
		BudgetMin:          500000,
		BudgetMax:          1000000,
		PreferredSuburbs:   []string{"Melbourne", "Richmond", "Fitzroy"},
		PropertyTypes:      []domain.PropertyType{domain.TypeApartment, domain.TypeTownhouse},
		MustHaveFeatures:   []string{"Parking", "Modern kitchen"},
		NiceToHaveFeatures: []string{"Balcony", "Gym", "Pool"},
		DealBreakers:       []string{"Main road", "No parking"},
		SearchHistory:      []string{},
		SavedProperties:    []string{},
		LastInteraction:    time.Now(),
	}
}
