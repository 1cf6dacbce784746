package domain

import "context"

// PropertyCatalog defines read access to the fixed listing catalog.
type PropertyCatalog interface {
	All() []Property
	ByID(id string) (*Property, bool)
}

// ProfileStore defines the interface for user profile storage.
// Profiles are created with defaults on first reference.
type ProfileStore interface {
	GetOrCreate(userID string) *UserProfile
	Get(userID string) (*UserProfile, bool)
}

// ChatBackend defines the interface for the external AI conversation
// service. Implementations own all network I/O and authentication for
// that call; callers must tolerate the backend being absent entirely.
type ChatBackend interface {
	Reply(ctx context.Context, bundle *ChatContext) (string, error)
}
