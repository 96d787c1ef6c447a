package ports

import (
	"context"

	"muzac-backend/domain/family"
	"muzac-backend/domain/preferences"
)

// FamilyRepository provides access to the family member store.
type FamilyRepository interface {
	// Create persists a member unconditionally; no duplicate or referential
	// integrity checks are performed.
	Create(ctx context.Context, member family.Member) error

	// GetByID returns a member or a not-found error.
	GetByID(ctx context.Context, id string) (family.Member, error)

	// GetAll returns every member, unordered. Full scan; the data volume is a
	// single family.
	GetAll(ctx context.Context) ([]family.Member, error)

	// GetByMom returns members whose mom reference equals parentID.
	GetByMom(ctx context.Context, parentID string) ([]family.Member, error)

	// GetByDad returns members whose dad reference equals parentID.
	GetByDad(ctx context.Context, parentID string) ([]family.Member, error)
}

// PreferenceRepository stores the single per-user preference row.
type PreferenceRepository interface {
	// Get returns nil without error when the user has no stored preferences.
	Get(ctx context.Context, userID string) (*preferences.UserPreferences, error)

	// Put overwrites the user's row. Last write wins.
	Put(ctx context.Context, prefs preferences.UserPreferences) error
}
