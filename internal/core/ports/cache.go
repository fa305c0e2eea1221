package ports

import "go.trai.ch/pantry/internal/core/domain"

// CacheStore is the local key-addressed snapshot store the mutation engine
// edits optimistically. List entries and detail entries share one keyspace;
// a key's kind is encoded in the key itself (see domain.Key).
//
// Reads and writes are synchronous; Refetch and Invalidate schedule
// background work and return immediately. Implementations must be safe for
// concurrent use and follow last-write-wins semantics.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CacheStore interface {
	// List returns a copy of the list entry at key, if present.
	List(key domain.Key) ([]domain.Recipe, bool)

	// SetList replaces the list entry at key.
	SetList(key domain.Key, items []domain.Recipe)

	// MutateList applies fn to the list entry at key. fn receives a copy;
	// its return value becomes the new entry. A missing entry is left
	// missing.
	MutateList(key domain.Key, fn func([]domain.Recipe) []domain.Recipe)

	// Detail returns the detail entry at key, if present.
	Detail(key domain.Key) (domain.Recipe, bool)

	// SetDetail replaces (or seeds) the detail entry at key.
	SetDetail(key domain.Key, r domain.Recipe)

	// Remove drops the entry at key entirely.
	Remove(key domain.Key)

	// CategoryKeys lists the per-category keys currently cached.
	CategoryKeys() []domain.Key

	// CancelInFlight aborts any background fetch for key so a stale
	// response cannot overwrite a newer optimistic write.
	CancelInFlight(key domain.Key)

	// Invalidate marks the entry at key stale, dropping its value.
	Invalidate(key domain.Key)

	// Refetch schedules a background fetch of key from the source of
	// truth. It never blocks; fetch failures are logged, not surfaced.
	Refetch(key domain.Key)

	// Subscribe registers fn to run after the entry at key changes
	// content. The returned func cancels the subscription.
	Subscribe(key domain.Key, fn func()) (cancel func())
}
