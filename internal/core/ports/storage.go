package ports

import "context"

// KeyValueStore is the durable client-side storage behind the session and
// preference stores. Storage is assumed to always be available; adapters
// degrade to absent values rather than returning errors.
type KeyValueStore interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a value. The write is immediately visible to any
	// subsequent Get from any component.
	Set(ctx context.Context, key, value string)

	// Delete removes the given keys in a single atomic operation. No
	// reader may observe a state where only some of the keys are gone.
	Delete(ctx context.Context, keys ...string)
}
