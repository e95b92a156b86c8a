package sqlite

// NewMemoryStore creates an in-memory candidate store for testing.
// Caller must close the store when done.
func NewMemoryStore() (*Store, error) {
	return open(":memory:")
}
