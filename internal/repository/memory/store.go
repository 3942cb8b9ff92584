package memory

import "sync"

// store is the shared locking base for the in-memory repositories. The
// calculation core itself is stateless; this layer only exists so the
// API can serve the dashboard without standing up a database.
type store struct {
	mu sync.RWMutex
}

func newStore() *store {
	return &store{}
}

// paginate slices a filtered result set for a 1-based page.
func paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneIntPtr(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
