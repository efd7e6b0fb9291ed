package services

import "sync"

// Per-user serialization boundary. Join, quit, daily completion and stat
// writes for the same user must not interleave; a duplicate double-submit of
// "complete today" has to lose cleanly instead of inserting twice. Locks are
// keyed by user id so cross-user operations stay fully independent.
type userLockTable struct {
	mu    sync.Mutex
	locks map[string]*userLockEntry
}

type userLockEntry struct {
	mu   sync.Mutex
	refs int
}

var userLocks = &userLockTable{locks: make(map[string]*userLockEntry)}

// lockUser acquires the lock for userID and returns the unlock function.
// Entries are reference counted and removed when the last holder releases,
// so the table does not grow with the user population.
func lockUser(userID string) func() {
	userLocks.mu.Lock()
	entry, ok := userLocks.locks[userID]
	if !ok {
		entry = &userLockEntry{}
		userLocks.locks[userID] = entry
	}
	entry.refs++
	userLocks.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		userLocks.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(userLocks.locks, userID)
		}
		userLocks.mu.Unlock()
	}
}
