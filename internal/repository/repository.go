// Package repository implements the in-memory store backing the roster
// service.
package repository

import (
	"sync"

	"github.com/mergington-high/activities-api/internal/domain"
)

// ActivityRepository holds the process-wide roster. A single RWMutex guards
// every access so each signup or unregistration is applied as one atomic
// check-then-act unit, keeping the at-most-one-occurrence-per-email invariant
// under concurrent requests.
type ActivityRepository struct {
	mu     sync.RWMutex
	roster *domain.Roster
}

// NewActivityRepository creates a repository seeded with the school's fixed
// set of activities.
func NewActivityRepository() *ActivityRepository {
	r := &ActivityRepository{}
	r.Reset()
	return r
}

// Reset restores the roster to its seed state, discarding every signup and
// unregistration applied since startup or the previous reset. Tests rely on
// it for isolation.
func (r *ActivityRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roster = seedRoster()
}

// List returns a point-in-time deep copy of the roster. Callers may read and
// mutate the copy freely after the store lock is released.
func (r *ActivityRepository) List() *domain.Roster {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.roster.Clone()
}

// SignUp adds email to the named activity's participant list. Returns
// domain.ErrActivityNotFound or domain.ErrAlreadySignedUp on precondition
// failures; the roster is unchanged in either case.
func (r *ActivityRepository) SignUp(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.roster.Get(activityName)
	if !ok {
		return domain.ErrActivityNotFound
	}
	return activity.SignUp(email)
}

// Unregister removes email from the named activity's participant list.
// Returns domain.ErrActivityNotFound or domain.ErrNotSignedUp on precondition
// failures; the roster is unchanged in either case.
func (r *ActivityRepository) Unregister(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.roster.Get(activityName)
	if !ok {
		return domain.ErrActivityNotFound
	}
	return activity.Unregister(email)
}
