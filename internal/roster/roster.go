// Package roster owns the mutable working list of shots and its lock set,
// with lock-aware shuffle, re-roll, and clear operations.
package roster

import (
	"math/rand/v2"

	"github.com/blahpunk/shotlist/internal/model"
)

// Roster is the ordered working set of shots plus the set of locked row
// ids. Operations mutate the roster in place; callers persist the result
// as one unit.
type Roster struct {
	Locks map[string]struct{}
	Rows  []model.Shot
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{Locks: make(map[string]struct{})}
}

// FromState rebuilds a roster from persisted rows and locks.
func FromState(rows []model.Shot, locks map[string]struct{}) *Roster {
	if locks == nil {
		locks = make(map[string]struct{})
	}
	return &Roster{Rows: rows, Locks: locks}
}

// Len reports the number of rows.
func (r *Roster) Len() int {
	return len(r.Rows)
}

// Locked reports whether the row id is locked.
func (r *Roster) Locked(id string) bool {
	_, ok := r.Locks[id]
	return ok
}

// Replace discards the current state entirely: the rows become the new
// working list and every lock is dropped.
func (r *Roster) Replace(rows []model.Shot) {
	r.Rows = rows
	r.Locks = make(map[string]struct{})
}

// ToggleLock flips the lock on a row id. Unknown ids toggle like any
// other; locks are permissive, not validated against current rows.
func (r *Roster) ToggleLock(id string) {
	if _, ok := r.Locks[id]; ok {
		delete(r.Locks, id)
		return
	}
	r.Locks[id] = struct{}{}
}

// Reroll shuffles the unlocked rows among themselves, reinserting them
// into exactly the index positions they vacated. Locked rows keep their
// absolute positions and are never replaced.
func (r *Roster) Reroll() {
	var unlockedIdx []int
	for i := range r.Rows {
		if !r.Locked(r.Rows[i].ID) {
			unlockedIdx = append(unlockedIdx, i)
		}
	}

	unlocked := make([]model.Shot, len(unlockedIdx))
	for i, idx := range unlockedIdx {
		unlocked[i] = r.Rows[idx]
	}
	rand.Shuffle(len(unlocked), func(i, j int) {
		unlocked[i], unlocked[j] = unlocked[j], unlocked[i]
	})
	for i, idx := range unlockedIdx {
		r.Rows[idx] = unlocked[i]
	}
}

// ClearUnlocked permanently drops every unlocked row, preserving the
// relative order of the survivors. The lock set is untouched, so all
// surviving rows remain locked.
func (r *Roster) ClearUnlocked() {
	kept := r.Rows[:0]
	for _, row := range r.Rows {
		if r.Locked(row.ID) {
			kept = append(kept, row)
		}
	}
	r.Rows = kept
}
