package roster

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blahpunk/shotlist/internal/model"
)

func testRows(n int) []model.Shot {
	rows := make([]model.Shot, n)
	for i := range rows {
		rows[i] = model.Shot{
			ID:   fmt.Sprintf("shot_%d", i),
			Type: model.ShotProductStillFlat,
		}
	}
	return rows
}

func sortedIDs(rows []model.Shot) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	sort.Strings(ids)
	return ids
}

func TestToggleLock(t *testing.T) {
	r := FromState(testRows(3), nil)

	assert.False(t, r.Locked("shot_1"))
	r.ToggleLock("shot_1")
	assert.True(t, r.Locked("shot_1"))
	r.ToggleLock("shot_1")
	assert.False(t, r.Locked("shot_1"))
}

func TestToggleLockUnknownIDIsPermissive(t *testing.T) {
	r := FromState(testRows(2), nil)

	// Stale ids may be toggled transiently; no validation against rows.
	r.ToggleLock("gone")
	assert.True(t, r.Locked("gone"))
}

func TestReplaceResetsLocks(t *testing.T) {
	r := FromState(testRows(3), nil)
	r.ToggleLock("shot_0")
	r.ToggleLock("shot_2")
	require.Len(t, r.Locks, 2)

	fresh := testRows(5)
	r.Replace(fresh)

	assert.Len(t, r.Rows, 5)
	assert.Empty(t, r.Locks, "generate resets the lock set unconditionally")
}

func TestRerollPreservesLockedPositionsAndIDMultiset(t *testing.T) {
	rows := testRows(12)
	r := FromState(rows, nil)
	r.ToggleLock("shot_0")
	r.ToggleLock("shot_5")
	r.ToggleLock("shot_11")

	before := sortedIDs(r.Rows)

	// Run several times; the invariants hold for every permutation.
	for i := 0; i < 20; i++ {
		r.Reroll()

		assert.Equal(t, "shot_0", r.Rows[0].ID)
		assert.Equal(t, "shot_5", r.Rows[5].ID)
		assert.Equal(t, "shot_11", r.Rows[11].ID)
		assert.Equal(t, before, sortedIDs(r.Rows))
	}
}

func TestRerollEmptyRosterIsNoOp(t *testing.T) {
	r := New()
	r.Reroll()
	assert.Empty(t, r.Rows)
}

func TestRerollAllLockedIsNoOp(t *testing.T) {
	r := FromState(testRows(4), nil)
	for _, row := range r.Rows {
		r.ToggleLock(row.ID)
	}

	wantOrder := make([]string, len(r.Rows))
	for i, row := range r.Rows {
		wantOrder[i] = row.ID
	}

	r.Reroll()

	for i, row := range r.Rows {
		assert.Equal(t, wantOrder[i], row.ID)
	}
}

func TestClearUnlocked(t *testing.T) {
	r := FromState(testRows(6), nil)
	r.ToggleLock("shot_1")
	r.ToggleLock("shot_4")

	r.ClearUnlocked()

	require.Len(t, r.Rows, 2)
	assert.Equal(t, "shot_1", r.Rows[0].ID)
	assert.Equal(t, "shot_4", r.Rows[1].ID)

	// Lock set is untouched; all survivors remain locked.
	assert.Len(t, r.Locks, 2)
	assert.True(t, r.Locked("shot_1"))
	assert.True(t, r.Locked("shot_4"))
}

func TestClearUnlockedWithNoLocksEmptiesRoster(t *testing.T) {
	r := FromState(testRows(3), nil)
	r.ClearUnlocked()
	assert.Empty(t, r.Rows)
}

func TestClearUnlockedEmptyRosterIsNoOp(t *testing.T) {
	r := New()
	r.ClearUnlocked()
	assert.Empty(t, r.Rows)
}
