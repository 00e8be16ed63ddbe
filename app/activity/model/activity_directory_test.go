package model

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestDirectory(t *testing.T, opts ...DirectoryOption) *ActivityDirectory {
	t.Helper()
	d, err := NewActivityDirectory(DefaultSeeds(), opts...)
	require.NoError(t, err)
	return d
}

func TestListReturnsEverySeededActivity(t *testing.T) {
	d := newTestDirectory(t)

	records := d.List(context.Background())
	require.Len(t, records, len(DefaultSeeds()))

	byName := make(map[string]ActivityRecord, len(records))
	for _, r := range records {
		byName[r.Name] = r
	}
	for _, name := range []string{"Chess Club", "Programming Class", "Gym Class"} {
		r, ok := byName[name]
		require.True(t, ok, name)
		assert.NotEmpty(t, r.Description)
		assert.NotEmpty(t, r.Schedule)
		assert.Positive(t, r.MaxParticipants)
		assert.NotNil(t, r.Participants)
	}
	assert.Equal(t, "Chess Club", records[0].Name)
}

func TestSignupAppendsOnce(t *testing.T) {
	ctx := context.Background()
	d := newTestDirectory(t)

	record, err := d.Signup(ctx, "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"michael@mergington.edu",
		"daniel@mergington.edu",
		"newstudent@mergington.edu",
	}, record.Participants)

	_, err = d.Signup(ctx, "Chess Club", "newstudent@mergington.edu")
	assert.ErrorIs(t, err, ErrAlreadySignedUp)

	got, err := d.Get(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Len(t, got.Participants, 3)
}

func TestSignupExistingParticipantFails(t *testing.T) {
	d := newTestDirectory(t)

	_, err := d.Signup(context.Background(), "Chess Club", "michael@mergington.edu")
	assert.ErrorIs(t, err, ErrAlreadySignedUp)

	got, _ := d.Get(context.Background(), "Chess Club")
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, got.Participants)
}

func TestUnregister(t *testing.T) {
	ctx := context.Background()
	d := newTestDirectory(t)

	record, err := d.Unregister(ctx, "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, []string{"daniel@mergington.edu"}, record.Participants)

	_, err = d.Unregister(ctx, "Chess Club", "michael@mergington.edu")
	assert.ErrorIs(t, err, ErrNotSignedUp)

	_, err = d.Unregister(ctx, "Chess Club", "notregistered@mergington.edu")
	assert.ErrorIs(t, err, ErrNotSignedUp)
}

func TestUnknownActivity(t *testing.T) {
	ctx := context.Background()
	d := newTestDirectory(t)

	for _, email := range []string{"student@mergington.edu", "michael@mergington.edu", ""} {
		_, err := d.Signup(ctx, "Nonexistent Club", email)
		assert.ErrorIs(t, err, ErrActivityNotFound)
		_, err = d.Unregister(ctx, "Nonexistent Club", email)
		assert.ErrorIs(t, err, ErrActivityNotFound)
	}
	_, err := d.Get(ctx, "Nonexistent Club")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestCapacityIsAdvisoryByDefault(t *testing.T) {
	ctx := context.Background()
	d, err := NewActivityDirectory([]ActivitySeed{{Name: "Tiny", MaxParticipants: 1, Participants: []string{"a@x"}}})
	require.NoError(t, err)

	record, err := d.Signup(ctx, "Tiny", "b@x")
	require.NoError(t, err)
	assert.Equal(t, -1, record.SpotsLeft())
}

func TestCapacityEnforcement(t *testing.T) {
	ctx := context.Background()
	d, err := NewActivityDirectory(
		[]ActivitySeed{{Name: "Tiny", MaxParticipants: 1}},
		WithCapacityEnforcement(true),
	)
	require.NoError(t, err)

	_, err = d.Signup(ctx, "Tiny", "a@x")
	require.NoError(t, err)
	_, err = d.Signup(ctx, "Tiny", "b@x")
	assert.ErrorIs(t, err, ErrActivityFull)
	// 重复报名优先于名额判断
	_, err = d.Signup(ctx, "Tiny", "a@x")
	assert.ErrorIs(t, err, ErrAlreadySignedUp)
}

func TestSnapshotsAreIsolated(t *testing.T) {
	ctx := context.Background()
	d := newTestDirectory(t)

	records := d.List(ctx)
	records[0].Participants[0] = "mutated@x"
	records[0].Participants = append(records[0].Participants, "extra@x")

	got, err := d.Get(ctx, records[0].Name)
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, got.Participants)

	names := d.Names()
	names[0] = "changed"
	assert.Equal(t, "Chess Club", d.Names()[0])
}

func TestConcurrentSignupsDistinctEmails(t *testing.T) {
	ctx := context.Background()
	d := newTestDirectory(t)

	const n = 64
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := d.Signup(ctx, "Gym Class", fmt.Sprintf("student%d@mergington.edu", i))
			return err
		})
	}
	require.NoError(t, g.Wait())

	got, err := d.Get(ctx, "Gym Class")
	require.NoError(t, err)
	assert.Len(t, got.Participants, n+2)
}

func TestConcurrentSignupsSameEmail(t *testing.T) {
	ctx := context.Background()
	d := newTestDirectory(t)

	const n = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := d.Signup(ctx, "Math Club", "same@mergington.edu"); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, ErrAlreadySignedUp)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	got, _ := d.Get(ctx, "Math Club")
	assert.Len(t, got.Participants, 3)
}

func TestNewActivityDirectoryRejectsBadSeeds(t *testing.T) {
	tests := []struct {
		name  string
		seeds []ActivitySeed
	}{
		{"empty name", []ActivitySeed{{Name: "  "}}},
		{"duplicate activity", []ActivitySeed{{Name: "A"}, {Name: "A"}}},
		{"duplicate participant", []ActivitySeed{{Name: "A", Participants: []string{"x@y", "x@y"}}}},
		{"negative capacity", []ActivitySeed{{Name: "A", MaxParticipants: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewActivityDirectory(tt.seeds)
			assert.Error(t, err)
		})
	}
}

func TestSeedsAreCopied(t *testing.T) {
	seeds := []ActivitySeed{{Name: "A", Participants: []string{"x@y"}}}
	d, err := NewActivityDirectory(seeds)
	require.NoError(t, err)

	seeds[0].Participants[0] = "changed@y"
	got, _ := d.Get(context.Background(), "A")
	assert.Equal(t, []string{"x@y"}, got.Participants)
}
