package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/ecocart/backend/internal/testhelpers"
)

func TestListActivities_NewestTen(t *testing.T) {
	ctx := context.Background()
	db := testhelpers.SetupSQLiteDB(t)
	alice := testhelpers.CreateUser(t, db, "alice", "alice@example.com", "pw")
	bob := testhelpers.CreateUser(t, db, "bob", "bob@example.com", "pw")

	svc := NewActivityService(db)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	for i := 1; i <= 15; i++ {
		require.NoError(t, svc.AddActivity(ctx, alice.ID, "view", fmt.Sprintf("event %d", i)))
	}
	require.NoError(t, svc.AddActivity(ctx, bob.ID, "login", ""))

	activities, err := svc.ListActivities(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, activities, RecentActivityLimit)

	assert.Equal(t, "event 15", activities[0].Description)
	assert.Equal(t, "event 6", activities[9].Description)
	for i := 1; i < len(activities); i++ {
		assert.True(t, activities[i-1].Timestamp.After(activities[i].Timestamp))
	}

	others, err := svc.ListActivities(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, "login", others[0].ActivityType)
}

func TestListActivities_SameTimestampFallsBackToID(t *testing.T) {
	ctx := context.Background()
	db := testhelpers.SetupSQLiteDB(t)
	alice := testhelpers.CreateUser(t, db, "alice", "alice@example.com", "pw")

	svc := NewActivityService(db)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	require.NoError(t, svc.AddActivity(ctx, alice.ID, "view", "first"))
	require.NoError(t, svc.AddActivity(ctx, alice.ID, "view", "second"))

	activities, err := svc.ListActivities(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "second", activities[0].Description)
}

func TestAddActivity_RequiresType(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	alice := testhelpers.CreateUser(t, db, "alice", "alice@example.com", "pw")

	err := NewActivityService(db).AddActivity(context.Background(), alice.ID, "  ", "desc")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Activity type is required", Message(err))
}
