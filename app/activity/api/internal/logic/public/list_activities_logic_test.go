package public

import (
	"context"
	"testing"

	"mergington-activities/app/activity/api/internal/config"
	"mergington-activities/app/activity/api/internal/svc"
	"mergington-activities/app/activity/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

func TestMain(m *testing.M) {
	logx.Disable()
	m.Run()
}

func TestListActivities(t *testing.T) {
	svcCtx := svc.NewServiceContext(config.Config{})
	defer svcCtx.Close()

	resp, err := NewListActivitiesLogic(context.Background(), svcCtx).ListActivities()
	require.NoError(t, err)
	require.Equal(t, len(model.DefaultSeeds()), resp.Len())

	chess, ok := resp.Get("Chess Club")
	require.True(t, ok)
	assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess.Schedule)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
	assert.Equal(t, []string{"Chess Club", "Programming Class", "Gym Class"}, resp.Names()[:3])
}

func TestListActivitiesReturnsSnapshot(t *testing.T) {
	svcCtx := svc.NewServiceContext(config.Config{})
	defer svcCtx.Close()
	l := NewListActivitiesLogic(context.Background(), svcCtx)

	first, err := l.ListActivities()
	require.NoError(t, err)
	info, _ := first.Get("Gym Class")
	info.Participants[0] = "mutated@mergington.edu"

	second, err := l.ListActivities()
	require.NoError(t, err)
	gym, _ := second.Get("Gym Class")
	assert.Equal(t, "john@mergington.edu", gym.Participants[0])
}
