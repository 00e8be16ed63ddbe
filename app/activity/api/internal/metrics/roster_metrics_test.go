package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRosterOp(t *testing.T) {
	before := testutil.ToFloat64(rosterOperations.WithLabelValues(OpSignup, ResultConflict))
	ObserveRosterOp(OpSignup, ResultConflict)
	ObserveRosterOp(OpSignup, ResultConflict)

	assert.Equal(t, before+2, testutil.ToFloat64(rosterOperations.WithLabelValues(OpSignup, ResultConflict)))
}

func TestSetParticipants(t *testing.T) {
	SetParticipants("Chess Club", 3)
	assert.Equal(t, float64(3), testutil.ToFloat64(activityParticipants.WithLabelValues("Chess Club")))

	SetParticipants("Chess Club", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(activityParticipants.WithLabelValues("Chess Club")))
}

func TestObservePublish(t *testing.T) {
	const topic = "activity.member.joined"
	okBefore := testutil.ToFloat64(eventPublishTotal.WithLabelValues(topic, ResultSuccess))
	errBefore := testutil.ToFloat64(eventPublishTotal.WithLabelValues(topic, ResultError))

	ObservePublish(topic, 5*time.Millisecond, nil)
	ObservePublish(topic, time.Second, errors.New("redis down"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(eventPublishTotal.WithLabelValues(topic, ResultSuccess)))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(eventPublishTotal.WithLabelValues(topic, ResultError)))
}
