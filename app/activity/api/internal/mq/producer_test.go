package mq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"mergington-activities/app/activity/model"
	"mergington-activities/common/ctxdata"
	"mergington-activities/common/messaging"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProducer(t *testing.T) (*Producer, *gochannel.GoChannel) {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	return NewProducer(messaging.NewClientWithPublisher(pubSub, messaging.DefaultConfig())), pubSub
}

func receive(t *testing.T, ch <-chan *message.Message) *message.Message {
	t.Helper()
	select {
	case msg := <-ch:
		msg.Ack()
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
		return nil
	}
}

func TestNilProducerIsSafe(t *testing.T) {
	var p *Producer
	assert.Nil(t, NewProducer(nil))
	p.PublishMemberJoined(context.Background(), model.ActivityRecord{Name: "Chess Club"}, "a@x")
	p.PublishMemberLeft(context.Background(), model.ActivityRecord{Name: "Chess Club"}, "a@x")
	assert.NoError(t, p.Close())
}

func TestPublishMemberJoined(t *testing.T) {
	p, pubSub := newTestProducer(t)
	messages, err := pubSub.Subscribe(context.Background(), messaging.TopicActivityMemberJoined)
	require.NoError(t, err)

	record := model.ActivityRecord{
		Name:            "Chess Club",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu", "new@mergington.edu"},
	}
	ctx := ctxdata.WithRequestID(context.Background(), "req-join")
	p.PublishMemberJoined(ctx, record, "new@mergington.edu")

	msg := receive(t, messages)
	var event messaging.RosterEvent
	require.NoError(t, json.Unmarshal(msg.Payload, &event))
	assert.Equal(t, messaging.TopicActivityMemberJoined, event.Type)
	assert.Equal(t, "Chess Club", event.Activity)
	assert.Equal(t, "new@mergington.edu", event.Email)
	assert.Equal(t, 3, event.Participants)
	assert.Equal(t, 12, event.MaxParticipants)
	assert.Equal(t, "req-join", msg.Metadata.Get(messaging.MetadataRequestID))

	require.NoError(t, p.Close())
}

func TestPublishMemberLeft(t *testing.T) {
	p, pubSub := newTestProducer(t)
	messages, err := pubSub.Subscribe(context.Background(), messaging.TopicActivityMemberLeft)
	require.NoError(t, err)

	// 请求 ctx 提前取消不影响异步发布
	ctx, cancel := context.WithCancel(context.Background())
	p.PublishMemberLeft(ctx, model.ActivityRecord{Name: "Gym Class", Participants: []string{"olivia@mergington.edu"}}, "john@mergington.edu")
	cancel()

	msg := receive(t, messages)
	var event messaging.RosterEvent
	require.NoError(t, json.Unmarshal(msg.Payload, &event))
	assert.Equal(t, messaging.TopicActivityMemberLeft, event.Type)
	assert.Equal(t, "john@mergington.edu", event.Email)
	assert.Equal(t, 1, event.Participants)
}
