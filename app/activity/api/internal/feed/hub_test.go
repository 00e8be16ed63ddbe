package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mergington-activities/common/messaging"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

func TestMain(m *testing.M) {
	logx.Disable()
	m.Run()
}

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	h := NewHub(8)
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = h.ServeWS(w, r)
	}))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return h, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestBroadcastReachesSubscribers(t *testing.T) {
	h, srv := startHub(t)
	first := dial(t, srv)
	second := dial(t, srv)

	require.Eventually(t, func() bool { return h.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	h.Broadcast(messaging.RosterEvent{
		Type:         messaging.TopicActivityMemberJoined,
		Activity:     "Chess Club",
		Email:        "new@mergington.edu",
		Participants: 3,
	})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var event messaging.RosterEvent
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, "Chess Club", event.Activity)
		assert.Equal(t, "new@mergington.edu", event.Email)
		assert.Equal(t, 3, event.Participants)
	}
}

func TestDisconnectUnregisters(t *testing.T) {
	h, srv := startHub(t)
	conn := dial(t, srv)
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return h.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestShutdownClosesSubscribers(t *testing.T) {
	h := NewHub(0)
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = h.ServeWS(w, r)
	}))
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
	assert.Equal(t, 0, h.ClientCount())
}

func TestBroadcastDoesNotBlock(t *testing.T) {
	// Hub 未运行，队列写满后直接丢弃
	h := NewHub(1)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			h.Broadcast(messaging.RosterEvent{Activity: "Gym Class"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked")
	}
	assert.Len(t, h.broadcast, 1)
}

func TestNilHub(t *testing.T) {
	var h *Hub
	h.Broadcast(messaging.RosterEvent{})
	assert.Equal(t, 0, h.ClientCount())
}
