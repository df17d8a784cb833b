package web

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"pattern_lab/internal/patterns/observer"
)

func dialEventStream(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/events"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	return conn
}

func waitForWildcardCount(t *testing.T, bus *observer.EventBus, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if bus.SubscriberCount("*") == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("wildcard subscriber count = %d, want %d",
		bus.SubscriberCount("*"), want)
}

func TestEventStreamForwardsBusEvents(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn := dialEventStream(t, ts)
	defer conn.Close()
	waitForWildcardCount(t, srv.bus, 1)

	srv.bus.Publish("orders.placed", map[string]any{"order_id": "ord-1"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev observer.Event
	require.NoError(t, conn.ReadJSON(&ev))
	require.Equal(t, "orders.placed", ev.Topic)
	require.False(t, ev.PublishedAt.IsZero())
}

func TestEventStreamUnsubscribesOnDisconnect(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	for i := 0; i < 5; i++ {
		conn := dialEventStream(t, ts)
		waitForWildcardCount(t, srv.bus, 1)
		require.NoError(t, conn.Close())
		waitForWildcardCount(t, srv.bus, 0)
	}
}
