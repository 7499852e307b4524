package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bizops/internal/sessionsync"
)

// newSessionServer mounts the relay for callers picked by the "as" query
// parameter; without one the tab connects as user-1.
func newSessionServer(t *testing.T, hub *sessionsync.Hub, origins []string) string {
	t.Helper()
	r := gin.New()
	ctl := NewSessionController(hub, origins, zap.NewNop())
	r.GET("/ws", func(c *gin.Context) {
		id := c.DefaultQuery("as", "user-1")
		withCaller(id)(c)
	}, ctl.Connect)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func waitForSubscribers(t *testing.T, hub *sessionsync.Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Len() < n && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	require.Equal(t, n, hub.Len())
}

func TestSessionController_RelaysBetweenTabs(t *testing.T) {
	hub := sessionsync.NewHub(8)
	url := newSessionServer(t, hub, nil)

	a, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer a.Close()
	b, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer b.Close()
	waitForSubscribers(t, hub, 2)

	sent := sessionsync.StorageEvent{Key: sessionsync.ThemeKey, NewValue: sessionsync.ThemeDark}
	require.NoError(t, a.WriteJSON(sent))

	_ = b.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got sessionsync.StorageEvent
	require.NoError(t, b.ReadJSON(&got))
	assert.Equal(t, sent, got)

	// the sender does not hear its own event
	_ = a.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err = a.ReadMessage()
	assert.Error(t, err)
}

func TestSessionController_ClosedTabUnsubscribes(t *testing.T) {
	hub := sessionsync.NewHub(8)
	url := newSessionServer(t, hub, nil)

	a, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	waitForSubscribers(t, hub, 1)

	require.NoError(t, a.Close())
	waitForSubscribers(t, hub, 0)
}

func TestSessionController_RejectsForeignOrigin(t *testing.T) {
	hub := sessionsync.NewHub(8)
	url := newSessionServer(t, hub, []string{"https://app.example.com"})

	header := http.Header{"Origin": []string{"https://evil.example.com"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header.Set("Origin", "https://app.example.com")
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	conn.Close()
}

func TestSessionController_DoesNotLeakAcrossUsers(t *testing.T) {
	hub := sessionsync.NewHub(8)
	url := newSessionServer(t, hub, nil)

	alice, _, err := websocket.DefaultDialer.Dial(url+"?as=alice", nil)
	require.NoError(t, err)
	defer alice.Close()
	aliceTab, _, err := websocket.DefaultDialer.Dial(url+"?as=alice", nil)
	require.NoError(t, err)
	defer aliceTab.Close()
	bob, _, err := websocket.DefaultDialer.Dial(url+"?as=bob", nil)
	require.NoError(t, err)
	defer bob.Close()
	waitForSubscribers(t, hub, 3)

	sent := sessionsync.StorageEvent{
		Key:      sessionsync.DefaultAuthKey,
		NewValue: `{"access_token":"ALICE-SECRET","user":{"id":"alice"}}`,
	}
	require.NoError(t, alice.WriteJSON(sent))

	_ = aliceTab.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got sessionsync.StorageEvent
	require.NoError(t, aliceTab.ReadJSON(&got))
	assert.Equal(t, sent, got)

	_ = bob.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, msg, err := bob.ReadMessage()
	assert.Error(t, err, "bob received alice's auth state: %s", msg)
}

func TestSessionController_RequiresCaller(t *testing.T) {
	r := gin.New()
	ctl := NewSessionController(sessionsync.NewHub(8), nil, zap.NewNop())
	r.GET("/ws", withCaller(""), ctl.Connect)

	code, env := serve(t, r, http.MethodGet, "/ws", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)
}
