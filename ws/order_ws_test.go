package ws_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/doker312/aroras-kitchen-orderflow-app/middlewares"
	"github.com/doker312/aroras-kitchen-orderflow-app/utils"
	"github.com/doker312/aroras-kitchen-orderflow-app/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func setupHubServer(t *testing.T) (*ws.OrderHub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := ws.NewOrderHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(testSecret), hub.HandleWebSocket)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dialAs(t *testing.T, srv *httptest.Server, userID uint, role string) *websocket.Conn {
	t.Helper()
	token, err := utils.GenerateToken(userID, role, testSecret, time.Hour)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders?token=" + token
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) ws.StatusEvent {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev ws.StatusEvent
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestHubDeliversToOwnerAndAdmins(t *testing.T) {
	hub, srv := setupHubServer(t)

	customer := dialAs(t, srv, 7, "customer")
	admin := dialAs(t, srv, 1, "admin")

	// the server registers the subscription after the handshake
	// response the dialer saw, so give Run a moment to process it
	time.Sleep(100 * time.Millisecond)

	hub.OrderStatusChanged(41, 9, "preparing", 220, "2026-08-29T10:00:00Z")
	hub.OrderStatusChanged(42, 7, "preparing", 560, "2026-08-29T10:00:01Z")

	// admins see every event, in order
	ev := readEvent(t, admin)
	assert.Equal(t, uint(41), ev.OrderID)
	ev = readEvent(t, admin)
	assert.Equal(t, uint(42), ev.OrderID)

	// the customer never sees user 9's order; its first event is its own
	ev = readEvent(t, customer)
	assert.Equal(t, uint(42), ev.OrderID)
	assert.Equal(t, "preparing", ev.Status)
	assert.Equal(t, int64(560), ev.Total)
}

func TestHandshakeRequiresToken(t *testing.T) {
	_, srv := setupHubServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
