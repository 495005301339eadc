package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/doker312/aroras-kitchen-orderflow-app/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub fans order-status changes out over WebSocket. Customers get
// events for their own orders; admin connections get every event.
type OrderHub struct {
	customers  map[uint]map[*websocket.Conn]bool // userID -> connections
	admins     map[*websocket.Conn]bool
	broadcast  chan StatusEvent
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
}

// Subscription is one authenticated connection.
type Subscription struct {
	Conn   *websocket.Conn
	UserID uint
	Admin  bool
}

// StatusEvent is the wire payload pushed to subscribers.
type StatusEvent struct {
	OrderID   uint   `json:"orderId"`
	UserID    uint   `json:"-"` // routing only
	Status    string `json:"status"`
	Total     int64  `json:"total"`
	UpdatedAt string `json:"updatedAt"`
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		customers:  make(map[uint]map[*websocket.Conn]bool),
		admins:     make(map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
	}
}

// Run owns all subscriber maps; call it once in its own goroutine.
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if sub.Admin {
				h.admins[sub.Conn] = true
			} else {
				if h.customers[sub.UserID] == nil {
					h.customers[sub.UserID] = make(map[*websocket.Conn]bool)
				}
				h.customers[sub.UserID][sub.Conn] = true
			}
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if sub.Admin {
				if h.admins[sub.Conn] {
					delete(h.admins, sub.Conn)
					sub.Conn.Close()
				}
			} else if _, ok := h.customers[sub.UserID][sub.Conn]; ok {
				delete(h.customers[sub.UserID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.customers[ev.UserID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.customers[ev.UserID], conn)
				}
			}
			for conn := range h.admins {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.admins, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderStatusChanged implements services.StatusNotifier.
func (h *OrderHub) OrderStatusChanged(orderID, userID uint, status string, total int64, updatedAt string) {
	h.broadcast <- StatusEvent{
		OrderID:   orderID,
		UserID:    userID,
		Status:    status,
		Total:     total,
		UpdatedAt: updatedAt,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders (behind WSAuthMiddleware)
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}
	admin := utils.CurrentRole(c) == "admin"

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, UserID: userID, Admin: admin}
	h.register <- sub

	// reader loop only detects closure; clients never send
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
