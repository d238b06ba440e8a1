package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/services"
	"github.com/nitishmehan/Eatsy/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderFeed pushes order events to the vendors they belong to. One vendor
// may hold several connections (multiple dashboard tabs).
type OrderFeed struct {
	clients    map[uint]map[*websocket.Conn]bool // vendorID -> set of conns
	broadcast  chan vendorEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn     *websocket.Conn
	VendorID uint
}

type vendorEvent struct {
	VendorID uint
	Event    services.OrderEvent
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan vendorEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run owns the connection registry; call it once in its own goroutine.
func (f *OrderFeed) Run() {
	for {
		select {
		case sub := <-f.register:
			f.mu.Lock()
			if f.clients[sub.VendorID] == nil {
				f.clients[sub.VendorID] = make(map[*websocket.Conn]bool)
			}
			f.clients[sub.VendorID][sub.Conn] = true
			f.mu.Unlock()

		case sub := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[sub.VendorID][sub.Conn]; ok {
				delete(f.clients[sub.VendorID], sub.Conn)
				sub.Conn.Close()
			}
			f.mu.Unlock()

		case ev := <-f.broadcast:
			f.mu.Lock()
			for conn := range f.clients[ev.VendorID] {
				if err := conn.WriteJSON(ev.Event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(f.clients[ev.VendorID], conn)
				}
			}
			f.mu.Unlock()
		}
	}
}

// Publish implements services.OrderEventPublisher. Non-blocking from the
// caller's point of view apart from the hub handoff.
func (f *OrderFeed) Publish(vendorID uint, ev services.OrderEvent) {
	f.broadcast <- vendorEvent{VendorID: vendorID, Event: ev}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket serves GET /vendor/ws. The vendor auth middleware
// runs first, so the context carries a verified vendor identity.
func (f *OrderFeed) HandleWebSocket(c *gin.Context) {
	vendorID := utils.CurrentUserID(c)
	if vendorID == 0 || utils.CurrentRole(c) != entity.RoleVendor {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, VendorID: vendorID}
	f.register <- sub

	go f.drain(sub)
}

// drain keeps reading until the client goes away; the feed is one-way, so
// inbound frames are discarded.
func (f *OrderFeed) drain(sub subscription) {
	defer func() { f.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
