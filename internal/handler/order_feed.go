// /internal/handler/order_feed.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	feedWriteTimeout = 5 * time.Second
	// feedBuffer is how many pending messages a client may fall behind
	// before it is disconnected.
	feedBuffer = 16
)

// feedClient is one websocket subscriber. Only its writer goroutine writes
// to conn; send is closed exactly once, by whoever removes the client from
// the hub.
type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// OrderFeed pushes every placed order to the connected websocket clients.
type OrderFeed struct {
	mu       sync.Mutex
	clients  map[*feedClient]struct{}
	upgrader websocket.Upgrader
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{
		clients: make(map[*feedClient]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Subscribe upgrades the request and keeps the client registered until
// its connection stops reading.
func (f *OrderFeed) Subscribe(c *gin.Context) {
	conn, err := f.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already answered the client
		log.Printf("Order feed upgrade failed: %v", err)
		return
	}

	client := &feedClient{conn: conn, send: make(chan []byte, feedBuffer)}
	f.mu.Lock()
	f.clients[client] = struct{}{}
	f.mu.Unlock()
	go client.writeLoop()
	defer f.drop(client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast queues the order as JSON for every client and never waits on
// the network. Clients whose queue is full are disconnected.
func (f *OrderFeed) Broadcast(order any) {
	data, err := json.Marshal(order)
	if err != nil {
		log.Printf("Order feed could not encode order: %v", err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		select {
		case client.send <- data:
		default:
			log.Printf("Order feed client fell behind, disconnecting.")
			delete(f.clients, client)
			close(client.send)
		}
	}
}

// Len reports the number of connected clients.
func (f *OrderFeed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

// Close disconnects every client.
func (f *OrderFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		delete(f.clients, client)
		close(client.send)
	}
}

func (f *OrderFeed) drop(client *feedClient) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.clients[client]; ok {
		delete(f.clients, client)
		close(client.send)
	}
}

// writeLoop delivers queued messages until send is closed or a write
// fails, then closes the connection so the read loop ends too.
func (c *feedClient) writeLoop() {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
