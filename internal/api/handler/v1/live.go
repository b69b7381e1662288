package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vietanh2810/ticket-desk/internal/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// AvailabilityMessage is pushed to every live client after each sale.
type AvailabilityMessage struct {
	Type    string                `json:"type"`
	Tickets []domain.Availability `json:"tickets"`
}

type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// LiveHandler fans availability snapshots out to websocket clients.
type LiveHandler struct {
	svc        InventoryService
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

func NewLiveHandler(svc InventoryService) *LiveHandler {
	return &LiveHandler{
		svc:        svc,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run owns the client set until ctx is done.
func (h *LiveHandler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Publish queues records for every connected client. It never blocks a sale.
func (h *LiveHandler) Publish(records []domain.InventoryRecord) {
	message, err := encodeAvailability(records)
	if err != nil {
		zap.L().Error("could not encode availability", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- message:
	default:
		zap.L().Warn("live availability update dropped, the hub is busy")
	}
}

func encodeAvailability(records []domain.InventoryRecord) ([]byte, error) {
	return json.Marshal(AvailabilityMessage{
		Type:    "availability",
		Tickets: domain.Availabilities(records),
	})
}

// HandleLive godoc
// @Summary      Live ticket availability
// @Description  Websocket stream. The current availability is sent on connect and again after every sale.
// @Tags         tickets
// @Produce      json
// @Success      101      {object}   AvailabilityMessage
// @Failure      500      {object}   response.Err
// @Router       /tickets/live [get]
func (h *LiveHandler) HandleLive(ctx *gin.Context) {
	records, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleLive -> h.svc.List", err)
		return
	}

	first, err := encodeAvailability(records)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleLive -> encodeAvailability", err)
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, 256),
	}
	client.send <- first

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump(h)
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only watches the connection; clients have nothing to say.
func (c *Client) readPump(h *LiveHandler) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("live client went away", zap.Error(err))
			}
			return
		}
	}
}
