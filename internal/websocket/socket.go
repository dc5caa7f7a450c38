package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"margin-simulator/internal/handler"
	"margin-simulator/internal/service"
	"margin-simulator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for dev simplicity
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one live simulation form. Every text frame it sends is a
// SimulateRequest; every frame it receives is the matching response envelope.
type Client struct {
	Conn    *websocket.Conn
	Send    chan []byte
	service service.SimulationService
}

// writePump handles writing replies to the WebSocket connection
func (c *Client) writePump() {
	defer func() {
		_ = c.Conn.Close()
	}()
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			// closing unblocks readPump; drain so it never blocks on Send
			_ = c.Conn.Close()
			for range c.Send {
			}
			return
		}
	}
	_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump reads requests, runs them and queues the replies in order
func (c *Client) readPump(ctx context.Context) {
	defer close(c.Send)
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("error: %v", err)
			}
			return
		}

		var req service.SimulateRequest
		var reply response.Response
		if err := json.Unmarshal(message, &req); err != nil {
			reply = response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error())
		} else {
			_, reply = handler.Reply(ctx, c.service, req)
		}

		payload, err := json.Marshal(reply)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
		c.Send <- payload
	}
}

// ServeWs upgrades the request and serves simulations until the peer closes
func ServeWs(svc service.SimulationService, c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade failed:", err)
		return
	}
	client := &Client{Conn: conn, Send: make(chan []byte, 16), service: svc}

	go client.writePump()
	client.readPump(c.Request.Context())
}
