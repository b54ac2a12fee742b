package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs registers conn with the hub and blocks until the peer goes away.
// It returns only after both pumps have stopped, because the upgrader
// recycles conn as soon as the handler returns.
func ServeWs(hub *Hub, conn *websocket.Conn) {
	client := NewClient(hub, conn)
	if !hub.Register(client) {
		conn.Close()
		return
	}

	written := make(chan struct{})
	go func() {
		defer close(written)
		client.writePump()
	}()
	client.readPump()
	<-written
}
