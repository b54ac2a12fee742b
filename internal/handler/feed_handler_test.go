package handler

import (
	"context"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"notes-app-be/internal/pkg/logger"
	internalWS "notes-app-be/internal/websocket"

	fastws "github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeWsRequiresUpgrade(t *testing.T) {
	app := fiber.New()
	NewFeedHandler(internalWS.NewHub(nil, logger.NewNopLogger()), logger.NewNopLogger()).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/ws", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

// startFeedServer serves the feed on a real loopback listener.
func startFeedServer(t *testing.T) (string, *internalWS.Hub) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	hub := internalWS.NewHub(nil, logger.NewNopLogger())
	go hub.Run(ctx)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	NewFeedHandler(hub, logger.NewNopLogger()).RegisterRoutes(app)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()

	t.Cleanup(func() {
		cancel()
		_ = app.ShutdownWithTimeout(time.Second)
	})
	return "ws://" + ln.Addr().String() + "/ws", hub
}

func waitForClients(t *testing.T, hub *internalWS.Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, 2*time.Second, 5*time.Millisecond)
}

func TestFeedDeliversEventsOverRealConnection(t *testing.T) {
	url, hub := startFeedServer(t)

	conn, _, err := fastws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	waitForClients(t, hub, 1)

	hub.Broadcast([]byte(`{"type":"note_created"}`))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	kind, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, fastws.TextMessage, kind)
	assert.JSONEq(t, `{"type":"note_created"}`, string(msg))
}

func TestFeedSurvivesRepeatedDisconnects(t *testing.T) {
	url, hub := startFeedServer(t)

	for i := 0; i < 50; i++ {
		conn, _, err := fastws.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		waitForClients(t, hub, 1)

		// Keep the write side busy while the peer leaves.
		hub.Broadcast([]byte(`{"type":"note_updated"}`))
		require.NoError(t, conn.Close())
		waitForClients(t, hub, 0)
	}

	// The server still accepts and serves clients afterwards.
	conn, _, err := fastws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	waitForClients(t, hub, 1)
}
