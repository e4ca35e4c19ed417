package web

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T, opts ...HubOpt) (*Hub, *httptest.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(nil, opts...)
	go h.Run(ctx)

	srv := httptest.NewServer(h)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return h, srv
}

func dial(t *testing.T, h *Hub, srv *httptest.Server, clients int) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return h.Clients() == clients }, time.Second, time.Millisecond)
	return conn
}

func read(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	kind, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.BinaryMessage, kind)
	return msg
}

func TestHub_Publish(t *testing.T) {
	h, srv := startHub(t)
	a := dial(t, h, srv, 1)
	b := dial(t, h, srv, 2)

	require.True(t, h.Publish([]byte{1, 2, 3}))
	assert.Equal(t, []byte{FrameRaw, 1, 2, 3}, read(t, a))
	assert.Equal(t, []byte{FrameRaw, 1, 2, 3}, read(t, b))

	assert.False(t, h.Publish([]byte{1, 2, 3}), "duplicate frames are skipped")

	require.True(t, h.Publish([]byte{4}))
	assert.Equal(t, []byte{FrameRaw, 4}, read(t, a))
}

func TestHub_SyncsLateClient(t *testing.T) {
	h, srv := startHub(t)
	require.True(t, h.Publish([]byte("snapshot")))

	conn := dial(t, h, srv, 1)
	assert.Equal(t, append([]byte{FrameRaw}, "snapshot"...), read(t, conn))
}

func TestHub_Compression(t *testing.T) {
	h, srv := startHub(t, WithCompression(brotli.BestSpeed))
	conn := dial(t, h, srv, 1)

	frame := []byte(strings.Repeat("gameboy", 100))
	require.True(t, h.Publish(frame))

	msg := read(t, conn)
	require.Equal(t, FrameBrotli, msg[0])
	assert.Less(t, len(msg), len(frame))

	out, err := io.ReadAll(brotli.NewReader(strings.NewReader(string(msg[1:]))))
	require.NoError(t, err)
	assert.Equal(t, frame, out)
}

func TestHub_Disconnect(t *testing.T) {
	h, srv := startHub(t)
	conn := dial(t, h, srv, 1)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, time.Millisecond)
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	// no Run loop draining the broadcast queue
	h := NewHub(nil)
	for i := 0; i < broadcastQueue; i++ {
		require.True(t, h.Publish([]byte{uint8(i)}))
	}
	assert.False(t, h.Publish([]byte{0xFF}))
}
