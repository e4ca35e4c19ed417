// Package web serves machine snapshots to debug viewers over websockets.
package web

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Message types, sent as the first byte of every websocket message.
const (
	// FrameRaw is followed by an encoded snapshot.
	FrameRaw uint8 = iota
	// FrameBrotli is followed by a brotli compressed snapshot.
	FrameBrotli
)

// broadcastQueue is the number of frames that may wait for Run before
// Publish starts dropping them.
const broadcastQueue = 4

// Hub fans published frames out to every connected client. Frames are
// dropped rather than queued when Run or a client falls behind.
type Hub struct {
	clients   map[*client]bool
	connected atomic.Int32

	broadcast            chan []byte
	register, unregister chan *client
	done                 chan struct{}

	compressionLevel int

	mu       sync.Mutex
	lastHash uint64
	last     []byte

	upgrader websocket.Upgrader
	log      log.Logger
}

// HubOpt configures a Hub.
type HubOpt func(h *Hub)

// WithCompression brotli compresses every frame at the given level.
func WithCompression(level int) HubOpt {
	return func(h *Hub) {
		h.compressionLevel = level
	}
}

// NewHub returns a Hub. Nothing is served until Run is started.
func NewHub(logger log.Logger, opts ...HubOpt) *Hub {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	h := &Hub{
		clients:          make(map[*client]bool),
		broadcast:        make(chan []byte, broadcastQueue),
		register:         make(chan *client),
		unregister:       make(chan *client),
		done:             make(chan struct{}),
		compressionLevel: -1,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024 * 16,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		log: logger.WithCategory("web"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP upgrades the request to a websocket connection and
// registers it as a client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debugf("upgrade %s: %v", r.RemoteAddr, err)
		return
	}

	c := &client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendQueue),
	}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// Run owns the client set until ctx is cancelled, then closes every
// client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.remove(c)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			h.connected.Add(1)
			h.log.Debugf("client %s connected", c.conn.RemoteAddr())

			// synchronize the connecting client with the last frame
			h.mu.Lock()
			last := h.last
			h.mu.Unlock()
			if last != nil {
				c.send <- last
			}
		case c := <-h.unregister:
			if h.clients[c] {
				h.remove(c)
				h.log.Debugf("client %s disconnected", c.conn.RemoteAddr())
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					h.remove(c)
					h.log.Debugf("client %s dropped, send queue full", c.conn.RemoteAddr())
				}
			}
		}
	}
}

func (h *Hub) remove(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.connected.Add(-1)
}

// Clients returns the number of registered clients.
func (h *Hub) Clients() int {
	return int(h.connected.Load())
}

// Publish queues frame for every client. A frame identical to the last
// queued one is skipped, and nothing is queued while the broadcast
// queue is full. Publish reports whether the frame was queued and never
// blocks.
func (h *Hub) Publish(frame []byte) bool {
	hash := xxhash.Sum64(frame)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last != nil && hash == h.lastHash {
		return false
	}

	msg, err := h.encode(frame)
	if err != nil {
		h.log.Errorf("encode frame: %v", err)
		return false
	}

	select {
	case h.broadcast <- msg:
		h.lastHash, h.last = hash, msg
		return true
	default:
		return false
	}
}

func (h *Hub) encode(frame []byte) ([]byte, error) {
	if h.compressionLevel < 0 {
		return append([]byte{FrameRaw}, frame...), nil
	}

	buf := bytes.NewBuffer([]byte{FrameBrotli})
	w := brotli.NewWriterLevel(buf, h.compressionLevel)
	if _, err := w.Write(frame); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
