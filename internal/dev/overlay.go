package dev

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// OverlayMessageType represents the type of overlay message.
type OverlayMessageType string

const (
	OverlayTypeMismatch OverlayMessageType = "mismatch"
	OverlayTypeClear    OverlayMessageType = "clear"
)

// OverlayMessage is sent to browsers via WebSocket.
type OverlayMessage struct {
	Type     OverlayMessageType `json:"type"`
	Category string             `json:"category,omitempty"`
	Detail   string             `json:"detail,omitempty"`
}

// OverlayServer manages WebSocket connections for the mismatch overlay.
// Connected browsers receive every emitted hydration diagnostic and
// render it over the page.
type OverlayServer struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// NewOverlayServer creates a new overlay server.
func NewOverlayServer() *OverlayServer {
	return &OverlayServer{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in dev
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (s *OverlayServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	// Keep connection alive until client disconnects
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// NotifyMismatch sends a mismatch diagnostic to all clients.
func (s *OverlayServer) NotifyMismatch(category, detail string) {
	s.broadcast(OverlayMessage{Type: OverlayTypeMismatch, Category: category, Detail: detail})
}

// Clear clears the overlay on all clients.
func (s *OverlayServer) Clear() {
	s.broadcast(OverlayMessage{Type: OverlayTypeClear})
}

// Emit implements the hydration diagnostic sink, forwarding each
// finished warning to connected browsers.
func (s *OverlayServer) Emit(msg string) {
	s.NotifyMismatch("hydration", msg)
}

// broadcast sends a message to all connected clients.
func (s *OverlayServer) broadcast(msg OverlayMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	s.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}
	s.mu.RUnlock()

	for _, client := range clients {
		err := client.WriteMessage(websocket.TextMessage, data)
		if err != nil {
			s.mu.Lock()
			delete(s.clients, client)
			s.mu.Unlock()
			client.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (s *OverlayServer) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Close closes all client connections.
func (s *OverlayServer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for client := range s.clients {
		client.Close()
		delete(s.clients, client)
	}
}

// OverlayClientScript returns the JavaScript for the mismatch overlay.
// This is injected into the page in development mode.
const OverlayClientScript = `
<script>
(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;
    var ws = null;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        ws = new WebSocket(protocol + '//' + location.host + '/_hydrate/overlay');

        ws.onopen = function() {
            console.log('[hydrate] Overlay connected');
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }

            switch (msg.type) {
                case 'mismatch':
                    console.warn('[hydrate] Mismatch:', msg.detail);
                    showMismatchOverlay(msg.detail);
                    break;

                case 'clear':
                    clearMismatchOverlay();
                    break;
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    function showMismatchOverlay(detail) {
        var overlay = document.getElementById('hydrate-mismatch-overlay');
        if (!overlay) {
            overlay = document.createElement('div');
            overlay.id = 'hydrate-mismatch-overlay';
            overlay.style.cssText = 'position:fixed;bottom:0;left:0;right:0;max-height:50vh;background:rgba(40,30,0,0.95);color:#ffd866;font-family:monospace;font-size:13px;padding:16px;overflow:auto;z-index:999999;border-top:2px solid #ffb300;';

            var title = document.createElement('h3');
            title.style.cssText = 'color:#ffb300;margin:0 0 12px;';
            title.textContent = 'Hydration mismatch';
            overlay.appendChild(title);

            document.body.appendChild(overlay);
        }

        var pre = document.createElement('pre');
        pre.style.cssText = 'white-space:pre-wrap;word-wrap:break-word;background:#1a1400;padding:12px;border-radius:6px;border:1px solid #554400;margin:0 0 8px;';
        pre.textContent = detail;
        overlay.appendChild(pre);
    }

    function clearMismatchOverlay() {
        var overlay = document.getElementById('hydrate-mismatch-overlay');
        if (overlay) {
            overlay.remove();
        }
    }

    // Connect on load
    if (document.readyState === 'loading') {
        document.addEventListener('DOMContentLoaded', connect);
    } else {
        connect();
    }
})();
</script>
`
