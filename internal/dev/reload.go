package dev

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeCSS   ReloadMessageType = "css"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to browsers over the live-reload socket. The
// inline client injected by render.PageData.LiveReload interprets it.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
	File  string            `json:"file,omitempty"`
}

// ReloadServer manages the live-reload WebSocket connections.
type ReloadServer struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// NewReloadServer creates a reload server.
func NewReloadServer() *ReloadServer {
	return &ReloadServer{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Dev only; any origin may connect.
				return true
			},
		},
	}
}

// ServeHTTP upgrades the connection and holds it until the browser goes
// away.
func (s *ReloadServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// NotifyReload asks all connected browsers for a full page reload.
func (s *ReloadServer) NotifyReload() {
	s.broadcast(ReloadMessage{Type: ReloadTypeFull})
}

// NotifyCSS asks browsers to re-fetch stylesheets without a reload.
func (s *ReloadServer) NotifyCSS(file string) {
	s.broadcast(ReloadMessage{Type: ReloadTypeCSS, File: file})
}

// NotifyError shows the error overlay in all connected browsers.
func (s *ReloadServer) NotifyError(errMsg string) {
	s.broadcast(ReloadMessage{Type: ReloadTypeError, Error: errMsg})
}

// ClearError dismisses the error overlay.
func (s *ReloadServer) ClearError() {
	s.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

// ClientCount returns the number of connected browsers.
func (s *ReloadServer) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// broadcast sends one message to every connected browser, dropping
// connections that fail to write.
func (s *ReloadServer) broadcast(msg ReloadMessage) {
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
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			s.mu.Lock()
			delete(s.clients, client)
			s.mu.Unlock()
			client.Close()
		}
	}
}
