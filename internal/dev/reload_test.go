package dev

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialReload(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ReloadMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("bad message %q: %v", data, err)
	}
	return msg
}

func waitForClients(t *testing.T, rs *ReloadServer, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for rs.ClientCount() < n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, got %d", n, rs.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestReloadBroadcast(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(rs)
	defer srv.Close()

	conn := dialReload(t, srv)
	defer conn.Close()
	waitForClients(t, rs, 1)

	rs.NotifyReload()
	msg := readMessage(t, conn)
	if msg.Type != ReloadTypeFull {
		t.Errorf("expected reload, got %q", msg.Type)
	}
}

func TestReloadCSSMessage(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(rs)
	defer srv.Close()

	conn := dialReload(t, srv)
	defer conn.Close()
	waitForClients(t, rs, 1)

	rs.NotifyCSS("static/style.css")
	msg := readMessage(t, conn)
	if msg.Type != ReloadTypeCSS || msg.File != "static/style.css" {
		t.Errorf("got %+v", msg)
	}
}

func TestReloadErrorOverlay(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(rs)
	defer srv.Close()

	conn := dialReload(t, srv)
	defer conn.Close()
	waitForClients(t, rs, 1)

	rs.NotifyError("syntax error in app/main.go")
	msg := readMessage(t, conn)
	if msg.Type != ReloadTypeError || !strings.Contains(msg.Error, "syntax error") {
		t.Errorf("got %+v", msg)
	}

	rs.ClearError()
	msg = readMessage(t, conn)
	if msg.Type != ReloadTypeClear {
		t.Errorf("expected clear, got %+v", msg)
	}
}

func TestReloadMultipleClients(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(rs)
	defer srv.Close()

	a := dialReload(t, srv)
	defer a.Close()
	b := dialReload(t, srv)
	defer b.Close()
	waitForClients(t, rs, 2)

	rs.NotifyReload()
	if readMessage(t, a).Type != ReloadTypeFull {
		t.Error("first client missed the broadcast")
	}
	if readMessage(t, b).Type != ReloadTypeFull {
		t.Error("second client missed the broadcast")
	}
}

func TestReloadClientDisconnect(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(rs)
	defer srv.Close()

	conn := dialReload(t, srv)
	waitForClients(t, rs, 1)
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for rs.ClientCount() > 0 {
		if time.Now().After(deadline) {
			t.Fatal("disconnected client was not dropped")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
