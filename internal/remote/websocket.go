package remote

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/multispin/internal/logging"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

// serveSession runs the message loop of one connection. The initial state
// is sent first; each client message is answered with its notifications and
// the new state.
func serveSession(conn *websocket.Conn, remoteAddr string, session *Session) error {
	logging.LogSessionEvent(remoteAddr, "session_opened")

	done := make(chan struct{})
	defer func() {
		close(done)
		_ = conn.Close()
		logging.LogSessionEvent(remoteAddr, "session_closed")
	}()

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return err
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go keepAlive(conn, done)

	if err := writeMessage(conn, remoteAddr, session.stateMessage()); err != nil {
		return err
	}

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return fmt.Errorf("read failed: %w", err)
			}
			logging.Info("Connection closed by client", zap.String("remote_addr", remoteAddr))
			return nil
		}
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			return err
		}

		logging.LogSessionMessage(remoteAddr, "received", messageTypeName(messageType), data)

		var replies []ServerMessage
		if messageType != websocket.TextMessage {
			replies = []ServerMessage{errorMessage(fmt.Errorf("binary messages are not supported"))}
		} else {
			replies = session.HandleRaw(data)
		}

		for _, reply := range replies {
			if err := writeMessage(conn, remoteAddr, reply); err != nil {
				return err
			}
		}
	}
}

// keepAlive pings the peer until done is closed.
func keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func writeMessage(conn *websocket.Conn, remoteAddr string, msg ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode %s message: %w", msg.Type, err)
	}
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	logging.LogSessionMessage(remoteAddr, "sent", msg.Type, data)
	return nil
}

func messageTypeName(t int) string {
	switch t {
	case websocket.TextMessage:
		return "text"
	case websocket.BinaryMessage:
		return "binary"
	default:
		return fmt.Sprintf("opcode_%d", t)
	}
}
