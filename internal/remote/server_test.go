package remote

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/multispin/internal/config"
)

func newTestServer(t *testing.T, cfg *Config) (*Server, *httptest.Server) {
	t.Helper()
	srv, err := New(cfg)
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func dial(t *testing.T, ts *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestNewRejectsUnknownDefaultPreset(t *testing.T) {
	_, err := New(&Config{DefaultPreset: "nope"})
	require.Error(t, err)
	assert.True(t, config.IsNotFoundError(err))
}

func TestSessionOverWebSocket(t *testing.T) {
	_, ts := newTestServer(t, &Config{DefaultPreset: "time"})
	conn := dial(t, ts, "")

	initial := readMessage(t, conn)
	require.Equal(t, TypeState, initial.Type)
	assert.Equal(t, "time", initial.State.Preset)
	assert.Equal(t, "0:0:0", initial.State.Text)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: TypeValues, Values: []float64{12, 34, 56}}))
	changed := readMessage(t, conn)
	assert.Equal(t, TypeValuesChanged, changed.Type)
	assert.Equal(t, []float64{12, 34, 56}, changed.Values)
	state := readMessage(t, conn)
	assert.Equal(t, "12:34:56", state.State.Text)

	// Hours wrap below zero.
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: TypeStep, Steps: -13}))
	changed = readMessage(t, conn)
	assert.Equal(t, []float64{23, 34, 56}, changed.Values)
	readMessage(t, conn)
}

func TestPresetQueryOverridesDefault(t *testing.T) {
	_, ts := newTestServer(t, &Config{DefaultPreset: "time"})
	conn := dial(t, ts, "?preset=rgb")

	initial := readMessage(t, conn)
	assert.Equal(t, "rgb", initial.State.Preset)
	assert.Equal(t, 3, initial.State.Sections)
}

func TestRegistryDefaultPreset(t *testing.T) {
	_, ts := newTestServer(t, &Config{})
	conn := dial(t, ts, "")

	initial := readMessage(t, conn)
	assert.Equal(t, "default", initial.State.Preset)
	assert.Equal(t, 1, initial.State.Sections)
}

func TestUnknownPresetIsNotFound(t *testing.T) {
	_, ts := newTestServer(t, &Config{})
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?preset=nope"

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMalformedMessageKeepsSession(t *testing.T) {
	_, ts := newTestServer(t, &Config{DefaultPreset: "rgb"})
	conn := dial(t, ts, "")
	readMessage(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{")))
	assert.Equal(t, TypeError, readMessage(t, conn).Type)
	assert.Equal(t, TypeState, readMessage(t, conn).Type)

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{0x01}))
	assert.Equal(t, TypeError, readMessage(t, conn).Type)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: TypeText, Text: "9"}))
	assert.Equal(t, []float64{9, 0, 0}, readMessage(t, conn).Values)
}

func TestHealthzAndShutdown(t *testing.T) {
	srv, ts := newTestServer(t, &Config{})
	conn := dial(t, ts, "")
	readMessage(t, conn)

	require.Eventually(t, func() bool { return srv.ActiveSessions() == 1 }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "ok 1\n", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	assert.Equal(t, 0, srv.ActiveSessions())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}

func TestListenAndStart(t *testing.T) {
	srv, err := New(&Config{Host: "127.0.0.1", Port: 0})
	require.NoError(t, err)
	require.Nil(t, srv.Addr())
	require.NoError(t, srv.Listen())
	require.NotNil(t, srv.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + srv.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestUpgradeAnnouncesServer(t *testing.T) {
	_, ts := newTestServer(t, &Config{})
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.True(t, strings.HasPrefix(resp.Header.Get("Server"), "multispin/"))
}
