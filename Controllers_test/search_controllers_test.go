package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/little-lemon/live"
)

type socketMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type searchResultJSON struct {
	Query    string         `json:"query"`
	Category string         `json:"category"`
	Items    []menuItemJSON `json:"items"`
}

func dialSearch(t *testing.T, srv *httptest.Server) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/search"
	return websocket.DefaultDialer.Dial(url, nil)
}

func readSocket(t *testing.T, conn *websocket.Conn) socketMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg socketMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func readResults(t *testing.T, conn *websocket.Conn) searchResultJSON {
	t.Helper()
	msg := readSocket(t, conn)
	require.Equal(t, live.EventMenuResults, msg.Event)
	var r searchResultJSON
	require.NoError(t, json.Unmarshal(msg.Data, &r))
	return r
}

func TestSearchSocket_RequiresOnboarding(t *testing.T) {
	app := setupApp(t, nil)
	srv := httptest.NewServer(app.Router)
	defer srv.Close()

	_, resp, err := dialSearch(t, srv)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSearchSocket_DebouncedResults(t *testing.T) {
	app := setupApp(t, nil)
	app.onboard(t)
	srv := httptest.NewServer(app.Router)
	defer srv.Close()

	conn, _, err := dialSearch(t, srv)
	require.NoError(t, err)
	defer conn.Close()

	initial := readResults(t, conn)
	assert.Equal(t, "", initial.Query)
	assert.Equal(t, "All", initial.Category)
	assert.Len(t, initial.Items, 5)

	// Ketikan beruntun: hanya input terakhir yang dibalas.
	for _, q := range []string{"G", "Gr", "Gri", "Grilled"} {
		require.NoError(t, conn.WriteJSON(map[string]string{"query": q, "category": "Mains"}))
	}

	r := readResults(t, conn)
	assert.Equal(t, "Grilled", r.Query)
	assert.Equal(t, "Mains", r.Category)
	assert.Equal(t, []string{"Grilled Fish"}, menuNames(r.Items))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	assert.Equal(t, live.EventError, readSocket(t, conn).Event)

	// Category kosong diperlakukan sebagai All.
	require.NoError(t, conn.WriteJSON(map[string]string{"query": "zzz"}))
	r = readResults(t, conn)
	assert.Equal(t, "All", r.Category)
	assert.Empty(t, r.Items)
}

func TestSearchSocket_LogoutBroadcastsReset(t *testing.T) {
	app := setupApp(t, nil)
	app.onboard(t)
	srv := httptest.NewServer(app.Router)
	defer srv.Close()

	conn, _, err := dialSearch(t, srv)
	require.NoError(t, err)
	defer conn.Close()
	readResults(t, conn)

	resp, err := http.Post(srv.URL+"/logout", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, live.EventSessionReset, readSocket(t, conn).Event)
}
