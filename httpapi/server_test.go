package httpapi_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/httpapi"
)

func init() { gin.SetMode(gin.TestMode) }

func do(t *testing.T, s *httpapi.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	w := do(t, httpapi.New(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflight(t *testing.T) {
	w := do(t, httpapi.New(httpapi.WithAllowOrigin("http://localhost:3000")), http.MethodOptions, "/v1/search", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSearch_Tiles(t *testing.T) {
	s := httpapi.New()
	w := do(t, s, http.MethodPost, "/v1/search", `{
		"tiles": [[0,0,0],[0,2,0],[0,0,0]],
		"start": {"row":0,"col":0},
		"end":   {"row":2,"col":2},
		"algorithm": "dijkstra"
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	res := decode[httpapi.SearchResponse](t, w)
	assert.True(t, res.Found)
	assert.True(t, res.Reachable)
	assert.Equal(t, "dijkstra", res.Algorithm)
	assert.Equal(t, "found", res.Stop)
	assert.Equal(t, 4.0, res.Cost)
	assert.Equal(t, []httpapi.CellJSON{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}, res.Path)
	assert.Equal(t, 8, res.Expansions)
}

// TestSearch_Layout: a walled-off goal is unreachable; the response is
// still 200 with the visited cells.
func TestSearch_Layout(t *testing.T) {
	w := do(t, httpapi.New(), http.MethodPost, "/v1/search", `{
		"layout": "..#.\n..#.",
		"start": {"row":0,"col":0},
		"end":   {"row":1,"col":3},
		"iterations": 100
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	res := decode[httpapi.SearchResponse](t, w)
	assert.False(t, res.Found)
	assert.False(t, res.Reachable)
	assert.Equal(t, "bfs", res.Algorithm)
	assert.Equal(t, "frontier-empty", res.Stop)
	assert.Empty(t, res.Path)
	assert.Len(t, res.Visited, 4)
}

// TestSearch_BudgetZero: the zero budget is honoured, not replaced by the default.
func TestSearch_BudgetZero(t *testing.T) {
	w := do(t, httpapi.New(), http.MethodPost, "/v1/search", `{
		"layout": "..",
		"start": {"row":0,"col":0},
		"end":   {"row":0,"col":0},
		"iterations": 0
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[httpapi.SearchResponse](t, w)
	assert.False(t, res.Found)
	assert.Equal(t, "budget", res.Stop)
}

func TestSearch_BadRequests(t *testing.T) {
	s := httpapi.New(httpapi.WithMaxCells(4), httpapi.WithMaxIterations(50))
	cases := []struct {
		name string
		body string
		want string
	}{
		{"NotJSON", `{`, "bad request body"},
		{"MissingStart", `{"layout":"..","end":{"row":0,"col":0}}`, "bad request body"},
		{"NoGrid", `{"start":{"row":0,"col":0},"end":{"row":0,"col":0}}`, "exactly one of layout or tiles"},
		{"Ragged", `{"tiles":[[0,0],[0]],"start":{"row":0,"col":0},"end":{"row":0,"col":0}}`, "same length"},
		{"TooLargeTiles", `{"tiles":[[0,0,0],[0,0,0]],"start":{"row":0,"col":0},"end":{"row":0,"col":0}}`, "cell limit"},
		{"TooLargeLayout", `{"layout":".....","start":{"row":0,"col":0},"end":{"row":0,"col":0}}`, "cell limit"},
		{"TooLargeLayoutBeforeParse", `{"layout":"..\n..\n.x","start":{"row":0,"col":0},"end":{"row":0,"col":0}}`, "cell limit"},
		{"LayoutAtLimit", `{"layout":"..\n.x","start":{"row":0,"col":0},"end":{"row":0,"col":0}}`, "unknown layout rune"},
		{"OutOfBounds", `{"layout":"..","start":{"row":0,"col":0},"end":{"row":3,"col":0}}`, "out of bounds"},
		{"BlockedEnd", `{"layout":".#","start":{"row":0,"col":0},"end":{"row":0,"col":1}}`, "impassable"},
		{"BadAlgorithm", `{"layout":"..","start":{"row":0,"col":0},"end":{"row":0,"col":1},"algorithm":"astar"}`, "unknown search kind"},
		{"BadPolicy", `{"layout":"..","start":{"row":0,"col":0},"end":{"row":0,"col":1},"blocked":"soft"}`, "unknown blocked policy"},
		{"BudgetTooLarge", `{"layout":"..","start":{"row":0,"col":0},"end":{"row":0,"col":1},"iterations":51}`, "exceed limit"},
		{"NegativeBudget", `{"layout":"..","start":{"row":0,"col":0},"end":{"row":0,"col":1},"iterations":-1}`, "non-negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/v1/search", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			res := decode[httpapi.ErrorResponse](t, w)
			assert.True(t, strings.Contains(res.Error, tc.want), "error %q lacks %q", res.Error, tc.want)
		})
	}
}

func TestBundled(t *testing.T) {
	s := httpapi.New()

	w := do(t, s, http.MethodGet, "/v1/maps/lab", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[httpapi.SearchResponse](t, w)
	assert.False(t, res.Found, "500 flood-fill pops fall short on the lab map")
	assert.True(t, res.Reachable)
	assert.Equal(t, "bfs", res.Algorithm)
	assert.Equal(t, "budget", res.Stop)
	assert.Equal(t, 500, res.Expansions)
	assert.Len(t, res.Visited, 66)

	w = do(t, s, http.MethodGet, "/v1/maps/lab?iterations=65536", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res = decode[httpapi.SearchResponse](t, w)
	assert.True(t, res.Found)
	assert.Equal(t, 18.0, res.Cost)

	w = do(t, s, http.MethodGet, "/v1/maps/lab?algorithm=dijkstra&iterations=3", "")
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[httpapi.SearchResponse](t, w)
	assert.False(t, res.Found)
	assert.Equal(t, 3, res.Expansions)
	assert.Equal(t, "budget", res.Stop)

	w = do(t, s, http.MethodGet, "/v1/maps/lab?iterations=lots", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodGet, "/v1/maps/atlantis", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestLogging: searches log at Info and rejected requests at Warn, as
// structured records.
func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	s := httpapi.New(httpapi.WithLogger(logger))

	w := do(t, s, http.MethodPost, "/v1/search", `{"layout":"..","start":{"row":0,"col":0},"end":{"row":0,"col":1}}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, s, http.MethodPost, "/v1/search", `{"layout":"..","start":{"row":0,"col":0},"end":{"row":0,"col":1},"algorithm":"astar"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var records []map[string]any
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		records = append(records, rec)
	}
	require.Len(t, records, 2)

	assert.Equal(t, "INFO", records[0]["level"])
	assert.Equal(t, "search", records[0]["msg"])
	assert.Equal(t, "found", records[0]["stop"])
	assert.Equal(t, 2.0, records[0]["expansions"])

	assert.Equal(t, "WARN", records[1]["level"])
	assert.Equal(t, 400.0, records[1]["status"])
	assert.Equal(t, "/v1/search", records[1]["path"])
	assert.Contains(t, records[1]["error"], "unknown search kind")
}
