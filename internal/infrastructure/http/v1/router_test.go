package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradechat/internal/core/apperror"
	"tradechat/internal/domain/catalog"
	"tradechat/internal/domain/chat"
	"tradechat/internal/infrastructure/http/v1/dto"
	"tradechat/internal/infrastructure/http/v1/handlers"
	"tradechat/internal/infrastructure/http/v1/middleware"
	"tradechat/pkg/logger"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Variable{
		{Name: "Valor FOB", Aliases: []string{"FOB"}, Unit: "USD", Applications: []string{"Aduanas"}},
		{Name: "Valor CIF", Aliases: []string{"CIF"}, Unit: "USD"},
	})
}

func newTestRouter(rl middleware.RateLimitConfig) http.Handler {
	r, err := NewRouter(RouterConfig{Catalog: testCatalog(), Logger: logger.Nop(), RateLimit: rl})
	if err != nil {
		panic(err)
	}
	return r
}

func postChat(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, dto.ChatResponse) {
	t.Helper()
	return postChatFrom(t, h, body, "192.0.2.1:1234", "")
}

func postChatFrom(t *testing.T, h http.Handler, body, remoteAddr, forwardedFor string) (*httptest.ResponseRecorder, dto.ChatResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	h.ServeHTTP(w, req)

	var resp dto.ChatResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestChat_Replies(t *testing.T) {
	h := newTestRouter(middleware.RateLimitConfig{})

	tests := []struct {
		name string
		body string
		want func(t *testing.T, reply string)
	}{
		{
			name: "lookup",
			body: `{"message": "FOB"}`,
			want: func(t *testing.T, reply string) { assert.True(t, strings.HasPrefix(reply, "**Valor FOB**")) },
		},
		{
			name: "help",
			body: `{"message": "ayuda"}`,
			want: func(t *testing.T, reply string) { assert.Equal(t, chat.HelpText, reply) },
		},
		{
			name: "list",
			body: `{"message": "lista"}`,
			want: func(t *testing.T, reply string) {
				assert.Equal(t, "Variables disponibles:\n- Valor FOB\n- Valor CIF", reply)
			},
		},
		{
			name: "blank message",
			body: `{"message": "   "}`,
			want: func(t *testing.T, reply string) { assert.Equal(t, chat.PromptText, reply) },
		},
		{
			name: "missing field",
			body: `{}`,
			want: func(t *testing.T, reply string) { assert.Equal(t, chat.PromptText, reply) },
		},
		{
			name: "malformed body",
			body: `{"message": `,
			want: func(t *testing.T, reply string) { assert.Equal(t, chat.PromptText, reply) },
		},
		{
			name: "empty body",
			body: ``,
			want: func(t *testing.T, reply string) { assert.Equal(t, chat.PromptText, reply) },
		},
		{
			name: "not found",
			body: `{"message": "qwertyuiop"}`,
			want: func(t *testing.T, reply string) { assert.Equal(t, chat.NotFoundText, reply) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := postChat(t, h, tt.body)
			require.Equal(t, http.StatusOK, w.Code)
			tt.want(t, resp.Reply)
		})
	}
}

func TestChat_RateLimited(t *testing.T) {
	h := newTestRouter(middleware.RateLimitConfig{RPS: 1, Burst: 1})

	w, _ := postChat(t, h, `{"message": "fob"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = postChat(t, h, `{"message": "fob"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Health probes are not throttled.
	assert.Equal(t, http.StatusOK, get(h, "/health/live").Code)
}

func TestChat_RateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	h := newTestRouter(middleware.RateLimitConfig{RPS: 1, Burst: 1})

	accepted := 0
	for i := 0; i < 20; i++ {
		w, _ := postChatFrom(t, h, `{"message": "fob"}`, "198.51.100.7:5555", fmt.Sprintf("10.0.0.%d", i))
		if w.Code == http.StatusOK {
			accepted++
		} else {
			assert.Equal(t, http.StatusTooManyRequests, w.Code)
		}
	}
	assert.Equal(t, 1, accepted)
}

func TestChat_RateLimitPerClientBehindTrustedProxy(t *testing.T) {
	h, err := NewRouter(RouterConfig{
		Catalog:        testCatalog(),
		Logger:         logger.Nop(),
		RateLimit:      middleware.RateLimitConfig{RPS: 1, Burst: 1},
		TrustedProxies: []string{"198.51.100.0/24"},
	})
	require.NoError(t, err)

	w, _ := postChatFrom(t, h, `{"message": "fob"}`, "198.51.100.7:5555", "203.0.113.1")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = postChatFrom(t, h, `{"message": "fob"}`, "198.51.100.7:5555", "203.0.113.2")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = postChatFrom(t, h, `{"message": "fob"}`, "198.51.100.7:5555", "203.0.113.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestNewRouter_InvalidConfig(t *testing.T) {
	_, err := NewRouter(RouterConfig{Logger: logger.Nop()})
	assert.Error(t, err)

	_, err = NewRouter(RouterConfig{Catalog: testCatalog(), Logger: logger.Nop(), TrustedProxies: []string{"not-an-ip"}})
	assert.Error(t, err)
}

func TestPage(t *testing.T) {
	w := get(newTestRouter(middleware.RateLimitConfig{}), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "fetch('/chat'")
}

func TestVariables_List(t *testing.T) {
	w := get(newTestRouter(middleware.RateLimitConfig{}), "/api/v1/variables")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.VariableListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalCount)
	assert.Equal(t, "Valor FOB", resp.Items[0].Name)
	assert.Equal(t, []string{}, resp.Items[1].Applications)
}

func TestVariables_Search(t *testing.T) {
	h := newTestRouter(middleware.RateLimitConfig{})

	w := get(h, "/api/v1/variables/search?q=CIF")
	require.Equal(t, http.StatusOK, w.Code)
	var v dto.VariableResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.Equal(t, "Valor CIF", v.Name)

	w = get(h, "/api/v1/variables/search?q=zzz")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, bytes.Contains(w.Body.Bytes(), []byte(apperror.CodeNotFound)))

	w = get(h, "/api/v1/variables/search?q=%20")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, bytes.Contains(w.Body.Bytes(), []byte(apperror.CodeValidation)))
}

func TestHealth(t *testing.T) {
	h := newTestRouter(middleware.RateLimitConfig{})

	w := get(h, "/health/ready")
	require.Equal(t, http.StatusOK, w.Code)
	var ready map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ready))
	assert.Equal(t, "ok", ready["status"])
	assert.Equal(t, float64(2), ready["variables"])

	w = get(h, "/health/info")
	require.Equal(t, http.StatusOK, w.Code)
	var info map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, float64(2), info["catalog"].(map[string]any)["variables"])
}

func TestHealth_NotReadyWithoutCatalog(t *testing.T) {
	r := gin.New()
	r.GET("/health/ready", handlers.NewHealthHandler(nil).Ready)

	assert.Equal(t, http.StatusServiceUnavailable, get(r, "/health/ready").Code)
}
