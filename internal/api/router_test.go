package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/qwiky-admin-proxy/internal/api"
	"github.com/m04kA/qwiky-admin-proxy/internal/api/handlers"
	"github.com/m04kA/qwiky-admin-proxy/internal/domain"
	"github.com/m04kA/qwiky-admin-proxy/internal/integrations/qwikyservice"
	"github.com/m04kA/qwiky-admin-proxy/internal/service/bookings"
	"github.com/m04kA/qwiky-admin-proxy/internal/service/statuschecks"
	"github.com/m04kA/qwiky-admin-proxy/internal/service/users"
	"github.com/m04kA/qwiky-admin-proxy/pkg/logger"
	"github.com/m04kA/qwiky-admin-proxy/pkg/metrics"
)

const (
	testHoodID       = "hood-1"
	testDefaultToken = "default-token"
)

type upstreamCall struct {
	method string
	path   string
	query  string
	auth   string
}

type upstream struct {
	mu     sync.Mutex
	calls  []upstreamCall
	status   int
	body     string
	location string
	delay    time.Duration
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.calls = append(u.calls, upstreamCall{
		method: r.Method,
		path:   r.URL.Path,
		query:  r.URL.RawQuery,
		auth:   r.Header.Get("Authorization"),
	})
	status, body, location, delay := u.status, u.body, u.location, u.delay
	u.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}
	if location != "" {
		w.Header().Set("Location", location)
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (u *upstream) respond(status int, body string, delay time.Duration) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.status, u.body, u.delay = status, body, delay
}

func (u *upstream) redirect(status int, location string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.status, u.body, u.location = status, `{"message":"moved"}`, location
}

func (u *upstream) callCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.calls)
}

func (u *upstream) lastCall(t *testing.T) upstreamCall {
	t.Helper()
	u.mu.Lock()
	defer u.mu.Unlock()
	require.NotEmpty(t, u.calls)
	return u.calls[len(u.calls)-1]
}

type memoryStore struct {
	mu     sync.Mutex
	checks []*domain.StatusCheck
}

func (m *memoryStore) Create(_ context.Context, check *domain.StatusCheck) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks = append(m.checks, check)
	return nil
}

func (m *memoryStore) List(_ context.Context, limit int) ([]*domain.StatusCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.checks) > limit {
		return m.checks[:limit], nil
	}
	return m.checks, nil
}

type testEnv struct {
	handler  http.Handler
	upstream *upstream
}

func newTestEnv(t *testing.T, timeout time.Duration, opts ...func(*api.Options)) *testEnv {
	t.Helper()

	up := &upstream{status: http.StatusOK, body: `{}`}
	srv := httptest.NewServer(up)
	t.Cleanup(srv.Close)

	log := logger.Discard()
	client := qwikyservice.NewClient(srv.URL, testHoodID, timeout, log)

	options := api.Options{PathPrefix: "/api", DefaultToken: testDefaultToken}
	for _, opt := range opts {
		opt(&options)
	}

	handler := api.NewRouter(
		bookings.NewService(client, log),
		users.NewService(client, log),
		statuschecks.NewService(&memoryStore{}, &statuschecks.RealTimeProvider{}, log),
		log,
		options,
	)
	return &testEnv{handler: handler, upstream: up}
}

func (e *testEnv) do(method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Detail
}

func TestRoot(t *testing.T) {
	env := newTestEnv(t, time.Second)

	w := env.do(http.MethodGet, "/api/", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Qwiky Admin API Proxy"}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, time.Second)

	w := env.do(http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"qwiky-admin-proxy"}`, w.Body.String())
}

func TestListBookings_Defaults(t *testing.T) {
	env := newTestEnv(t, time.Second)
	env.upstream.respond(http.StatusOK, `{"content":[{"id":"b-1"}]}`, 0)

	w := env.do(http.MethodGet, "/api/qwiky/bookings", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"content":[{"id":"b-1"}]}`, w.Body.String())

	call := env.upstream.lastCall(t)
	assert.Equal(t, http.MethodGet, call.method)
	assert.Equal(t, "/admin/booking/hood/"+testHoodID, call.path)
	assert.Equal(t, "page=0&size=20&sort=createdAt%2Cdesc", call.query)
	assert.Equal(t, "Bearer "+testDefaultToken, call.auth)
}

func TestListBookings_ExplicitPaging(t *testing.T) {
	env := newTestEnv(t, time.Second)

	w := env.do(http.MethodGet, "/api/qwiky/bookings?page=3&size=100", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "page=3&size=100&sort=createdAt%2Cdesc", env.upstream.lastCall(t).query)
}

func TestListBookings_RejectsInvalidPaging(t *testing.T) {
	for _, query := range []string{"page=-1", "size=0", "size=101", "page=abc", "size=1.5"} {
		t.Run(query, func(t *testing.T) {
			env := newTestEnv(t, time.Second)

			w := env.do(http.MethodGet, "/api/qwiky/bookings?"+query, nil, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decodeDetail(t, w))
			assert.Zero(t, env.upstream.callCount())
		})
	}
}

func TestCountBookings(t *testing.T) {
	env := newTestEnv(t, time.Second)
	env.upstream.respond(http.StatusOK, `{"content":[{"id":"b-1"}],"page":{"size":1,"number":0,"totalElements":58,"totalPages":58}}`, 0)

	w := env.do(http.MethodGet, "/api/qwiky/bookings/count", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalCount":58}`, w.Body.String())
	assert.Equal(t, "page=0&size=1", env.upstream.lastCall(t).query)
}

func TestCountBookings_DefaultsToZero(t *testing.T) {
	env := newTestEnv(t, time.Second)
	env.upstream.respond(http.StatusOK, `{"content":[]}`, 0)

	w := env.do(http.MethodGet, "/api/qwiky/bookings/count", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalCount":0}`, w.Body.String())
}

func TestProxyRoutes_AuthorizationOverride(t *testing.T) {
	env := newTestEnv(t, time.Second)

	w := env.do(http.MethodGet, "/api/qwiky/user/u-7", nil, map[string]string{"Authorization": "Bearer caller-token"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer caller-token", env.upstream.lastCall(t).auth)
	assert.Equal(t, "/admin/user/u-7", env.upstream.lastCall(t).path)

	w = env.do(http.MethodGet, "/api/qwiky/user/u-7", nil, map[string]string{"Authorization": "Token caller-token"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer "+testDefaultToken, env.upstream.lastCall(t).auth)
}

func TestBookingActions(t *testing.T) {
	tests := []struct {
		path         string
		upstreamPath string
	}{
		{path: "/api/qwiky/booking/b-5/cancel", upstreamPath: "/admin/booking/b-5/cancel"},
		{path: "/api/qwiky/booking/b-5/settled", upstreamPath: "/admin/booking/b-5/settled"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			env := newTestEnv(t, time.Second)
			env.upstream.respond(http.StatusOK, `{"id":"b-5","status":"DONE"}`, 0)

			w := env.do(http.MethodPost, tt.path, nil, nil)

			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"id":"b-5","status":"DONE"}`, w.Body.String())
			call := env.upstream.lastCall(t)
			assert.Equal(t, http.MethodPost, call.method)
			assert.Equal(t, tt.upstreamPath, call.path)
		})
	}
}

var proxyRequests = []struct {
	name   string
	method string
	path   string
}{
	{name: "list", method: http.MethodGet, path: "/api/qwiky/bookings"},
	{name: "count", method: http.MethodGet, path: "/api/qwiky/bookings/count"},
	{name: "user", method: http.MethodGet, path: "/api/qwiky/user/u-1"},
	{name: "cancel", method: http.MethodPost, path: "/api/qwiky/booking/b-1/cancel"},
	{name: "settle", method: http.MethodPost, path: "/api/qwiky/booking/b-1/settled"},
}

func TestProxyRoutes_UpstreamNotFound(t *testing.T) {
	for _, tt := range proxyRequests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, time.Second)
			env.upstream.respond(http.StatusNotFound, `{"message":"not found"}`, 0)

			w := env.do(tt.method, tt.path, nil, nil)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "not found", decodeDetail(t, w))
		})
	}
}

func TestBookingActions_UpstreamRedirectIsReturned(t *testing.T) {
	for _, action := range []string{"cancel", "settled"} {
		t.Run(action, func(t *testing.T) {
			env := newTestEnv(t, time.Second)
			env.upstream.redirect(http.StatusFound, "/elsewhere")

			w := env.do(http.MethodPost, "/api/qwiky/booking/b-1/"+action, nil, nil)

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "moved", decodeDetail(t, w))
			assert.Equal(t, 1, env.upstream.callCount())
			last := env.upstream.lastCall(t)
			assert.Equal(t, http.MethodPost, last.method)
			assert.Equal(t, "/admin/booking/b-1/"+action, last.path)
		})
	}
}

func TestProxyRoutes_UpstreamTimeout(t *testing.T) {
	for _, tt := range proxyRequests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, 50*time.Millisecond)
			env.upstream.respond(http.StatusOK, `{}`, time.Second)

			w := env.do(tt.method, tt.path, nil, nil)

			assert.Equal(t, http.StatusGatewayTimeout, w.Code)
			assert.Equal(t, qwikyservice.TimeoutDetail, decodeDetail(t, w))
		})
	}
}

func TestProxyRoutes_UpstreamUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	log := logger.Discard()
	client := qwikyservice.NewClient(baseURL, testHoodID, time.Second, log)
	handler := api.NewRouter(
		bookings.NewService(client, log),
		users.NewService(client, log),
		statuschecks.NewService(&memoryStore{}, &statuschecks.RealTimeProvider{}, log),
		log,
		api.Options{PathPrefix: "/api"},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/qwiky/bookings/count", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, decodeDetail(t, w))
}

func TestStatusChecks_CreateAndList(t *testing.T) {
	env := newTestEnv(t, time.Second)
	before := time.Now().UTC()

	w := env.do(http.MethodPost, "/api/status", []byte(`{"client_name":"acme"}`), map[string]string{"Content-Type": "application/json"})
	require.Equal(t, http.StatusCreated, w.Code)

	var first struct {
		ID         string    `json:"id"`
		ClientName string    `json:"client_name"`
		Timestamp  time.Time `json:"timestamp"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&first))
	assert.Equal(t, "acme", first.ClientName)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Timestamp.Before(before))

	w = env.do(http.MethodPost, "/api/status", []byte(`{"client_name":"acme"}`), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodGet, "/api/status", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []struct {
		ID         string `json:"id"`
		ClientName string `json:"client_name"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.NotEqual(t, list[0].ID, list[1].ID)
	assert.Zero(t, env.upstream.callCount())
}

func TestStatusChecks_EmptyList(t *testing.T) {
	env := newTestEnv(t, time.Second)

	w := env.do(http.MethodGet, "/api/status", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestStatusChecks_InvalidBody(t *testing.T) {
	for _, body := range []string{`not json`, `{}`, `{"client_name":""}`} {
		t.Run(body, func(t *testing.T) {
			env := newTestEnv(t, time.Second)

			w := env.do(http.MethodPost, "/api/status", []byte(body), nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t, time.Second)

	w := env.do(http.MethodOptions, "/api/qwiky/booking/b-1/cancel", nil, map[string]string{
		"Origin":                         "https://admin.qwiky.in",
		"Access-Control-Request-Method":  http.MethodPost,
		"Access-Control-Request-Headers": "Authorization",
	})

	assert.Equal(t, "https://admin.qwiky.in", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Zero(t, env.upstream.callCount())
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegisterer("test", reg)

	env := newTestEnv(t, time.Second, func(o *api.Options) {
		o.Metrics = m
		o.MetricsPath = "/metrics"
		o.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	})

	env.do(http.MethodGet, "/api/", nil, nil)
	w := env.do(http.MethodGet, "/metrics", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `http_requests_total{method="GET",path="/api/",service="test",status="200"} 1`))
}
