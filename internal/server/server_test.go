package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/kedare/dryspot/internal/destination"
	"github.com/kedare/dryspot/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct {
	err error
}

func (p failingProvider) Destinations(context.Context, string) ([]destination.Destination, error) {
	return nil, p.err
}

type panickingProvider struct{}

func (panickingProvider) Destinations(context.Context, string) ([]destination.Destination, error) {
	panic("boom")
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))

	return v
}

func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	rec := do(t, New(nil, "").Handler(), http.MethodGet, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ok", decode[healthResponse](t, rec).Status)
}

func TestGetAttributions_listsThreeSources(t *testing.T) {
	rec := do(t, New(nil, "").Handler(), http.MethodGet, "/api/attributions")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[[]destination.Attribution](t, rec)
	assert.Equal(t, destination.Attributions(), got)
}

func TestGetDestinations_returnsCatalogue(t *testing.T) {
	h := New(destination.NewStaticProvider(), "").Handler()
	rec := do(t, h, http.MethodGet, "/api/destinations?location="+url.QueryEscape("Bury St Edmunds"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[output.Results](t, rec)
	assert.Equal(t, "Bury St Edmunds", body.Location)
	require.Len(t, body.Destinations, 5)
	assert.Equal(t, "Whittlesford", body.Destinations[0].Name)
	assert.Equal(t, "38.2km", body.Destinations[0].DistanceLabel)
	assert.Equal(t, destination.WeatherDryAllDay, body.Destinations[0].WeatherStatus)
}

func TestGetDestinations_invariantUnderLocation(t *testing.T) {
	h := New(nil, "").Handler()

	a := decode[output.Results](t, do(t, h, http.MethodGet, "/api/destinations?location=Cambridge"))
	b := decode[output.Results](t, do(t, h, http.MethodGet, "/api/destinations?location="+url.QueryEscape("Nowhere, XYZ")))

	assert.Equal(t, a.Destinations, b.Destinations)
	assert.Equal(t, "Nowhere, XYZ", b.Location)
}

func TestGetDestinations_blankLocationIs400(t *testing.T) {
	h := New(nil, "").Handler()

	for _, target := range []string{"/api/destinations", "/api/destinations?location=", "/api/destinations?location=%20%20"} {
		rec := do(t, h, http.MethodGet, target)
		require.Equal(t, http.StatusBadRequest, rec.Code, target)

		body := decode[errorResponse](t, rec)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, destination.ErrNoLocation.Error(), body.Error.Message)
	}
}

func TestGetDestinations_providerFailureIs500(t *testing.T) {
	h := New(failingProvider{err: errors.New("upstream down")}, "").Handler()
	rec := do(t, h, http.MethodGet, "/api/destinations?location=Cambridge")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[errorResponse](t, rec)
	assert.Equal(t, "internal_error", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "upstream")
}

func TestGetDestinations_emptyProviderReturnsArray(t *testing.T) {
	h := New(destination.NewStaticProviderWith(nil), "").Handler()
	rec := do(t, h, http.MethodGet, "/api/destinations?location=Cambridge")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"destinations":[]`)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	h := New(nil, "").Handler()

	rec := do(t, h, http.MethodGet, "/api/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decode[errorResponse](t, rec).Error.Code)

	rec = do(t, h, http.MethodPost, "/api/destinations?location=Cambridge")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method_not_allowed", decode[errorResponse](t, rec).Error.Code)
}

func TestPanicIsRecovered(t *testing.T) {
	rec := do(t, New(panickingProvider{}, "").Handler(), http.MethodGet, "/api/destinations?location=Cambridge")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequestIDIsAssignedOrEchoed(t *testing.T) {
	h := New(nil, "").Handler()

	rec := do(t, h, http.MethodGet, "/healthz")
	assert.Len(t, rec.Header().Get(requestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "trace-42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "trace-42", rec.Header().Get(requestIDHeader))
}

func TestServerHeader(t *testing.T) {
	rec := do(t, New(nil, "").Handler(), http.MethodGet, "/healthz")
	assert.Contains(t, rec.Header().Get("Server"), "dryspot/")
}

func TestNewDefaults(t *testing.T) {
	s := New(nil, "")
	assert.Equal(t, DefaultAddr, s.Addr())
	assert.Equal(t, ":9999", New(nil, ":9999").Addr())
}

func TestServe_shutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := New(nil, ln.Addr().String())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_reportsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	err = New(nil, ln.Addr().String()).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
