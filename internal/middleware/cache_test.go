package middleware

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WorldsAreYours/fit-and-easy/internal/config"
)

func testCacheConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:     true,
		Methods:     map[string]bool{http.MethodGet: true},
		TTL:         time.Minute,
		KeyStrategy: "route_query",
		Prefix:      "catalog",
	}
}

func expectedKey(prefix, raw string) string {
	sum := sha1.Sum([]byte(raw))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	bs, err := encodePayload(http.StatusOK, hdr, []byte(`[{"id":1}]`))
	require.NoError(t, err)

	status, gotHdr, body, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, `[{"id":1}]`, string(body))

	_, _, _, ok = decodePayload([]byte{0, 1})
	assert.False(t, ok)
}

func TestNewRedisCache_MissStoresResponse(t *testing.T) {
	cfg := testCacheConfig()
	rdb, mock := redismock.NewClientMock()

	key := expectedKey("catalog", "route:/exercises:q:a=1&b=2")
	payload, err := encodePayload(http.StatusOK, http.Header{"Content-Type": []string{"text/plain"}}, []byte("ok"))
	require.NoError(t, err)

	mock.ExpectGet(key).RedisNil()
	mock.ExpectSetEx(key, payload, time.Minute).SetVal("OK")

	calls := 0
	e := echo.New()
	e.GET("/exercises", func(c echo.Context) error {
		calls++
		return c.Blob(http.StatusOK, "text/plain", []byte("ok"))
	}, NewRedisCache(cfg, rdb))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exercises?b=2&a=1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRedisCache_HitSkipsHandler(t *testing.T) {
	cfg := testCacheConfig()
	rdb, mock := redismock.NewClientMock()

	key := expectedKey("catalog", "route:/exercises/:id:q::p:id:7")
	payload, err := encodePayload(http.StatusOK, http.Header{"Content-Type": []string{"application/json"}}, []byte(`{"id":7}`))
	require.NoError(t, err)
	mock.ExpectGet(key).SetVal(string(payload))

	e := echo.New()
	e.GET("/exercises/:id", func(c echo.Context) error {
		t.Fatal("handler must not run on a cache hit")
		return nil
	}, NewRedisCache(cfg, rdb))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exercises/7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":7}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRedisCache_SkipsNonOK(t *testing.T) {
	cfg := testCacheConfig()
	rdb, mock := redismock.NewClientMock()

	key := expectedKey("catalog", "route:/exercises/:id:q::p:id:99")
	mock.ExpectGet(key).RedisNil()

	e := echo.New()
	e.GET("/exercises/:id", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "exercise not found"})
	}, NewRedisCache(cfg, rdb))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exercises/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRedisCache_DisabledPassesThrough(t *testing.T) {
	cfg := testCacheConfig()
	cfg.Enabled = false

	e := echo.New()
	e.GET("/equipment", func(c echo.Context) error {
		return c.String(http.StatusOK, "bodyweight")
	}, NewRedisCache(cfg, nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/equipment", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestInvalidateCache_PurgesAfterSuccess(t *testing.T) {
	cfg := testCacheConfig()
	rdb, mock := redismock.NewClientMock()

	mock.ExpectScan(0, "catalog:*", 100).SetVal([]string{"catalog:a", "catalog:b"}, 0)
	mock.ExpectDel("catalog:a", "catalog:b").SetVal(2)

	e := echo.New()
	e.POST("/exercises", func(c echo.Context) error {
		return c.JSON(http.StatusCreated, echo.Map{"id": 1})
	}, InvalidateCache(cfg, rdb))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/exercises", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidateCache_KeepsEntriesOnFailure(t *testing.T) {
	cfg := testCacheConfig()
	rdb, mock := redismock.NewClientMock()

	e := echo.New()
	e.POST("/exercises", func(c echo.Context) error {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"detail": []string{}})
	}, InvalidateCache(cfg, rdb))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/exercises", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
