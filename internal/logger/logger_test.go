package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// swapGlobal replaces the global logger for the duration of a test and
// returns the observed sink.
func swapGlobal(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, observed := observer.New(zapcore.InfoLevel)

	original := log
	log = zap.New(core)
	t.Cleanup(func() { log = original })
	return observed
}

func TestInit(t *testing.T) {
	original := log
	defer func() { log = original }()

	for _, env := range []string{"production", "development", ""} {
		Init(env)
		assert.NotNil(t, log, "env %q", env)
	}
}

func TestL_LazyInit(t *testing.T) {
	original := log
	defer func() { log = original }()

	log = nil
	t.Setenv("APP_ENV", "test")

	assert.NotNil(t, L())
	assert.NotNil(t, log)
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()

	tagged := WithRequestID(ctx, "req-42")
	assert.Equal(t, "req-42", RequestIDFrom(tagged))
	assert.Equal(t, "", RequestIDFrom(ctx))
}

func TestFromCtx(t *testing.T) {
	observed := swapGlobal(t)

	t.Run("TagsRequestID", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-abc")
		FromCtx(ctx).Info("tagged entry")

		logs := observed.TakeAll()
		require.Len(t, logs, 1)
		assert.Equal(t, "req-abc", logs[0].ContextMap()["request_id"])
	})

	t.Run("PlainWithoutID", func(t *testing.T) {
		FromCtx(context.Background()).Info("plain entry")

		logs := observed.TakeAll()
		require.Len(t, logs, 1)
		_, tagged := logs[0].ContextMap()["request_id"]
		assert.False(t, tagged)
	})
}

func TestSync(t *testing.T) {
	assert.NotPanics(t, Sync)
}

func TestRequestIDMiddleware(t *testing.T) {
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, RequestIDFrom(r.Context()))
	}))

	t.Run("GeneratesID", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("KeepsIncomingID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("X-Request-ID", "upstream-id-7")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "upstream-id-7", w.Header().Get("X-Request-ID"))
	})
}

func TestLoggingMiddleware(t *testing.T) {
	observed := swapGlobal(t)

	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/orders", nil))

	logs := observed.TakeAll()
	require.Len(t, logs, 1)
	assert.Equal(t, "incoming request", logs[0].Message)

	fields := logs[0].ContextMap()
	assert.Equal(t, "/api/orders", fields["path"])
	assert.Equal(t, int64(http.StatusCreated), fields["status"])
}
