package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/shows-api/pkg/middleware"
)

func TestLogger_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	wrapped := middleware.RequestID()(middleware.Logger(logger)(handler))

	req := httptest.NewRequest(http.MethodGet, "/shows/42?x=1", nil)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{"request", "GET", "/shows/42?x=1", "status=404", "duration", "request_id="} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q should contain %q", out, want)
		}
	}
}

func TestLogger_CallsNextHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	called := false
	wrapped := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte("response"))
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Error("next handler was not called")
	}
	if rec.Body.String() != "response" {
		t.Errorf("body = %q, want response", rec.Body.String())
	}
}
