package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeoutMiddleware(t *testing.T) {
	t.Parallel()

	m := NewTimeoutMiddleware(time.Millisecond)
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Millisecond)

		select {
		case <-r.Context().Done():
		default:
			t.Error("request context not canceled")
		}
	})

	r, _ := http.NewRequest(http.MethodGet, "testurl", nil)
	m(h).ServeHTTP(httptest.NewRecorder(), r)
}

func TestNewRequestLogMiddleware(t *testing.T) {
	t.Parallel()

	l, hook := logtest.NewNullLogger()
	m := NewRequestLogMiddleware(l)
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r, _ := http.NewRequest(http.MethodGet, "/profile/octo", nil)
	w := httptest.NewRecorder()
	m(h).ServeHTTP(w, r)

	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, id, entry.Data["requestID"])
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
	assert.Equal(t, "/profile/octo", entry.Data["path"])

	// Client provided id is kept.
	r, _ = http.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	m(h).ServeHTTP(w, r)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}
