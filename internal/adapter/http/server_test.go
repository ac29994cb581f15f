package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/swapaudio/internal/adapter/http/ratelimit"
)

func TestServer_Routes(t *testing.T) {
	area := newTestArea(t)
	require.NoError(t, os.WriteFile(area.Path("processed-1-2_thumbnail.jpg"), []byte("jpeg"), 0o644))
	srv := NewServer(NewHandlers(area, succeed(area), nil, "", 10), Options{CORSOrigin: "*"})

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "upload page", method: http.MethodGet, target: "/", wantStatus: http.StatusOK, wantBody: `name="audio"`},
		{name: "health", method: http.MethodGet, target: "/healthz", wantStatus: http.StatusOK, wantBody: `"status":"ok"`},
		{name: "artifact", method: http.MethodGet, target: "/uploads/processed-1-2_thumbnail.jpg", wantStatus: http.StatusOK, wantBody: "jpeg"},
		{name: "unknown job", method: http.MethodGet, target: "/api/jobs/nope", wantStatus: http.StatusNotFound},
		{name: "process needs POST", method: http.MethodGet, target: "/api/process", wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown path", method: http.MethodGet, target: "/elsewhere", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestServer_ProcessEndToEnd(t *testing.T) {
	area := newTestArea(t)
	srv := NewServer(NewHandlers(area, succeed(area), nil, "", 10), Options{CORSOrigin: "*"})

	req := newProcessRequest(t,
		filePart{field: "video", name: "clip.mp4", content: "v"},
		filePart{field: "audio", name: "voice.mp3", content: "a"},
	)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var videoURL string
	body := decode(t, rec)
	videoURL = body["videoUrl"].(string)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, videoURL, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "combined", rec.Body.String())
}

func TestServer_Preflight(t *testing.T) {
	srv := NewServer(NewHandlers(newTestArea(t), neverCalled(t), nil, "", 10), Options{CORSOrigin: "*"})

	req := httptest.NewRequest(http.MethodOptions, "/api/process", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestServer_RateLimit(t *testing.T) {
	area := newTestArea(t)
	limiter := ratelimit.NewClientLimiter(1, time.Minute, time.Minute)
	t.Cleanup(limiter.Close)
	srv := NewServer(NewHandlers(area, succeed(area), nil, "", 10), Options{
		CORSOrigin:  "*",
		RateLimiter: limiter,
	})

	send := func() *httptest.ResponseRecorder {
		req := newProcessRequest(t,
			filePart{field: "video", name: "clip.mp4", content: "v"},
			filePart{field: "audio", name: "voice.mp3", content: "a"},
		)
		req.RemoteAddr = "203.0.113.7:4711"
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send().Code)

	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Downloads are never limited.
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
