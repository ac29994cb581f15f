package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bnema/swapaudio/internal/infrastructure/logger"
)

type processResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	JobID        string `json:"jobId"`
}

type jobResponse struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	Error        string     `json:"error,omitempty"`
	VideoURL     string     `json:"videoUrl,omitempty"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	StartedAt    *time.Time `json:"startedAt,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
