package http

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/bnema/swapaudio/internal/adapter/http/templates"
	"github.com/bnema/swapaudio/internal/adapter/http/validation"
	"github.com/bnema/swapaudio/internal/domain"
	"github.com/bnema/swapaudio/internal/infrastructure/logger"
	"github.com/bnema/swapaudio/internal/port"
)

const (
	successMessage = "Video processed successfully"
	// Parts above this size are spooled to temporary files by the parser.
	multipartMemory = 32 << 20
)

type JobSubmitter interface {
	Submit(ctx context.Context, job *domain.ProcessingJob) (*domain.JobResult, error)
}

type JobReader interface {
	Get(id string) (*domain.ProcessingJob, error)
}

type Handlers struct {
	area      port.StorageArea
	jobs      JobSubmitter
	ledger    JobReader
	baseURL   string
	maxSizeMB int
}

// NewHandlers wires the request handlers. ledger may be nil, in which case
// job lookups always miss.
func NewHandlers(area port.StorageArea, jobs JobSubmitter, ledger JobReader, baseURL string, maxSizeMB int) *Handlers {
	return &Handlers{
		area:      area,
		jobs:      jobs,
		ledger:    ledger,
		baseURL:   baseURL,
		maxSizeMB: maxSizeMB,
	}
}

func (h *Handlers) Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = templates.Index(h.maxSizeMB).Render(r.Context(), w)
	}
}

func (h *Handlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// Process accepts one video and one audio part, runs the job and answers
// with the public URLs of the combined video and its thumbnail.
func (h *Handlers) Process() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := int64(h.maxSizeMB) * 1024 * 1024
		r.Body = http.MaxBytesReader(w, r.Body, limit)

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			if isTooLarge(err) {
				writeError(w, http.StatusRequestEntityTooLarge, "File too large")
				return
			}
			logger.Debug.Printf("process: parse form: %v", err)
			writeError(w, http.StatusBadRequest, (&domain.MissingInputError{}).Error())
			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		videoPart, audioPart, err := validation.FileParts(r.MultipartForm)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		video, err := h.stage(domain.AssetRoleVideo, videoPart)
		if err != nil {
			h.internalError(w, "stage video", err)
			return
		}
		audio, err := h.stage(domain.AssetRoleAudio, audioPart)
		if err != nil {
			h.discard(video)
			h.internalError(w, "stage audio", err)
			return
		}

		job := domain.NewProcessingJob(*video, *audio)
		logger.Info.Printf("job %s: accepted video=%q (%d bytes) audio=%q (%d bytes)",
			job.ID,
			logger.SanitizeForLog(video.OriginalName), video.Size,
			logger.SanitizeForLog(audio.OriginalName), audio.Size,
		)

		result, err := h.jobs.Submit(r.Context(), job)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, processResponse{
				Success:      true,
				Message:      successMessage,
				VideoURL:     h.absolute(result.Video.URL),
				ThumbnailURL: h.absolute(result.Thumbnail.URL),
				JobID:        job.ID,
			})
		case errors.Is(err, domain.ErrBusy), errors.Is(err, domain.ErrShuttingDown):
			h.discard(video)
			h.discard(audio)
			w.Header().Set("Retry-After", "30")
			writeError(w, http.StatusServiceUnavailable, err.Error())
		case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
			logger.Info.Printf("job %s: client disconnected before completion", job.ID)
		default:
			h.internalError(w, "job "+job.ID, err)
		}
	}
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	// Some multipart paths flatten the error to its text.
	return strings.Contains(err.Error(), "request body too large")
}

func (h *Handlers) stage(role domain.AssetRole, part *multipart.FileHeader) (*domain.UploadedAsset, error) {
	f, err := part.Open()
	if err != nil {
		return nil, &domain.StorageError{Op: "open " + string(role), Err: err}
	}
	defer func() { _ = f.Close() }()
	return h.area.Stage(role, part.Filename, f)
}

func (h *Handlers) discard(asset *domain.UploadedAsset) {
	if err := h.area.Remove(asset.Name); err != nil {
		logger.Warn.Printf("remove %s: %v", asset.Name, err)
	}
}

func (h *Handlers) internalError(w http.ResponseWriter, what string, err error) {
	logger.Error.Printf("%s: %v", what, err)
	writeError(w, http.StatusInternalServerError, domain.RedactDir(err.Error(), h.area.Dir()))
}

func (h *Handlers) absolute(url string) string {
	if url == "" {
		return ""
	}
	return h.baseURL + url
}

// Job reports what the ledger knows about a job.
func (h *Handlers) Job() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if h.ledger == nil {
			writeError(w, http.StatusNotFound, "Job not found")
			return
		}

		job, err := h.ledger.Get(id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Job not found")
				return
			}
			logger.Error.Printf("get job %s: %v", logger.SanitizeForLog(id), err)
			writeError(w, http.StatusInternalServerError, "Failed to load job")
			return
		}

		writeJSON(w, http.StatusOK, h.jobResponse(job))
	}
}

func (h *Handlers) jobResponse(job *domain.ProcessingJob) jobResponse {
	resp := jobResponse{
		ID:          job.ID,
		Status:      string(job.Status),
		Error:       job.ErrorMessage,
		CreatedAt:   job.CreatedAt,
		StartedAt:   timePtr(job.StartedAt),
		CompletedAt: timePtr(job.CompletedAt),
	}
	if job.Status == domain.JobStatusSucceeded {
		resp.VideoURL = h.absolute(domain.PublicURL(job.OutputName))
		resp.ThumbnailURL = h.absolute(domain.PublicURL(job.ThumbnailName))
	}
	return resp
}
