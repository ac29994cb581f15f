package http

import (
	"net/http"
	"os"

	"github.com/bnema/swapaudio/internal/adapter/http/validation"
	"github.com/bnema/swapaudio/internal/domain"
)

// Uploads serves a Storage Area file as a download. Range requests and
// conditional GETs are handled by http.ServeFile.
func (h *Handlers) Uploads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if !domain.IsFlatName(name) {
			http.NotFound(w, r)
			return
		}

		path := h.area.Path(name)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Disposition", validation.Attachment(name))
		http.ServeFile(w, r, path)
	}
}
