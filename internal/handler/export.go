package handler

import (
	"fmt"
	"log/slog"
	"net/http"
)

// getExport handles GET /export.
// ?format=cabrillo renders the Cabrillo submission log (requires an active
// station setup); ?format=adif renders an ADIF file. Both are served as
// plain-text attachments with a format-appropriate filename.
func (s *Server) getExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		writeBadRequest(w, "format query parameter is required (cabrillo or adif)")
		return
	}

	file, err := s.exports.Export(r.Context(), format)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(file.Content)); err != nil {
		// Status and headers are already out; nothing to do but log.
		slog.Error("export write failed", "error", err)
	}
}
