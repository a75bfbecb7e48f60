package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"atrium_site/internal/content"
	"atrium_site/internal/domain"
	"atrium_site/internal/images"
)

type Handlers struct {
	C   *content.Service
	Img images.Resolver
}

// apiError is the site's public error body: {"error": "..."}.
type apiError struct {
	Error string `json:"error"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/api/settings", h.getSettings)
	s.mux.Get("/api/rooms", h.listRooms)
	s.mux.Get("/api/room/{slug}", h.getRoom)
	s.mux.Get("/api/page-data", h.getPageData)
	s.mux.Get("/api/image-url", h.getImageURL)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apiError{Error: msg}); err != nil {
		log.Error().Err(err).Msg("write JSON error response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON sends v with an ETag, short-circuiting to 304 when the client
// already holds the current version.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func (h *Handlers) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.C.GetSettings(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("settings fetch failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}
	writeJSON(w, r, settings)
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.C.GetRooms(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("rooms fetch failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch rooms")
		return
	}
	writeJSON(w, r, rooms)
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	room, err := h.C.GetRoomBySlug(r.Context(), slug)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("room fetch failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch room")
		return
	}
	if room == nil {
		writeError(w, http.StatusNotFound, "Room not found")
		return
	}
	writeJSON(w, r, room)
}

// getImageURL resolves an image reference (an asset _ref or a direct path)
// into a fetchable URL, applying any requested transforms. Resolution never
// fails: missing or malformed refs yield the placeholder.
func (h *Handlers) getImageURL(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := q.Get("ref")

	var ref *domain.ImageRef
	switch {
	case raw == "":
		// placeholder
	case strings.HasPrefix(raw, "image-"):
		ref = domain.AssetImage(raw)
	default:
		ref = domain.DirectImage(raw)
	}

	b := h.Img.Resolve(ref)
	if n, err := strconv.Atoi(q.Get("w")); err == nil && n > 0 {
		b = b.Width(n)
	}
	if n, err := strconv.Atoi(q.Get("h")); err == nil && n > 0 {
		b = b.Height(n)
	}
	if n, err := strconv.Atoi(q.Get("q")); err == nil && n > 0 {
		b = b.Quality(n)
	}
	if fm := q.Get("fm"); fm != "" {
		b = b.Format(fm)
	}
	if fit := q.Get("fit"); fit != "" {
		b = b.Fit(fit)
	}
	if auto := q.Get("auto"); auto != "" {
		b = b.Auto(auto)
	}
	writeJSON(w, r, map[string]string{"url": b.URL()})
}

func (h *Handlers) getPageData(w http.ResponseWriter, r *http.Request) {
	pd, err := h.C.GetAllPageData(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("page data fetch failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch page data")
		return
	}
	writeJSON(w, r, pd)
}
