// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// maxBodyBytes bounds the size of a POST /lookup body.
const maxBodyBytes = 64 << 10

// Routes returns the HTTP API:
//
//	POST /lookup   JSON object with the request fields
//	GET  /lookup   request fields as query parameters
//	GET  /healthz  liveness probe
//
// Each request carries log in its context; access lines omit the query
// string because it holds personal data.
func (h *Handler) Routes(log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /lookup", h.handleLookupPost)
	mux.HandleFunc("GET /lookup", h.handleLookupGet)
	mux.HandleFunc("GET /healthz", handleHealth)

	var next http.Handler = mux
	next = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("Handled request")
	})(next)
	return hlog.NewHandler(log)(next)
}

func (h *Handler) handleLookupPost(w http.ResponseWriter, r *http.Request) {
	params := map[string]any{}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		writeResponse(w, r, errorResponse(http.StatusBadRequest, fmt.Sprintf("reading request body: %v", err)))
		return
	}
	if len(body) > maxBodyBytes {
		writeResponse(w, r, errorResponse(http.StatusRequestEntityTooLarge, "request body too large"))
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &params); err != nil {
			writeResponse(w, r, errorResponse(http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err)))
			return
		}
	}
	writeResponse(w, r, h.Invoke(r.Context(), params))
}

func (h *Handler) handleLookupGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := make(map[string]any, len(q))
	for _, key := range []string{ParamFullName, ParamEmail, ParamLocation, ParamTitle, ParamCompany} {
		if q.Has(key) {
			params[key] = q.Get(key)
		}
	}
	writeResponse(w, r, h.Invoke(r.Context(), params))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, jsonResponse(http.StatusOK, map[string]string{"status": "ok"}))
}

func writeResponse(w http.ResponseWriter, r *http.Request, resp Response) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.WriteString(w, resp.Body); err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("Writing response failed")
	}
}
