// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package handler adapts lookups to request/response envelopes: a
// serverless-style action (Invoke) and a plain HTTP API (Routes). Every
// invocation yields a JSON body; nothing escapes as a crash.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/pdiddy/profile-locator/internal/locate"
	"github.com/pdiddy/profile-locator/pkg/types"
)

// Request parameter names.
const (
	ParamFullName = "full_name"
	ParamEmail    = "email"
	ParamLocation = "location"
	ParamTitle    = "title_or_role"
	ParamCompany  = "company_or_university"
)

// Response is the envelope returned to the hosting environment.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Handler serves lookups through a shared Locator.
type Handler struct {
	locator *locate.Locator
}

// New creates a Handler backed by l.
func New(l *locate.Locator) *Handler {
	return &Handler{locator: l}
}

// PersonFromParams reads the request fields from loosely typed parameters.
// Values that are not strings are treated as absent.
func PersonFromParams(params map[string]any) types.PersonInput {
	str := func(key string) string {
		s, _ := params[key].(string)
		return s
	}
	return types.PersonInput{
		FullName:            str(ParamFullName),
		Email:               str(ParamEmail),
		Location:            str(ParamLocation),
		TitleOrRole:         str(ParamTitle),
		CompanyOrUniversity: str(ParamCompany),
	}
}

// Invoke runs one lookup for params and maps the outcome to an envelope:
// 200 with the lookup result, 400 for input errors, 500 for configuration
// and provider errors.
func (h *Handler) Invoke(ctx context.Context, params map[string]any) (resp Response) {
	log := zerolog.Ctx(ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Lookup panicked")
			resp = errorResponse(http.StatusInternalServerError, "internal error")
		}
	}()

	res, err := h.locator.Lookup(ctx, PersonFromParams(params))
	if err != nil {
		status := StatusFor(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Int("status", status).Msg("Lookup failed")
		} else {
			log.Info().Err(err).Int("status", status).Msg("Lookup rejected")
		}
		return errorResponse(status, err.Error())
	}

	log.Info().Str("status", string(res.Status)).Int("candidates", len(res.Candidates)).Msg("Lookup finished")
	return jsonResponse(http.StatusOK, res)
}

// StatusFor maps a lookup error to an HTTP status code.
func StatusFor(err error) int {
	if locate.IsInputError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func jsonResponse(status int, v any) Response {
	body, err := json.Marshal(v)
	if err != nil {
		return errorResponse(http.StatusInternalServerError, fmt.Sprintf("encoding response: %v", err))
	}
	return Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

func errorResponse(status int, msg string) Response {
	// errorBody always marshals.
	body, _ := json.Marshal(errorBody{Error: msg})
	return Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
