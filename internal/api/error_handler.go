package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rakeshkurk50/EndWebsite/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
	Stack string `json:"stack,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client
//     (diagnostic detail is included only when debug is enabled).
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// User handlers write their responses directly; this handler is the safety
// net for bind failures, router 404s, and anything a handler lets escape.
func NewHTTPErrorHandler(log zerolog.Logger, debug bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c, debug)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, debug bool) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic HTTP codes.
	var ve *domain.ValidationError
	var dke *domain.DuplicateKeyError
	switch {
	case errors.Is(err, domain.ErrNotConnected):
		return http.StatusServiceUnavailable, errorResponse{Error: domain.ErrNotConnected.Error()}
	case errors.As(err, &ve):
		return http.StatusBadRequest, errorResponse{Error: ve.Message}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, errorResponse{Error: domain.ErrUserExists.Error()}
	case errors.As(err, &dke):
		return http.StatusBadRequest, errorResponse{Error: dke.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	resp := errorResponse{Error: "internal server error"}
	if debug {
		resp.Stack = err.Error()
	}
	return http.StatusInternalServerError, resp
}
