// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add an entry to mappings for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/blogs/pkg/auth"
	"github.com/ghuser/blogs/pkg/database"
	"github.com/ghuser/blogs/pkg/httpx"
	"github.com/ghuser/blogs/pkg/logger"
	"github.com/ghuser/blogs/pkg/telemetry"
	blogdomain "github.com/ghuser/blogs/services/blog/domain"
	userdomain "github.com/ghuser/blogs/services/user/domain"
)

// fieldErrors is implemented by domain validation errors that carry
// per-field messages.
type fieldErrors interface {
	FieldErrors() map[string]string
}

// Responder writes error responses, logging every failure and reporting
// 5xx responses to Sentry.
type Responder struct {
	log          logger.Logger
	isProduction bool
}

// NewResponder returns a Responder. When isProduction is true, 5xx messages
// are replaced with the generic status text.
func NewResponder(log logger.Logger, isProduction bool) *Responder {
	return &Responder{log: log, isProduction: isProduction}
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Client errors carry the sentinel's message without the wrapping context;
// validation errors carrying field messages produce the 422 fields body.
func (rs *Responder) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, sentinel := lookup(err)
	ctx := r.Context()

	if status >= http.StatusInternalServerError {
		rs.log.ErrorContext(ctx, "request failed", "status", status, "error", err)
		telemetry.CaptureError(ctx, err)
		httpx.JSONError(w, status, httpx.SafeError(err, status, rs.isProduction))
		return
	}
	rs.log.DebugContext(ctx, "request rejected", "status", status, "error", err)

	var fe fieldErrors
	if status == http.StatusUnprocessableEntity && errors.As(err, &fe) {
		httpx.ValidationFailed(w, fe.FieldErrors())
		return
	}
	httpx.JSONError(w, status, sentinel.Error())
}

// mapping pairs a sentinel error with its status code.
type mapping struct {
	sentinel error
	status   int
}

// mappings is checked in order; the first sentinel err wraps wins.
var mappings = []mapping{
	{blogdomain.ErrBlogNotFound, http.StatusNotFound},
	{userdomain.ErrUserNotFound, http.StatusNotFound},
	{blogdomain.ErrInvalidBlog, http.StatusUnprocessableEntity},
	{userdomain.ErrInvalidUser, http.StatusUnprocessableEntity},
	{userdomain.ErrEmailTaken, http.StatusConflict},
	{userdomain.ErrInvalidCredentials, http.StatusUnauthorized},
	{auth.ErrForbidden, http.StatusForbidden},
	{database.ErrTimeout, http.StatusGatewayTimeout},
}

// lookup returns the status for err and the sentinel it matched; unknown
// errors map to 500 and are returned as-is.
func lookup(err error) (int, error) {
	for _, m := range mappings {
		if errors.Is(err, m.sentinel) {
			return m.status, m.sentinel
		}
	}
	return http.StatusInternalServerError, err
}
