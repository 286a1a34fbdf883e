// Package v1handler implements the v1 API: queueing, inspecting and
// stopping scans on behalf of the authenticated task owner.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"scanrunner/internal/api/specs/v1specs"
	"scanrunner/pkg/logger"
	"scanrunner/pkg/serrors"
	"scanrunner/pkg/storage"

	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

// Deps are the collaborators of the v1 handlers.
type Deps struct {
	Storage   storage.AllStorage
	Canceller Canceller
	Enqueuer  Enqueuer
}

// Handler serves the v1 operations.
type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

// New creates a Handler.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

var statuses = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrForbidden:    http.StatusForbidden,
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrConflict:     http.StatusConflict,
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrConflict:     "conflict",
}

// kindOf resolves the kind of err. Request decoding and security failures
// raised by the generated server carry no kind of their own.
func kindOf(err error) serrors.Kind {
	kind := serrors.KindOf(err)
	if _, ok := statuses[kind]; ok {
		return kind
	}

	var ogenErr ogenerrors.Error
	if errors.As(err, &ogenErr) {
		switch ogenErr.Code() {
		case http.StatusUnauthorized:
			return serrors.ErrUnauthorized
		case http.StatusBadRequest:
			return serrors.ErrBadRequest
		}
	}

	return kind
}

// NewError maps err to a response. Errors without a known kind are
// internal and their text is never exposed.
func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	kind := kindOf(err)
	status, ok := statuses[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &v1specs.ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response:   v1specs.Error{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	msg := defaultMessages[kind]
	var semantic *serrors.Error
	if errors.As(err, &semantic) && semantic.Message() != "" {
		msg = semantic.Message()
	}

	return &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response:   v1specs.Error{Code: kind.Error(), Message: msg},
	}
}
