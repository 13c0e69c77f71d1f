// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/feature-votes/middleware"
	"github.com/danielhkuo/feature-votes/service"
)

// writeServiceError maps a service error to its status code. Anything
// outside the service taxonomy is logged and answered with internalMessage
// so store errors never reach the client.
func writeServiceError(w http.ResponseWriter, err error, internalMessage string) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		slog.Error(internalMessage, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, internalMessage)
		return
	}

	switch {
	case errors.Is(err, service.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, svcErr.Message)
	case errors.Is(err, service.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, svcErr.Message)
	case errors.Is(err, service.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, svcErr.Message)
	default:
		slog.Error(internalMessage, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, internalMessage)
	}
}
